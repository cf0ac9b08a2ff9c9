package content

// Patch types express partial updates with merge semantics: only non-nil
// fields are written, everything else in the stored document is left
// untouched. Slices use nil to mean "not included" (a non-nil empty slice
// replaces the stored list with an empty one).
//
// Each patch exposes Fields, the bson field set the repository merges into
// the stored document, and Apply, the matching in-memory shallow merge the
// aggregate store performs after a confirmed remote write.

type HomePatch struct {
	HeroTitle                   *string `json:"heroTitle,omitempty"`
	HeroSubtitle                *string `json:"heroSubtitle,omitempty"`
	AboutText                   *string `json:"aboutText,omitempty"`
	ProfileImageURL             *string `json:"profileImageUrl,omitempty"`
	FeaturedProjectsTitle       *string `json:"featuredProjectsTitle,omitempty"`
	FeaturedProjectsDescription *string `json:"featuredProjectsDescription,omitempty"`
}

func (p *HomePatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "heroTitle", p.HeroTitle)
	setString(m, "heroSubtitle", p.HeroSubtitle)
	setString(m, "aboutText", p.AboutText)
	setString(m, "profileImageUrl", p.ProfileImageURL)
	setString(m, "featuredProjectsTitle", p.FeaturedProjectsTitle)
	setString(m, "featuredProjectsDescription", p.FeaturedProjectsDescription)
	return m
}

func (p *HomePatch) Apply(h *HomeContent) {
	applyString(&h.HeroTitle, p.HeroTitle)
	applyString(&h.HeroSubtitle, p.HeroSubtitle)
	applyString(&h.AboutText, p.AboutText)
	applyString(&h.ProfileImageURL, p.ProfileImageURL)
	applyString(&h.FeaturedProjectsTitle, p.FeaturedProjectsTitle)
	applyString(&h.FeaturedProjectsDescription, p.FeaturedProjectsDescription)
}

type AboutPatch struct {
	FullName     *string      `json:"fullName,omitempty"`
	Title        *string      `json:"title,omitempty"`
	Introduction *string      `json:"introduction,omitempty"`
	Location     *string      `json:"location,omitempty"`
	Skills       []string     `json:"skills,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Education    []Education  `json:"education,omitempty"`
}

func (p *AboutPatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "fullName", p.FullName)
	setString(m, "title", p.Title)
	setString(m, "introduction", p.Introduction)
	setString(m, "location", p.Location)
	if p.Skills != nil {
		m["skills"] = p.Skills
	}
	if p.Experience != nil {
		m["experience"] = p.Experience
	}
	if p.Education != nil {
		m["education"] = p.Education
	}
	return m
}

func (p *AboutPatch) Apply(a *AboutContent) {
	applyString(&a.FullName, p.FullName)
	applyString(&a.Title, p.Title)
	applyString(&a.Introduction, p.Introduction)
	applyString(&a.Location, p.Location)
	if p.Skills != nil {
		a.Skills = p.Skills
	}
	if p.Experience != nil {
		a.Experience = p.Experience
	}
	if p.Education != nil {
		a.Education = p.Education
	}
}

type WorkPatch struct {
	FeaturedProjectsDescription *string `json:"featuredProjectsDescription,omitempty"`
	OpenSourceDescription       *string `json:"openSourceDescription,omitempty"`
	FreelanceDescription        *string `json:"freelanceDescription,omitempty"`
}

func (p *WorkPatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "featuredProjectsDescription", p.FeaturedProjectsDescription)
	setString(m, "openSourceDescription", p.OpenSourceDescription)
	setString(m, "freelanceDescription", p.FreelanceDescription)
	return m
}

func (p *WorkPatch) Apply(w *WorkContent) {
	applyString(&w.FeaturedProjectsDescription, p.FeaturedProjectsDescription)
	applyString(&w.OpenSourceDescription, p.OpenSourceDescription)
	applyString(&w.FreelanceDescription, p.FreelanceDescription)
}

type SocialPatch struct {
	Email     *string `json:"email,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

func (p *SocialPatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "email", p.Email)
	setString(m, "linkedin", p.LinkedIn)
	setString(m, "github", p.GitHub)
	setString(m, "instagram", p.Instagram)
	return m
}

func (p *SocialPatch) Apply(s *SocialLinks) {
	applyString(&s.Email, p.Email)
	applyString(&s.LinkedIn, p.LinkedIn)
	applyString(&s.GitHub, p.GitHub)
	applyString(&s.Instagram, p.Instagram)
}

type ConfigPatch struct {
	SiteName *string `json:"siteName,omitempty"`
	Location *string `json:"location,omitempty"`
	Tagline  *string `json:"tagline,omitempty"`
}

func (p *ConfigPatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "siteName", p.SiteName)
	setString(m, "location", p.Location)
	setString(m, "tagline", p.Tagline)
	return m
}

func (p *ConfigPatch) Apply(c *SiteConfig) {
	applyString(&c.SiteName, p.SiteName)
	applyString(&c.Location, p.Location)
	applyString(&c.Tagline, p.Tagline)
}

// ProjectPatch is the per-id field patch for a project record.
type ProjectPatch struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Link         *string  `json:"link,omitempty"`
	Order        *int     `json:"order,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

func (p *ProjectPatch) Fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "name", p.Name)
	setString(m, "description", p.Description)
	setString(m, "imageUrl", p.ImageURL)
	setString(m, "link", p.Link)
	if p.Order != nil {
		m["order"] = *p.Order
	}
	if p.Featured != nil {
		m["featured"] = *p.Featured
	}
	setString(m, "category", p.Category)
	if p.Technologies != nil {
		m["technologies"] = p.Technologies
	}
	return m
}

func (p *ProjectPatch) Apply(pr *Project) {
	applyString(&pr.Name, p.Name)
	applyString(&pr.Description, p.Description)
	applyString(&pr.ImageURL, p.ImageURL)
	applyString(&pr.Link, p.Link)
	if p.Order != nil {
		pr.Order = *p.Order
	}
	if p.Featured != nil {
		pr.Featured = *p.Featured
	}
	applyString(&pr.Category, p.Category)
	if p.Technologies != nil {
		pr.Technologies = p.Technologies
	}
}

func setString(m map[string]interface{}, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
