package content

import "time"

// Singleton document keys inside the "portfolio" collection. Each content
// type has exactly one document, addressed by a fixed key instead of a
// generated id. Social links deliberately use a single key for both read
// and write paths.
const (
	KeyHome   = "home"
	KeyAbout  = "about"
	KeyWork   = "work"
	KeySocial = "social"
	KeyConfig = "config"
)

// Project categories form a closed three-value enumeration. The work page
// groups projects into exactly these partitions.
const (
	CategoryFeatured   = "featured"
	CategoryOpenSource = "open-source"
	CategoryFreelance  = "freelance"
)

// ValidCategory reports whether c is one of the three known categories.
func ValidCategory(c string) bool {
	return c == CategoryFeatured || c == CategoryOpenSource || c == CategoryFreelance
}

// HomeContent is the home page hero/intro document.
type HomeContent struct {
	ID                          string    `json:"id,omitempty" bson:"_id,omitempty"`
	HeroTitle                   string    `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle                string    `json:"heroSubtitle" bson:"heroSubtitle"`
	AboutText                   string    `json:"aboutText" bson:"aboutText"`
	ProfileImageURL             string    `json:"profileImageUrl" bson:"profileImageUrl"`
	FeaturedProjectsTitle       string    `json:"featuredProjectsTitle" bson:"featuredProjectsTitle"`
	FeaturedProjectsDescription string    `json:"featuredProjectsDescription" bson:"featuredProjectsDescription"`
	UpdatedAt                   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Promotion is a sub-role held within the same company as its parent
// Experience entry.
type Promotion struct {
	Title       string `json:"title" bson:"title"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

// Experience is one entry of the about page timeline.
type Experience struct {
	Title       string      `json:"title" bson:"title"`
	Company     string      `json:"company" bson:"company"`
	Duration    string      `json:"duration" bson:"duration"`
	Description string      `json:"description" bson:"description"`
	Promotions  []Promotion `json:"promotions,omitempty" bson:"promotions,omitempty"`
}

// Education is one entry of the about page education list.
type Education struct {
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	Year        string `json:"year" bson:"year"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// AboutContent is the about page document.
type AboutContent struct {
	ID           string       `json:"id,omitempty" bson:"_id,omitempty"`
	FullName     string       `json:"fullName" bson:"fullName"`
	Title        string       `json:"title" bson:"title"`
	Introduction string       `json:"introduction" bson:"introduction"`
	Location     string       `json:"location" bson:"location"`
	Skills       []string     `json:"skills" bson:"skills"`
	Experience   []Experience `json:"experience" bson:"experience"`
	Education    []Education  `json:"education" bson:"education"`
	UpdatedAt    time.Time    `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// WorkContent holds the three section descriptions of the work page.
type WorkContent struct {
	ID                          string    `json:"id,omitempty" bson:"_id,omitempty"`
	FeaturedProjectsDescription string    `json:"featuredProjectsDescription" bson:"featuredProjectsDescription"`
	OpenSourceDescription       string    `json:"openSourceDescription" bson:"openSourceDescription"`
	FreelanceDescription        string    `json:"freelanceDescription" bson:"freelanceDescription"`
	UpdatedAt                   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// SocialLinks is the social/contact document.
type SocialLinks struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	LinkedIn  string    `json:"linkedin" bson:"linkedin"`
	GitHub    string    `json:"github" bson:"github"`
	Instagram string    `json:"instagram" bson:"instagram"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// SiteConfig holds site-wide presentation settings.
type SiteConfig struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	SiteName  string    `json:"siteName" bson:"siteName"`
	Location  string    `json:"location" bson:"location"`
	Tagline   string    `json:"tagline" bson:"tagline"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Project is one record of the ordered project collection. The id is
// assigned by the store on creation. Order is not guaranteed unique; ties
// keep store iteration order. Featured is independent of Category.
type Project struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description" bson:"description"`
	ImageURL     string    `json:"imageUrl" bson:"imageUrl"`
	Link         string    `json:"link" bson:"link"`
	Order        int       `json:"order" bson:"order"`
	Featured     bool      `json:"featured" bson:"featured"`
	Category     string    `json:"category" bson:"category"`
	Technologies []string  `json:"technologies,omitempty" bson:"technologies,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
