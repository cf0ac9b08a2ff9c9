package content

// Fallback values rendered by the public site when a content document does
// not exist yet (reads return nil before the first admin save). The site
// must never fail to render because a document is absent.

func DefaultHome() *HomeContent {
	return &HomeContent{
		HeroTitle:                   "Hi, I'm a Software Engineer",
		HeroSubtitle:                "I build things for the web",
		AboutText:                   "Welcome to my portfolio.",
		ProfileImageURL:             "/images/profile.jpg",
		FeaturedProjectsTitle:       "Featured Projects",
		FeaturedProjectsDescription: "A selection of projects I have worked on recently.",
	}
}

func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		SiteName: "Portfolio",
		Tagline:  "Personal portfolio",
	}
}
