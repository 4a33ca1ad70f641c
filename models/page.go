package models

// Page is a static page the add-on can scaffold into the host project.
type Page string

const (
	PageAbout   Page = "about"
	PagePricing Page = "pricing"
)

func (p Page) String() string { return string(p) }
