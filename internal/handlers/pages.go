package handlers

import (
	"github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

// PageData is a generic view model for secondary pages (e.g. not found) using the shared layout.
type PageData struct {
	Title   string
	Lang    string
	Heading string
	Message string
	HomeURL string
}

// BuildNotFoundData derives the not-found page from the site metadata so its title follows the site template.
func BuildNotFoundData(meta seo.SiteMetadata) PageData {
	return PageData{
		Title:   meta.Title.Format("Page not found"),
		Lang:    meta.Language,
		Heading: "Page not found",
		Message: "The page you were looking for does not exist.",
		HomeURL: "/",
	}
}
