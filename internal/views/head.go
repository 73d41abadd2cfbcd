package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

// StylesheetPath is the site stylesheet served from the embedded assets.
const StylesheetPath = "/assets/site.css"

// Head renders the metadata and viewport records as <head> children. Each jsonLD entry
// must already be a serialized JSON document; it is emitted inside an ld+json script.
func Head(meta seo.SiteMetadata, viewport seo.Viewport, jsonLD []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tw := &tagWriter{w: w}

		tw.raw(`<meta charset="utf-8">`)
		tw.meta("name", "viewport", viewport.String())
		for _, tc := range viewport.ThemeColors {
			if tc.Media != "" {
				tw.raw(`<meta name="theme-color" media="` + attr(tc.Media) + `" content="` + attr(tc.Color) + `">`)
				continue
			}
			tw.meta("name", "theme-color", tc.Color)
		}

		tw.raw("<title>" + templ.EscapeString(meta.Title.Default) + "</title>")
		tw.meta("name", "description", meta.Description)
		tw.meta("name", "application-name", meta.ApplicationName)
		for _, author := range meta.Authors {
			tw.meta("name", "author", author)
		}
		if len(meta.Keywords) > 0 {
			tw.meta("name", "keywords", strings.Join(meta.Keywords, ","))
		}
		tw.meta("name", "creator", meta.Creator)
		tw.meta("name", "publisher", meta.Publisher)
		tw.meta("name", "robots", meta.Robots.String())
		tw.meta("name", "googlebot", meta.GoogleBot.String())
		tw.raw(`<link rel="canonical" href="` + attr(meta.CanonicalURL) + `">`)
		tw.meta("name", "format-detection", meta.FormatDetection.String())

		if meta.AppleWebApp.Capable {
			tw.meta("name", "mobile-web-app-capable", "yes")
			tw.meta("name", "apple-mobile-web-app-capable", "yes")
		}
		tw.meta("name", "apple-mobile-web-app-title", meta.AppleWebApp.Title)
		tw.meta("name", "apple-mobile-web-app-status-bar-style", meta.AppleWebApp.StatusBarStyle)

		og := meta.OpenGraph
		tw.meta("property", "og:title", og.Title)
		tw.meta("property", "og:description", og.Description)
		tw.meta("property", "og:url", og.URL)
		tw.meta("property", "og:site_name", og.SiteName)
		tw.meta("property", "og:locale", og.Locale)
		tw.meta("property", "og:updated_time", og.UpdatedTime)
		if og.Image != nil {
			tw.meta("property", "og:image", og.Image.URL)
			tw.meta("property", "og:image:width", strconv.Itoa(og.Image.Width))
			tw.meta("property", "og:image:height", strconv.Itoa(og.Image.Height))
			tw.meta("property", "og:image:alt", og.Image.Alt)
		}
		tw.meta("property", "og:type", og.Type)
		tw.meta("property", "fb:app_id", meta.FacebookAppID)

		tc := meta.Twitter
		tw.meta("name", "twitter:card", string(tc.Card))
		tw.meta("name", "twitter:site", tc.Site)
		tw.meta("name", "twitter:creator", tc.Creator)
		tw.meta("name", "twitter:title", tc.Title)
		tw.meta("name", "twitter:description", tc.Description)
		if tc.Image != nil {
			tw.meta("name", "twitter:image", tc.Image.URL)
			tw.meta("name", "twitter:image:alt", tc.Image.Alt)
		}

		tw.raw(`<link rel="stylesheet" href="` + StylesheetPath + `">`)
		for _, doc := range jsonLD {
			if doc == "" {
				continue
			}
			tw.raw(`<script type="application/ld+json">` + doc + `</script>`)
		}
		return tw.err
	})
}

// tagWriter keeps the first write error so tag emission reads linearly.
type tagWriter struct {
	w   io.Writer
	err error
}

func (t *tagWriter) raw(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}

// meta writes a <meta> tag keyed by name or property. Empty content is skipped.
func (t *tagWriter) meta(key, name, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	t.raw(`<meta ` + key + `="` + attr(name) + `" content="` + attr(content) + `">`)
}

func attr(s string) string {
	return templ.EscapeString(s)
}
