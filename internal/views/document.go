package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Document is the root layout: html[lang] > head > body with the boundary-wrapped page
// content followed by the telemetry widgets.
func Document(lang string, head, body templ.Component) templ.Component {
	if lang == "" {
		lang = "en"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(lang)+`"><head>`); err != nil {
			return err
		}
		if head != nil {
			if err := head.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		for _, c := range []templ.Component{ErrorBoundary(body), Analytics(), SpeedInsights()} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
