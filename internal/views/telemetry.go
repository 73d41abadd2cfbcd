package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	analyticsScript     = "/_vercel/insights/script.js"
	speedInsightsScript = "/_vercel/speed-insights/script.js"
)

// Analytics mounts the hosting platform's page-view analytics script.
func Analytics() templ.Component {
	return deferredScript(analyticsScript, "analytics")
}

// SpeedInsights mounts the hosting platform's web-vitals reporting script.
func SpeedInsights() templ.Component {
	return deferredScript(speedInsightsScript, "speed-insights")
}

func deferredScript(src, widget string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script defer src="`+src+`" data-widget="`+widget+`"></script>`)
		return err
	})
}
