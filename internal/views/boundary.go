package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/Bonythomasv/bonythomas-resume/internal/requestctx"
)

// FallbackMessage is shown in place of page content that failed to render.
const FallbackMessage = "Something went wrong while rendering this section."

// ErrorBoundary renders children into a buffer first. A render error or panic is logged
// and replaced by a fallback block, so the surrounding document still completes.
func ErrorBoundary(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := renderSafely(ctx, children, &buf); err != nil {
			fields := append(requestctx.Page(ctx).Fields(), zap.Error(err))
			requestctx.Logger(ctx).Error("page content failed to render", fields...)
			return fallback(w)
		}
		_, err := buf.WriteTo(w)
		return err
	})
}

func renderSafely(ctx context.Context, c templ.Component, w io.Writer) (err error) {
	if c == nil {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("views: render panic: %v", rec)
		}
	}()
	return c.Render(ctx, w)
}

func fallback(w io.Writer) error {
	_, err := io.WriteString(w, `<div class="error-boundary" role="alert"><p>`+templ.EscapeString(FallbackMessage)+`</p></div>`)
	return err
}
