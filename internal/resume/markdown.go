package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ParseMarkdown decodes a resume written as Markdown. The front matter carries the same keys
// as the YAML form; a non-empty body replaces the summary key.
func ParseMarkdown(raw []byte) (*Resume, error) {
	var keys map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &keys)
	if err != nil {
		return nil, fmt.Errorf("resume: parse front matter: %w", err)
	}
	if _, ok := keys["name"]; !ok {
		return nil, ErrMissingIdentity
	}

	var r Resume
	if _, err := frontmatter.Parse(bytes.NewReader(raw), &r); err != nil {
		return nil, fmt.Errorf("resume: parse front matter: %w", err)
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		r.Summary = text
	}
	return finish(&r)
}
