package resume

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

// ErrMissingIdentity is returned when the data file lacks the identity fields.
// It wraps seo.ErrConfigurationMissing so callers can match either.
var ErrMissingIdentity = fmt.Errorf("%w: resume: name is required", seo.ErrConfigurationMissing)

//go:embed data/resume.yaml
var defaultData []byte

// Resume is the static data source for the site.
type Resume struct {
	Name               string      `yaml:"name"`
	Initials           string      `yaml:"initials"`
	Location           string      `yaml:"location"`
	LocationLink       string      `yaml:"location_link"`
	About              string      `yaml:"about"`
	Summary            string      `yaml:"summary"`
	AvatarURL          string      `yaml:"avatar_url"`
	PersonalWebsiteURL string      `yaml:"personal_website_url"`
	Contact            Contact     `yaml:"contact"`
	Keywords           []string    `yaml:"keywords"`
	Education          []Education `yaml:"education"`
	Work               []Work      `yaml:"work"`
	Skills             []string    `yaml:"skills"`
	Projects           []Project   `yaml:"projects"`
}

// Contact lists the ways to reach the resume subject.
type Contact struct {
	Email  string   `yaml:"email"`
	Tel    string   `yaml:"tel"`
	Social []Social `yaml:"social"`
}

type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Education struct {
	School string `yaml:"school"`
	Degree string `yaml:"degree"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

// Work is one position. An empty End means the role is current.
type Work struct {
	Company     string   `yaml:"company"`
	Link        string   `yaml:"link"`
	Badges      []string `yaml:"badges"`
	Title       string   `yaml:"title"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Description string   `yaml:"description"`
}

type Project struct {
	Title       string   `yaml:"title"`
	TechStack   []string `yaml:"techstack"`
	Description string   `yaml:"description"`
	Link        string   `yaml:"link"`
}

// Default parses the resume bundled with the binary.
func Default() (*Resume, error) {
	return Parse(defaultData)
}

// Load reads a resume from disk. Files ending in .md or .markdown are read as Markdown with
// the resume fields in YAML front matter and the body as the summary; anything else is YAML.
func Load(path string) (*Resume, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resume: read %s: %w", path, err)
	}
	parse := Parse
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		parse = ParseMarkdown
	}
	r, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resume: %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes resume YAML. Only the name key is mandatory; everything else degrades to empty.
func Parse(raw []byte) (*Resume, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("resume: parse yaml: %w", err)
	}
	if _, ok := doc["name"]; !ok {
		return nil, ErrMissingIdentity
	}
	var r Resume
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("resume: parse yaml: %w", err)
	}
	return finish(&r)
}

func finish(r *Resume) (*Resume, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.About = strings.TrimSpace(r.About)
	if r.Initials == "" {
		r.Initials = initials(r.Name)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Identity returns the name/tagline pair all page metadata derives from.
func (r *Resume) Identity() *seo.Identity {
	if r == nil {
		return nil
	}
	return &seo.Identity{Name: r.Name, About: r.About}
}

// SocialURLs lists profile links, used for schema.org sameAs.
func (r *Resume) SocialURLs() []string {
	out := make([]string, 0, len(r.Contact.Social))
	for _, s := range r.Contact.Social {
		if u := strings.TrimSpace(s.URL); u != "" {
			out = append(out, u)
		}
	}
	return out
}

var (
	markdown = goldmark.New()
	policy   = bluemonday.UGCPolicy()
)

// SummaryHTML renders the markdown summary to sanitized HTML.
func (r *Resume) SummaryHTML() template.HTML {
	return RenderMarkdown(r.Summary)
}

// RenderMarkdown converts markdown to HTML and strips anything outside the UGC policy.
func RenderMarkdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
