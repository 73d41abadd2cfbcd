package nav

import (
    "strings"

    "github.com/Bonythomasv/bonythomas-resume/internal/resume"
)

// Item is an in-page section of the resume.
type Item struct {
    ID    string // anchor id, e.g. "work"
    Label string // optional; derived from ID when empty
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
    Href  string
    Label string
}

// Main is the section order on the page.
var Main = []Item{
    {ID: "about"},
    {ID: "work", Label: "Work Experience"},
    {ID: "education"},
    {ID: "skills"},
    {ID: "projects"},
}

// Build renders navigation entries for the sections that have content.
func Build(r *resume.Resume) []RenderedItem {
    items := make([]RenderedItem, 0, len(Main))
    for _, it := range Main {
        if !hasContent(r, it.ID) {
            continue
        }
        label := it.Label
        if label == "" {
            label = titleFromSegment(it.ID)
        }
        items = append(items, RenderedItem{Href: "#" + it.ID, Label: label})
    }
    return items
}

func hasContent(r *resume.Resume, id string) bool {
    if r == nil {
        return false
    }
    switch id {
    case "about":
        return strings.TrimSpace(r.Summary) != ""
    case "work":
        return len(r.Work) > 0
    case "education":
        return len(r.Education) > 0
    case "skills":
        return len(r.Skills) > 0
    case "projects":
        return len(r.Projects) > 0
    }
    return false
}

func titleFromSegment(seg string) string {
    if seg == "" {
        return seg
    }
    // replace hyphens/underscores with spaces and capitalize first letter
    s := strings.ReplaceAll(seg, "-", " ")
    s = strings.ReplaceAll(s, "_", " ")
    r := []rune(s)
    r[0] = toUpper(r[0])
    return string(r)
}

func toUpper(r rune) rune {
    // ASCII only is sufficient for section ids
    if r >= 'a' && r <= 'z' {
        return r - ('a' - 'A')
    }
    return r
}
