package seo

import (
    "strconv"
    "strings"
)

// Identity is the name/tagline pair every page title and description derives from.
type Identity struct {
    Name  string
    About string
}

// CardType selects how Twitter renders a shared link.
type CardType string

const (
    CardSummary           CardType = "summary"
    CardSummaryLargeImage CardType = "summary_large_image"
)

// Image is a social preview image.
type Image struct {
    URL    string
    Width  int
    Height int
    Alt    string
}

// Title holds the document title and the template used by descendant pages.
type Title struct {
    Default  string
    Template string
}

// Format applies the title template to a page name. An empty page yields the default title.
func (t Title) Format(page string) string {
    page = strings.TrimSpace(page)
    if page == "" || t.Template == "" {
        return t.Default
    }
    return strings.Replace(t.Template, "%s", page, 1)
}

type OpenGraph struct {
    Type        string
    Locale      string
    URL         string
    SiteName    string
    Title       string
    Description string
    UpdatedTime string
    Image       *Image
}

type Twitter struct {
    Card        CardType
    Site        string
    Creator     string
    Title       string
    Description string
    Image       *Image
}

// Robots captures crawler directives.
type Robots struct {
    Index           bool
    Follow          bool
    MaxImagePreview string
    MaxSnippet      int
    MaxVideoPreview int
}

// String renders the directives as a robots meta content value.
func (r Robots) String() string {
    parts := make([]string, 0, 5)
    if r.Index {
        parts = append(parts, "index")
    } else {
        parts = append(parts, "noindex")
    }
    if r.Follow {
        parts = append(parts, "follow")
    } else {
        parts = append(parts, "nofollow")
    }
    if r.MaxImagePreview != "" {
        parts = append(parts, "max-image-preview:"+r.MaxImagePreview)
    }
    parts = append(parts, "max-snippet:"+strconv.Itoa(r.MaxSnippet))
    parts = append(parts, "max-video-preview:"+strconv.Itoa(r.MaxVideoPreview))
    return strings.Join(parts, ", ")
}

// FormatDetection controls mobile auto-linking of text that looks like contact data.
type FormatDetection struct {
    Email     bool
    Address   bool
    Telephone bool
    Date      bool
    URL       bool
}

// String renders the format-detection meta content value.
func (f FormatDetection) String() string {
    flag := func(v bool) string {
        if v {
            return "yes"
        }
        return "no"
    }
    return strings.Join([]string{
        "telephone=" + flag(f.Telephone),
        "date=" + flag(f.Date),
        "address=" + flag(f.Address),
        "email=" + flag(f.Email),
        "url=" + flag(f.URL),
    }, ", ")
}

type AppleWebApp struct {
    Capable        bool
    StatusBarStyle string
    Title          string
}

// ThemeColor pairs a color-scheme media query with a color.
type ThemeColor struct {
    Media string
    Color string
}

// Viewport describes the viewport meta tag plus theme colors.
type Viewport struct {
    Width        string
    InitialScale float64
    MaximumScale float64
    ThemeColors  []ThemeColor
}

// String renders the viewport meta content value.
func (v Viewport) String() string {
    parts := []string{"width=" + v.Width}
    if v.InitialScale > 0 {
        parts = append(parts, "initial-scale="+strconv.FormatFloat(v.InitialScale, 'f', -1, 64))
    }
    if v.MaximumScale > 0 {
        parts = append(parts, "maximum-scale="+strconv.FormatFloat(v.MaximumScale, 'f', -1, 64))
    }
    return strings.Join(parts, ", ")
}

// SiteMetadata is the full metadata record for one rendered page.
type SiteMetadata struct {
    CanonicalURL    string
    Language        string
    Title           Title
    Description     string
    Keywords        []string
    Authors         []string
    Creator         string
    Publisher       string
    ApplicationName string
    FormatDetection FormatDetection
    OpenGraph       OpenGraph
    Twitter         Twitter
    Robots          Robots
    GoogleBot       Robots
    AppleWebApp     AppleWebApp
    FacebookAppID   string
}
