package seo

import (
    "encoding/xml"
    "net/url"
    "strings"
    "time"
)

// RobotsTxt renders a robots.txt that agrees with the page's robots directives.
func RobotsTxt(meta SiteMetadata) string {
    var b strings.Builder
    b.WriteString("User-agent: *\n")
    if meta.Robots.Index {
        b.WriteString("Allow: /\n")
    } else {
        b.WriteString("Disallow: /\n")
    }
    if site := staticURL(meta); site != "" {
        if u, err := url.Parse(site); err == nil {
            u.Path = "/sitemap.xml"
            b.WriteString("\nSitemap: " + u.String() + "\n")
        }
    }
    return b.String()
}

type urlSet struct {
    XMLName xml.Name     `xml:"urlset"`
    XMLNS   string       `xml:"xmlns,attr"`
    URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
    Loc        string `xml:"loc"`
    LastMod    string `xml:"lastmod,omitempty"`
    ChangeFreq string `xml:"changefreq,omitempty"`
    Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders a single-entry sitemap for the canonical page.
func Sitemap(meta SiteMetadata, lastMod time.Time) ([]byte, error) {
    entry := sitemapURL{
        Loc:        staticURL(meta),
        ChangeFreq: "monthly",
        Priority:   "1.0",
    }
    if !lastMod.IsZero() {
        entry.LastMod = lastMod.UTC().Format("2006-01-02")
    }
    set := urlSet{
        XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
        URLs:  []sitemapURL{entry},
    }
    body, err := xml.MarshalIndent(set, "", "  ")
    if err != nil {
        return nil, err
    }
    return append([]byte(xml.Header), append(body, '\n')...), nil
}

// staticURL strips the cache-busting parameter so crawlers see one stable address.
func staticURL(meta SiteMetadata) string {
    u, err := url.Parse(meta.CanonicalURL)
    if err != nil {
        return meta.CanonicalURL
    }
    q := u.Query()
    if q.Has(cacheBustParam) {
        q.Del(cacheBustParam)
        u.RawQuery = q.Encode()
    }
    return u.String()
}
