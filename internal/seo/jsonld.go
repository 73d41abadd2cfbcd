package seo

import (
    "encoding/json"
)

// Person returns a minimal Person schema for the resume subject.
func Person(name, jobTitle, url, imageURL string, sameAs []string) map[string]any {
    m := map[string]any{
        "@context": "https://schema.org",
        "@type":    "Person",
        "name":     name,
    }
    if jobTitle != "" { m["jobTitle"] = jobTitle }
    if url != "" { m["url"] = url }
    if imageURL != "" { m["image"] = imageURL }
    if len(sameAs) > 0 { m["sameAs"] = sameAs }
    return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, inLanguage string) map[string]any {
    m := map[string]any{
        "@context": "https://schema.org",
        "@type":    "WebSite",
        "name":     name,
    }
    if url != "" { m["url"] = url }
    if inLanguage != "" { m["inLanguage"] = inLanguage }
    return m
}

// ProfilePage wraps a Person as the main entity of the page described by meta.
func ProfilePage(meta SiteMetadata, person map[string]any) map[string]any {
    m := map[string]any{
        "@context":    "https://schema.org",
        "@type":       "ProfilePage",
        "name":        meta.Title.Default,
        "description": meta.Description,
    }
    if meta.OpenGraph.UpdatedTime != "" { m["dateModified"] = meta.OpenGraph.UpdatedTime }
    if person != nil {
        entity := make(map[string]any, len(person))
        for k, v := range person {
            if k == "@context" {
                continue
            }
            entity[k] = v
        }
        m["mainEntity"] = entity
    }
    return m
}

// StructuredData returns the JSON-LD payloads rendered into the document head:
// the WebSite, then the ProfilePage describing the resume subject. A payload
// that cannot be encoded is left out rather than emitted empty.
func StructuredData(meta SiteMetadata, jobTitle, imageURL string, sameAs []string) []string {
    site := staticURL(meta)
    name := ""
    if len(meta.Authors) > 0 {
        name = meta.Authors[0]
    }
    return encodeLD(
        WebSite(meta.OpenGraph.SiteName, site, meta.Language),
        ProfilePage(meta, Person(name, jobTitle, site, imageURL, sameAs)),
    )
}

func encodeLD(payloads ...map[string]any) []string {
    out := make([]string, 0, len(payloads))
    for _, p := range payloads {
        b, err := json.Marshal(p)
        if err != nil {
            continue
        }
        out = append(out, string(b))
    }
    return out
}
