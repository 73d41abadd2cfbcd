package seo

import (
    "errors"
    "fmt"
    "net/url"
    "strconv"
    "strings"
    "sync/atomic"
    "time"

    "golang.org/x/text/language"
)

// ErrConfigurationMissing is returned when the identity record or site address is absent or unusable.
var ErrConfigurationMissing = errors.New("seo: configuration missing")

const (
    defaultLocale       = "en-US"
    defaultImageWidth   = 1200
    defaultImageHeight  = 630
    cacheBustParam      = "t"
    maxImagePreviewSize = "large"
)

// baselineKeywords always lead the keyword list.
var baselineKeywords = []string{"resume", "cv", "portfolio"}

// Options tunes a Builder. Zero values pick the defaults used by the live site.
type Options struct {
    // SiteURL is the absolute address of the page. Required.
    SiteURL string
    // CacheBust appends a time-derived query parameter to the canonical URL.
    // Values are milliseconds, bumped so that no two builds share one.
    CacheBust bool
    // SocialImage enables a preview image for social cards; nil suppresses images entirely.
    SocialImage   *Image
    TwitterHandle string
    // Locale is a BCP 47 tag such as "en-US".
    Locale        string
    FacebookAppID string
    // Keywords are appended after the baseline keywords and the identity name.
    Keywords []string
    Now      func() time.Time
}

// Builder produces SiteMetadata and Viewport records for a single identity.
// Its configuration is fixed after construction; it is safe for concurrent use.
type Builder struct {
    identity Identity
    site     *url.URL
    opts     Options
    image    *Image
    lang     string
    ogLocale string
    keywords []string

    // lastBust is the most recent cache-bust value handed out.
    lastBust atomic.Int64
}

// NewBuilder validates the inputs once so Build never fails.
func NewBuilder(identity *Identity, opts Options) (*Builder, error) {
    if identity == nil {
        return nil, fmt.Errorf("%w: identity record is nil", ErrConfigurationMissing)
    }
    site, err := parseSiteURL(opts.SiteURL)
    if err != nil {
        return nil, err
    }
    if opts.Now == nil {
        opts.Now = time.Now
    }
    lang, ogLocale := resolveLocale(opts.Locale)

    b := &Builder{
        identity: *identity,
        site:     site,
        opts:     opts,
        lang:     lang,
        ogLocale: ogLocale,
    }
    if opts.SocialImage != nil {
        img, err := resolveImage(site, *opts.SocialImage)
        if err != nil {
            return nil, err
        }
        b.image = &img
    }
    b.keywords = mergeKeywords(b.identity.Name, baselineKeywords, opts.Keywords)
    return b, nil
}

// Identity returns the identity record the builder derives text from.
func (b *Builder) Identity() Identity { return b.identity }

// SiteURL returns the static canonical address (never cache-busted).
func (b *Builder) SiteURL() string { return b.site.String() }

// Build assembles the metadata and viewport records. The only impure input is the clock.
func (b *Builder) Build() (SiteMetadata, Viewport) {
    now := b.opts.Now()
    name := b.identity.Name
    title := name + " - " + b.identity.About
    description := "Professional resume of " + name + ", " + b.identity.About
    siteName := name + "'s Resume"
    canonical := b.canonical(now)

    card := CardSummary
    var ogImage, twImage *Image
    if b.image != nil {
        card = CardSummaryLargeImage
        ogImage = cloneImage(b.image)
        twImage = cloneImage(b.image)
    }

    robots := Robots{
        Index:           true,
        Follow:          true,
        MaxImagePreview: maxImagePreviewSize,
        MaxSnippet:      -1,
        MaxVideoPreview: -1,
    }

    meta := SiteMetadata{
        CanonicalURL: canonical,
        Language:     b.lang,
        Title: Title{
            Default:  title,
            Template: "%s | " + name,
        },
        Description:     description,
        Keywords:        append([]string(nil), b.keywords...),
        Authors:         []string{name},
        Creator:         name,
        Publisher:       name,
        ApplicationName: siteName,
        OpenGraph: OpenGraph{
            Type:        "website",
            Locale:      b.ogLocale,
            URL:         canonical,
            SiteName:    siteName,
            Title:       title,
            Description: description,
            UpdatedTime: now.UTC().Format(time.RFC3339),
            Image:       ogImage,
        },
        Twitter: Twitter{
            Card:        card,
            Site:        b.opts.TwitterHandle,
            Creator:     b.opts.TwitterHandle,
            Title:       title,
            Description: description,
            Image:       twImage,
        },
        Robots:    robots,
        GoogleBot: robots,
        AppleWebApp: AppleWebApp{
            Capable:        true,
            StatusBarStyle: "default",
            Title:          title,
        },
        FacebookAppID: strings.TrimSpace(b.opts.FacebookAppID),
    }

    viewport := Viewport{
        Width:        "device-width",
        InitialScale: 1,
        MaximumScale: 5,
        ThemeColors: []ThemeColor{
            {Media: "(prefers-color-scheme: light)", Color: "white"},
            {Media: "(prefers-color-scheme: dark)", Color: "black"},
        },
    }
    return meta, viewport
}

func (b *Builder) canonical(now time.Time) string {
    if !b.opts.CacheBust {
        return b.site.String()
    }
    u := *b.site
    q := u.Query()
    q.Set(cacheBustParam, strconv.FormatInt(b.nextBust(now), 10))
    u.RawQuery = q.Encode()
    return u.String()
}

// nextBust returns now in milliseconds, or one past the previous value when the
// clock has not advanced, so consecutive builds never repeat a canonical URL.
func (b *Builder) nextBust(now time.Time) int64 {
    for {
        last := b.lastBust.Load()
        v := now.UnixMilli()
        if v <= last {
            v = last + 1
        }
        if b.lastBust.CompareAndSwap(last, v) {
            return v
        }
    }
}

func parseSiteURL(raw string) (*url.URL, error) {
    raw = strings.TrimSpace(raw)
    if raw == "" {
        return nil, fmt.Errorf("%w: site url is empty", ErrConfigurationMissing)
    }
    u, err := url.Parse(raw)
    if err != nil {
        return nil, fmt.Errorf("%w: site url %q: %v", ErrConfigurationMissing, raw, err)
    }
    if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
        return nil, fmt.Errorf("%w: site url %q is not absolute", ErrConfigurationMissing, raw)
    }
    if u.Path == "" {
        u.Path = "/"
    }
    u.Fragment = ""
    return u, nil
}

func resolveImage(site *url.URL, img Image) (Image, error) {
    ref, err := url.Parse(strings.TrimSpace(img.URL))
    if err != nil || img.URL == "" {
        return Image{}, fmt.Errorf("%w: social image url %q", ErrConfigurationMissing, img.URL)
    }
    img.URL = site.ResolveReference(ref).String()
    if img.Width <= 0 {
        img.Width = defaultImageWidth
    }
    if img.Height <= 0 {
        img.Height = defaultImageHeight
    }
    return img, nil
}

// resolveLocale returns the html lang attribute and the og:locale value for a BCP 47 tag.
func resolveLocale(raw string) (string, string) {
    raw = strings.TrimSpace(raw)
    if raw == "" {
        raw = defaultLocale
    }
    tag, err := language.Parse(raw)
    if err != nil {
        tag = language.MustParse(defaultLocale)
    }
    base, _ := tag.Base()
    region, conf := tag.Region()
    if conf == language.No {
        return base.String(), base.String()
    }
    return base.String(), base.String() + "_" + region.String()
}

// mergeKeywords lists name right after the baseline keywords, then extras.
// Duplicates are dropped case-insensitively, except that name always wins over a
// baseline entry it collides with, so the identity appears exactly as written.
func mergeKeywords(name string, baseline, extras []string) []string {
    name = strings.TrimSpace(name)
    nameKey := strings.ToLower(name)
    seen := map[string]struct{}{}
    out := make([]string, 0, len(baseline)+1+len(extras))
    add := func(kw string) {
        kw = strings.TrimSpace(kw)
        if kw == "" {
            return
        }
        key := strings.ToLower(kw)
        if _, ok := seen[key]; ok {
            return
        }
        seen[key] = struct{}{}
        out = append(out, kw)
    }
    for _, kw := range baseline {
        if name != "" && strings.ToLower(strings.TrimSpace(kw)) == nameKey {
            continue
        }
        add(kw)
    }
    add(name)
    for _, kw := range extras {
        add(kw)
    }
    return out
}

func cloneImage(img *Image) *Image {
    if img == nil {
        return nil
    }
    cp := *img
    return &cp
}
