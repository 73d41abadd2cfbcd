package handlers

import (
    "html/template"
    "time"

    "github.com/Bonythomasv/bonythomas-resume/internal/format"
    "github.com/Bonythomasv/bonythomas-resume/internal/nav"
    "github.com/Bonythomasv/bonythomas-resume/internal/resume"
    "github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

// HomeData is the view model for the resume page.
type HomeData struct {
    Title     string
    Lang      string
    Resume    *resume.Resume
    Summary   template.HTML
    Nav       []nav.RenderedItem
    Work      []WorkEntry
    Education []EducationEntry
    Year      int
}

// WorkEntry is a position with display-ready dates and description.
type WorkEntry struct {
    resume.Work
    Period      string
    Description template.HTML
}

// EducationEntry is a degree with a display-ready period.
type EducationEntry struct {
    resume.Education
    Period string
}

// BuildHomeData constructs the view model for the landing page.
func BuildHomeData(r *resume.Resume, meta seo.SiteMetadata, now time.Time) HomeData {
    vm := HomeData{
        Title:  meta.Title.Default,
        Lang:   meta.Language,
        Resume: r,
        Nav:    nav.Build(r),
        Year:   now.Year(),
    }
    if r == nil {
        return vm
    }
    vm.Summary = r.SummaryHTML()
    for _, w := range r.Work {
        vm.Work = append(vm.Work, WorkEntry{
            Work:        w,
            Period:      format.DateRange(w.Start, w.End),
            Description: resume.RenderMarkdown(w.Description),
        })
    }
    for _, e := range r.Education {
        vm.Education = append(vm.Education, EducationEntry{
            Education: e,
            Period:    format.DateRange(e.Start, e.End),
        })
    }
    return vm
}
