package nav

import (
    "testing"

    "github.com/Bonythomasv/bonythomas-resume/internal/resume"
)

func TestBuildSkipsEmptySections(t *testing.T) {
    r := &resume.Resume{
        Summary: "Hello",
        Skills:  []string{"Go"},
    }
    got := Build(r)
    if len(got) != 2 {
        t.Fatalf("expected 2 items, got %d: %+v", len(got), got)
    }
    if got[0].Href != "#about" || got[0].Label != "About" {
        t.Fatalf("unexpected first item: %+v", got[0])
    }
    if got[1].Href != "#skills" || got[1].Label != "Skills" {
        t.Fatalf("unexpected second item: %+v", got[1])
    }
}

func TestBuildUsesExplicitLabel(t *testing.T) {
    r := &resume.Resume{Work: []resume.Work{{Company: "Acme"}}}
    got := Build(r)
    if len(got) != 1 || got[0].Label != "Work Experience" {
        t.Fatalf("expected Work Experience label, got %+v", got)
    }
}

func TestBuildNilResume(t *testing.T) {
    if got := Build(nil); len(got) != 0 {
        t.Fatalf("expected no items, got %+v", got)
    }
}
