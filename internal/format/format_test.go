package format

import (
    "testing"
    "time"
)

func TestDateRange(t *testing.T) {
    tests := []struct {
        start, end, want string
    }{
        {"2018-06", "2021-03", "Jun 2018 - Mar 2021"},
        {"2021-04", "", "Apr 2021 - Present"},
        {"2016", "2018", "2016 - 2018"},
        {"", "", "Present"},
        {"Spring 2019", "2020", "Spring 2019 - 2020"},
    }
    for _, tc := range tests {
        if got := DateRange(tc.start, tc.end); got != tc.want {
            t.Errorf("DateRange(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
        }
    }
}

func TestLastModified(t *testing.T) {
    got := LastModified("2016", "2021-04", "bogus", "2019-12-31")
    want := time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("expected %v, got %v", want, got)
    }
    if !LastModified().IsZero() {
        t.Fatalf("expected zero time for no input")
    }
}
