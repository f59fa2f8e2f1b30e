package listing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hackverse/internal/domain"
)

// Formatter renders numbers and dates of a summary for a locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for the given BCP 47 tag; unknown tags fall
// back to English.
func NewFormatter(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return &Formatter{printer: message.NewPrinter(t)}
}

// Participants renders "current / max" with locale digit grouping.
func (f *Formatter) Participants(h domain.HackathonSummary) string {
	return f.printer.Sprintf("%d / %d", h.CurrentParticipants, h.MaxParticipants)
}

// Number renders n with locale digit grouping.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// DateRange renders the start and end dates of h.
func (f *Formatter) DateRange(h domain.HackathonSummary) string {
	const layout = "Jan 2, 2006"
	if h.StartDate.IsZero() {
		return ""
	}
	return h.StartDate.Format(layout) + " - " + h.EndDate.Format(layout)
}
