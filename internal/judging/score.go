// Package judging aggregates judge scores for submitted projects.
package judging

import (
	"fmt"

	"hackverse/internal/domain"
)

// Criterion is one axis a project is scored on.
type Criterion string

const (
	Innovation   Criterion = "innovation"
	Technical    Criterion = "technical"
	Presentation Criterion = "presentation"
	Impact       Criterion = "impact"
)

// CriterionInfo describes a criterion for display.
type CriterionInfo struct {
	Name        Criterion
	Label       string
	Description string
	MaxScore    int
}

var criteria = []CriterionInfo{
	{Innovation, "Innovation & Creativity", "How unique and creative is the solution?", domain.MaxCriterionScore},
	{Technical, "Technical Implementation", "How well is the solution implemented?", domain.MaxCriterionScore},
	{Presentation, "Presentation & Communication", "How well is the project presented?", domain.MaxCriterionScore},
	{Impact, "Impact & Potential", "What is the potential impact of the solution?", domain.MaxCriterionScore},
}

// MaxTotal is the best possible total score.
const MaxTotal = 4 * domain.MaxCriterionScore

// Criteria lists the scoring criteria in display order.
func Criteria() []CriterionInfo {
	out := make([]CriterionInfo, len(criteria))
	copy(out, criteria)
	return out
}

// ParseCriterion validates a criterion name.
func ParseCriterion(s string) (Criterion, error) {
	for _, c := range criteria {
		if string(c.Name) == s {
			return c.Name, nil
		}
	}
	return "", fmt.Errorf("criterion %q: %w", s, domain.ErrUnknownField)
}

// Clamp bounds a sub-score to [0, MaxCriterionScore].
func Clamp(v int) int {
	return max(0, min(v, domain.MaxCriterionScore))
}

// Total sums the four sub-scores after clamping each, so it is always in [0, MaxTotal].
func Total(s domain.Score) int {
	return Clamp(s.Innovation) + Clamp(s.Technical) + Clamp(s.Presentation) + Clamp(s.Impact)
}

// With returns s with criterion c set to the clamped value v.
func With(s domain.Score, c Criterion, v int) (domain.Score, error) {
	v = Clamp(v)
	switch c {
	case Innovation:
		s.Innovation = v
	case Technical:
		s.Technical = v
	case Presentation:
		s.Presentation = v
	case Impact:
		s.Impact = v
	default:
		return s, fmt.Errorf("criterion %q: %w", c, domain.ErrUnknownField)
	}
	return s, nil
}

// Value returns the sub-score of criterion c.
func Value(s domain.Score, c Criterion) int {
	switch c {
	case Innovation:
		return s.Innovation
	case Technical:
		return s.Technical
	case Presentation:
		return s.Presentation
	case Impact:
		return s.Impact
	}
	return 0
}
