package judging

import (
	"cmp"
	"fmt"
	"slices"

	"hackverse/internal/domain"
)

// Scorecard holds the projects a judge is scoring.
type Scorecard struct {
	projects []domain.Project
	selected int
}

// NewScorecard copies projects into a new scorecard with nothing selected.
func NewScorecard(projects []domain.Project) *Scorecard {
	return &Scorecard{projects: slices.Clone(projects), selected: -1}
}

// Projects returns a copy of the projects in their original order.
func (c *Scorecard) Projects() []domain.Project {
	return slices.Clone(c.projects)
}

func (c *Scorecard) index(id domain.EntityID) (int, error) {
	i := slices.IndexFunc(c.projects, func(p domain.Project) bool { return p.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return i, nil
}

// Project returns the project with the given id.
func (c *Scorecard) Project(id domain.EntityID) (domain.Project, error) {
	i, err := c.index(id)
	if err != nil {
		return domain.Project{}, err
	}
	return c.projects[i], nil
}

// Select marks a project as the one being reviewed.
func (c *Scorecard) Select(id domain.EntityID) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	c.selected = i
	return nil
}

// Selected returns the project being reviewed, if any.
func (c *Scorecard) Selected() (domain.Project, bool) {
	if c.selected < 0 {
		return domain.Project{}, false
	}
	return c.projects[c.selected], true
}

// SetScore stores a clamped sub-score for a project; other criteria are kept.
func (c *Scorecard) SetScore(id domain.EntityID, criterion Criterion, v int) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	s, err := With(c.projects[i].Scores, criterion, v)
	if err != nil {
		return err
	}
	c.projects[i].Scores = s
	return nil
}

// SetFeedback stores the judge's written feedback for a project.
func (c *Scorecard) SetFeedback(id domain.EntityID, feedback string) error {
	i, err := c.index(id)
	if err != nil {
		return err
	}
	c.projects[i].Feedback = feedback
	return nil
}

// Submission builds the score submission for a project.
func (c *Scorecard) Submission(id domain.EntityID) (*domain.ScoreSubmission, error) {
	p, err := c.Project(id)
	if err != nil {
		return nil, err
	}
	return &domain.ScoreSubmission{Scores: p.Scores, Total: Total(p.Scores), Feedback: p.Feedback}, nil
}

// Ranked is a project with its total score.
type Ranked struct {
	Project domain.Project
	Total   int
}

// Ranking orders projects by total score, best first; ties keep their order.
func (c *Scorecard) Ranking() []Ranked {
	out := make([]Ranked, len(c.projects))
	for i, p := range c.projects {
		out[i] = Ranked{Project: p, Total: Total(p.Scores)}
	}
	slices.SortStableFunc(out, func(a, b Ranked) int { return cmp.Compare(b.Total, a.Total) })
	return out
}
