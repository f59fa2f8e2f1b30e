package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"hackverse/internal/domain"
	"hackverse/internal/judging"
)

func (a *app) judgeProjects(ctx context.Context, args []string) error {
	fs := newFlagSet("judge", a.out)
	project := fs.String("project", "", "id of the project to score; without it the projects are listed")
	feedback := fs.String("feedback", "", "feedback for the team")
	given := scores{}
	fs.Var(given, "score", "criterion=value, e.g. -score innovation=20 (repeatable, 0-25 each)")
	id, err := oneID(fs, args, "hackathon id")
	if err != nil {
		return err
	}

	card, err := a.judge.Scorecard(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			a.printf("Please login to judge this hackathon.\n")
		}
		return err
	}

	if *project == "" {
		return a.printRanking(card)
	}

	pid := domain.EntityID(strings.TrimSpace(*project))
	if err := card.Select(pid); err != nil {
		return err
	}
	for name, v := range given {
		c, err := judging.ParseCriterion(name)
		if err != nil {
			return err
		}
		if err := card.SetScore(pid, c, v); err != nil {
			return err
		}
	}
	if *feedback != "" {
		if err := card.SetFeedback(pid, *feedback); err != nil {
			return err
		}
	}

	p, _ := card.Selected()
	for _, c := range judging.Criteria() {
		a.printf("  %-26s %2d / %d\n", c.Label, judging.Value(p.Scores, c.Name), c.MaxScore)
	}
	a.printf("  %-26s %2d / %d\n", "Total", judging.Total(p.Scores), judging.MaxTotal)

	out, err := a.judge.Submit(ctx, card, pid)
	a.report(out)
	return err
}

func (a *app) printRanking(card *judging.Scorecard) error {
	ranking := card.Ranking()
	if len(ranking) == 0 {
		a.printf("No projects submitted yet.\n")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	a.fprintRow(tw, "ID", "PROJECT", "TEAM", "TOTAL")
	for _, r := range ranking {
		a.fprintRow(tw, r.Project.ID.String(), r.Project.ProjectName, r.Project.TeamName, fmt.Sprintf("%d/%d", r.Total, judging.MaxTotal))
	}
	return tw.Flush()
}
