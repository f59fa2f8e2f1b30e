package main

import (
	"context"

	"hackverse/internal/adapters/drafts"
	"hackverse/internal/domain"
	"hackverse/internal/forms"
)

func (a *app) registerForHackathon(ctx context.Context, args []string) error {
	fs := newFlagSet("register", a.out)
	draftPath := fs.String("draft", "", "load the registration draft from this JSON file")
	save := fs.Bool("save", false, "save the draft to DRAFT_DIR before sending")
	var sets assignments
	fs.Var(&sets, "set", "set a field, e.g. -set fullName='Priya Sharma' or -set hasTeam=true (repeatable)")
	var team members
	fs.Var(&team, "member", "add a team member as name,email[,role] (repeatable)")
	id, err := oneID(fs, args, "hackathon id")
	if err != nil {
		return err
	}

	form := forms.NewRegistrationForm(id)
	if *draftPath != "" {
		d, err := drafts.LoadRegistration(*draftPath)
		if err != nil {
			return err
		}
		form = forms.LoadRegistrationForm(id, d)
	}
	for _, s := range sets {
		if err := form.SetField(s.Path, s.Value); err != nil {
			return err
		}
	}
	for _, m := range team {
		n := len(form.Draft().TeamMembers)
		if err := form.AppendItem(forms.ListTeamMembers); err != nil {
			return err
		}
		if err := form.ReplaceItem(forms.ListTeamMembers, n, m); err != nil {
			return err
		}
	}

	if *save {
		d := form.Draft()
		path, err := a.drafts.SaveRegistration(id, &d)
		if err != nil {
			return err
		}
		a.printf("Draft saved to %s\n", path)
	}

	out, err := a.register.Register(ctx, form)
	a.report(out)
	return err
}

func (a *app) submitProject(ctx context.Context, args []string) error {
	fs := newFlagSet("submit", a.out)
	var sub domain.ProjectSubmission
	fs.StringVar(&sub.Description, "description", "", "what the project does")
	fs.StringVar(&sub.GithubRepo, "repo", "", "GitHub repository URL")
	fs.StringVar(&sub.DemoLink, "demo", "", "demo URL")
	fs.StringVar(&sub.Presentation, "presentation", "", "slides URL")
	id, err := oneID(fs, args, "hackathon id")
	if err != nil {
		return err
	}

	out, err := a.submission.Submit(ctx, id, &sub)
	a.report(out)
	return err
}
