package main

import (
	"context"
	"errors"
	"fmt"

	"hackverse/internal/adapters/drafts"
	"hackverse/internal/domain"
	"hackverse/internal/forms"
)

func (a *app) hostHackathon(ctx context.Context, args []string) error {
	fs := newFlagSet("host", a.out)
	draftPath := fs.String("draft", "", "load the hackathon draft from this JSON file")
	save := fs.Bool("save", false, "save the draft to DRAFT_DIR before validating")
	dryRun := fs.Bool("dry-run", false, "validate every step but do not create the hackathon")
	var sets assignments
	fs.Var(&sets, "set", "set a field, e.g. -set title=HackVerse or -set eligibility.ageMin=18 (repeatable)")
	var edits itemEdits
	fs.Var(itemFlag{edits: &edits, op: opAdd}, "add", "append an entry to a list, e.g. -add tracks=AI or -add mentors=Asha (repeatable)")
	fs.Var(itemFlag{edits: &edits, op: opRemove}, "remove", "remove an entry from a list by index, e.g. -remove rules=0 (repeatable)")
	fs.Var(itemFlag{edits: &edits, op: opSetItem}, "set-item", "set a list entry, e.g. -set-item tracks.0=AI or -set-item mentors.0.expertise=ML (repeatable)")
	var invites indexes
	fs.Var(&invites, "invite", "send an invitation to the judge at this index (repeatable)")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	form := forms.NewHackathonForm()
	if *draftPath != "" {
		d, err := drafts.LoadHackathon(*draftPath)
		if err != nil {
			return err
		}
		form = forms.LoadHackathonForm(d)
	}
	for _, s := range sets {
		if err := form.SetField(s.Path, s.Value); err != nil {
			return err
		}
	}
	for _, e := range edits {
		if err := applyItemEdit(form, e); err != nil {
			return err
		}
	}

	for _, i := range invites {
		out, err := a.host.InviteJudge(ctx, form, i)
		a.report(out)
		if err != nil && !errors.Is(err, domain.ErrAlreadyInvited) {
			return err
		}
	}

	if *save {
		d := form.Draft()
		path, err := a.drafts.SaveHackathon(&d)
		if err != nil {
			return err
		}
		a.printf("Draft saved to %s\n", path)
	}

	w := forms.NewWizard(form)
	for !w.IsFinal() {
		step := w.Current()
		if err := w.Next(); err != nil {
			a.printf("Step %d of %d: %s\n", step.Number, w.Total(), step.Title)
			var errs domain.ValidationErrors
			if errors.As(err, &errs) {
				for _, k := range errs.Keys() {
					a.printf("  %s: %s\n", k, errs[k])
				}
			}
			return err
		}
		a.printf("Step %d of %d: %s ok\n", step.Number, w.Total(), step.Title)
	}

	if *dryRun {
		errs := w.Form().Validate()
		if len(errs) > 0 {
			for _, k := range errs.Keys() {
				a.printf("  %s: %s\n", k, errs[k])
			}
			return errs
		}
		a.printf("All %d steps are valid.\n", w.Total())
		return nil
	}

	created, out, err := a.host.Create(ctx, w)
	a.report(out)
	if err != nil {
		return err
	}
	a.printf("Hackathon id: %s\n", created.ID)
	return nil
}

func applyItemEdit(form *forms.HackathonForm, e itemEdit) error {
	field, err := forms.ParseListField(e.List)
	if err != nil {
		return err
	}
	switch e.Op {
	case opAdd:
		_, err = form.AddItem(field, e.Value)
		return err
	case opRemove:
		n, err := form.Len(field)
		if err != nil {
			return err
		}
		if e.Index >= n {
			return fmt.Errorf("%s.%d: no such entry: %w", e.List, e.Index, domain.ErrInvalidInput)
		}
		return form.RemoveItem(field, e.Index)
	default:
		return form.SetItemField(field, e.Index, e.Attr, e.Value)
	}
}
