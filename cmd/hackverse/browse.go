package main

import (
	"context"
	"strings"
	"text/tabwriter"

	"hackverse/internal/listing"
)

func (a *app) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list", a.out)
	query := fs.String("q", "", "search title, description and theme")
	status := fs.String("status", listing.StatusAll, "all, upcoming, ongoing or completed")
	venue := fs.String("venue", string(listing.VenueAll), "all, virtual or in-person")
	sortKey := fs.String("sort", string(listing.SortDate), "date, prize, participants or deadline")
	order := fs.String("order", string(listing.Ascending), "asc or desc")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	c, err := listing.ParseCriteria(*query, *status, *venue, *sortKey, *order)
	if err != nil {
		return err
	}
	items, out, err := a.browse.List(ctx, c)
	if err != nil {
		a.report(out)
		return err
	}
	if len(items) == 0 {
		a.printf("No hackathons match.\n")
		return nil
	}

	now := a.browse.Now()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	a.fprintRow(tw, "ID", "TITLE", "STATUS", "DATES", "VENUE", "PARTICIPANTS", "PRIZE")
	for _, h := range items {
		a.fprintRow(tw,
			h.ID.String(),
			h.Title,
			string(h.Status(now)),
			a.format.DateRange(h),
			h.Venue,
			a.format.Participants(h),
			h.PrizePool,
		)
	}
	return tw.Flush()
}

func (a *app) fprintRow(tw *tabwriter.Writer, cols ...string) {
	_, _ = tw.Write([]byte(strings.Join(cols, "\t") + "\n"))
}

func (a *app) show(ctx context.Context, args []string) error {
	fs := newFlagSet("show", a.out)
	id, err := oneID(fs, args, "hackathon id")
	if err != nil {
		return err
	}
	h, out, err := a.browse.Show(ctx, id)
	if err != nil {
		a.report(out)
		return err
	}

	a.printf("%s  [%s]\n", h.Title, h.Status(a.browse.Now()))
	a.printf("%s\n\n", h.Description)
	a.printf("Dates:         %s\n", a.format.DateRange(h.HackathonSummary))
	if !h.RegistrationDeadline.IsZero() {
		a.printf("Register by:   %s\n", h.RegistrationDeadline)
	}
	if h.Platform != "" {
		a.printf("Platform:      %s %s\n", h.Platform, h.PlatformLink)
	} else {
		a.printf("Venue:         %s\n", h.Venue)
	}
	a.printf("Participants:  %s\n", a.format.Participants(h.HackathonSummary))
	a.printf("Prize pool:    %s\n", h.PrizePool)
	if h.Theme != "" {
		a.printf("Theme:         %s\n", h.Theme)
	}
	a.printList("Tracks", h.Tracks)
	a.printList("Rules", h.Rules)
	a.printList("Sponsors", h.Sponsors)
	if len(h.Schedule) > 0 {
		a.printf("Schedule:\n")
		for _, e := range h.Schedule {
			a.printf("  %s %s  %s\n", e.Date, e.Time, e.Title)
		}
	}
	if len(h.Mentors) > 0 {
		a.printf("Mentors:\n")
		for _, m := range h.Mentors {
			a.printf("  %s (%s)\n", m.Name, m.Expertise)
		}
	}
	if len(h.Resources) > 0 {
		a.printf("Resources:\n")
		for _, r := range h.Resources {
			a.printf("  %s %s\n", r.Name, r.Link)
		}
	}
	if h.Contact.Email != "" {
		a.printf("Contact:       %s\n", h.Contact.Email)
	}
	return nil
}

func (a *app) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	a.printf("%s:\n", title)
	for _, s := range items {
		a.printf("  - %s\n", s)
	}
}
