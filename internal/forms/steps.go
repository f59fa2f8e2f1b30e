package forms

import (
	"strconv"

	"hackverse/internal/domain"
)

// Step is one page of the hackathon creation wizard.
type Step struct {
	Number int
	Title  string
	check  func(d *domain.HackathonDraft, errs domain.ValidationErrors)
}

var hackathonSteps = []Step{
	{Number: 1, Title: "Basic Information", check: checkBasics},
	{Number: 2, Title: "Location & Format", check: checkLocation},
	{Number: 3, Title: "Eligibility & Theme", check: checkEligibility},
	{Number: 4, Title: "Rules & Schedule", check: checkSchedule},
	{Number: 5, Title: "Sponsors & Resources", check: checkResources},
	{Number: 6, Title: "Mentors & Judges", check: checkJudges},
	{Number: 7, Title: "Contact Information", check: checkContact},
}

// HackathonSteps lists the wizard steps in order.
func HackathonSteps() []Step {
	out := make([]Step, len(hackathonSteps))
	copy(out, hackathonSteps)
	return out
}

func checkBasics(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	if blank(d.Title) {
		errs.Add("title", "Title is required")
	}
	if blank(d.Description) {
		errs.Add("description", "Description is required")
	}
	if d.MaxParticipants <= 0 {
		errs.Add("maxParticipants", "Maximum participants must be greater than 0")
	}
	if blank(d.PrizePool) {
		errs.Add("prizePool", "Prize pool is required")
	}
	if d.StartDate.IsZero() {
		errs.Add("startDate", "Start date is required")
	}
	switch {
	case d.EndDate.IsZero():
		errs.Add("endDate", "End date is required")
	case !d.StartDate.IsZero() && d.EndDate.Until().Before(d.StartDate.Time):
		errs.Add("endDate", "End date must not be before the start date")
	}
	switch {
	case d.RegistrationDeadline.IsZero():
		errs.Add("registrationDeadline", "Registration deadline is required")
	case !d.EndDate.IsZero() && d.RegistrationDeadline.After(d.EndDate.Until()):
		errs.Add("registrationDeadline", "Registration deadline must not be after the end date")
	}
}

func checkLocation(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	switch d.EventType {
	case domain.EventTypeVirtual:
		if blank(d.Platform) {
			errs.Add("platform", "Platform is required")
		}
		switch {
		case blank(d.PlatformLink):
			errs.Add("platformLink", "Platform link is required")
		case !ValidURL(d.PlatformLink):
			errs.Add("platformLink", "Platform link must be a valid URL")
		}
	case domain.EventTypeInPerson:
		if blank(d.Venue) {
			errs.Add("venue", "Venue is required")
		}
	default:
		errs.Add("eventType", "Event type is required")
	}
}

func checkEligibility(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	e := d.Eligibility
	if e.AgeMin <= 0 {
		errs.Add("eligibility.ageMin", "Minimum age is required")
	}
	switch {
	case e.AgeMax <= 0:
		errs.Add("eligibility.ageMax", "Maximum age is required")
	case e.AgeMax < e.AgeMin:
		errs.Add("eligibility.ageMax", "Maximum age must not be less than the minimum age")
	}
	if e.SkillLevel == "" {
		errs.Add("eligibility.skillLevel", "Skill level is required")
	}
	if blank(d.Theme) {
		errs.Add("theme", "Theme is required")
	}
}

func checkSchedule(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	for i, e := range d.Schedule {
		filled := !blank(e.Date) || !blank(e.Time) || !blank(e.Description)
		if filled && blank(e.Title) {
			errs.Add("schedule-"+strconv.Itoa(i), "Schedule entry needs an event name")
		}
	}
}

func checkResources(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	for i, r := range d.Resources {
		if !blank(r.Link) && !ValidURL(r.Link) {
			errs.Add("resourceLink-"+strconv.Itoa(i), "Resource link must be a valid URL")
		}
	}
}

func checkJudges(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	for i, j := range d.Judges {
		if !blank(j.Email) && !ValidEmail(j.Email) {
			errs.Add("judgeEmail-"+strconv.Itoa(i), "Please enter a valid email address")
		}
	}
}

func checkContact(d *domain.HackathonDraft, errs domain.ValidationErrors) {
	switch {
	case blank(d.Contact.Email):
		errs.Add("contact.email", "Contact email is required")
	case !ValidEmail(d.Contact.Email):
		errs.Add("contact.email", "Please enter a valid email address")
	}
	if !blank(d.Contact.Website) && !ValidURL(d.Contact.Website) {
		errs.Add("contact.website", "Website must be a valid URL")
	}
}
