package domain

import (
	"bytes"
	"encoding/json"
)

// HomeKind tells which landing view the server prepared for the current user.
type HomeKind string

const (
	HomeOrganizer   HomeKind = "organizer"
	HomeParticipant HomeKind = "participant"
	HomeJudge       HomeKind = "judge"
	HomePublic      HomeKind = "public"
)

// Home is the role-specific landing payload. Records is left raw because its
// shape depends on Kind.
type Home struct {
	Kind    HomeKind
	Records json.RawMessage
}

// Hackathons decodes the records as hackathon summaries. The judge view may
// carry a single record instead of a list.
func (h Home) Hackathons() ([]HackathonSummary, error) {
	raw := bytes.TrimSpace(h.Records)
	if len(raw) == 0 || string(raw) == "null" {
		return []HackathonSummary{}, nil
	}
	if raw[0] == '{' {
		var one HackathonSummary
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, err
		}
		return []HackathonSummary{one}, nil
	}
	var out []HackathonSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
