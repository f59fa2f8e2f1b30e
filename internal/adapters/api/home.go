package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hackverse/internal/domain"
)

// homePayload accepts both the tagged form ({kind, records}) and the older
// payload that carries exactly one role-specific key.
type homePayload struct {
	Kind                  domain.HomeKind `json:"kind"`
	Records               json.RawMessage `json:"records"`
	OrganisedHackathons   json.RawMessage `json:"organisedHackathons"`
	ParticipantHackathons json.RawMessage `json:"participantHackathons"`
	JudgeHackathon        json.RawMessage `json:"judgeHackathon"`
	Hackathons            json.RawMessage `json:"hackathons"`
}

// Home fetches the landing payload for the signed-in user.
func (c *Client) Home(ctx context.Context, s *domain.Session) (domain.Home, error) {
	var p homePayload
	if err := c.do(ctx, s, http.MethodGet, "/home", nil, &p); err != nil {
		return domain.Home{}, err
	}
	return p.toHome()
}

func (p homePayload) toHome() (domain.Home, error) {
	switch p.Kind {
	case domain.HomeOrganizer, domain.HomeParticipant, domain.HomeJudge, domain.HomePublic:
		return domain.Home{Kind: p.Kind, Records: p.Records}, nil
	case "":
	default:
		return domain.Home{}, fmt.Errorf("home kind %q: %w", p.Kind, domain.ErrInvalidInput)
	}

	switch {
	case present(p.OrganisedHackathons):
		return domain.Home{Kind: domain.HomeOrganizer, Records: p.OrganisedHackathons}, nil
	case present(p.ParticipantHackathons):
		return domain.Home{Kind: domain.HomeParticipant, Records: p.ParticipantHackathons}, nil
	case present(p.JudgeHackathon):
		return domain.Home{Kind: domain.HomeJudge, Records: p.JudgeHackathon}, nil
	}
	return domain.Home{Kind: domain.HomePublic, Records: p.Hackathons}, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
