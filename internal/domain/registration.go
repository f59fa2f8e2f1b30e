package domain

import (
	"fmt"
	"strings"
)

// MemberRole is the role a team member plays.
type MemberRole string

const (
	RoleFrontend  MemberRole = "frontend"
	RoleBackend   MemberRole = "backend"
	RoleFullstack MemberRole = "fullstack"
	RoleDesigner  MemberRole = "designer"
	RoleML        MemberRole = "ml"
)

// ParseMemberRole validates s as a MemberRole. The empty string means "not chosen".
func ParseMemberRole(s string) (MemberRole, error) {
	switch r := MemberRole(strings.ToLower(strings.TrimSpace(s))); r {
	case "", RoleFrontend, RoleBackend, RoleFullstack, RoleDesigner, RoleML:
		return r, nil
	}
	return "", fmt.Errorf("role %q is not one of frontend, backend, fullstack, designer, ml: %w", s, ErrInvalidInput)
}

// DiscoveryChannel is how a participant heard about the hackathon.
type DiscoveryChannel string

const (
	HeardFromSocial DiscoveryChannel = "social"
	HeardFromFriend DiscoveryChannel = "friend"
	HeardFromSearch DiscoveryChannel = "search"
	HeardFromOther  DiscoveryChannel = "other"
)

// Valid reports whether c is one of the known channels.
func (c DiscoveryChannel) Valid() bool {
	switch c {
	case HeardFromSocial, HeardFromFriend, HeardFromSearch, HeardFromOther:
		return true
	}
	return false
}

// TeamMember is a registered teammate of the applicant.
type TeamMember struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  MemberRole `json:"role"`
}

// Blank reports whether no field of the member is filled in.
func (m TeamMember) Blank() bool {
	return strings.TrimSpace(m.Name) == "" && strings.TrimSpace(m.Email) == "" && m.Role == ""
}

// RegistrationDraft is the participant registration form. TeamMembers is never nil.
type RegistrationDraft struct {
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Education      string           `json:"education"`
	HeardFrom      DiscoveryChannel `json:"heardFrom"`
	Skills         string           `json:"skills"`
	HasTeam        bool             `json:"hasTeam"`
	TeamName       string           `json:"teamName"`
	TeamMembers    []TeamMember     `json:"teamMembers"`
	LookingForTeam bool             `json:"lookingForTeam"`
	TeamPreference MemberRole       `json:"teamPreference"`
}

// NewRegistrationDraft returns an empty registration with no team members.
func NewRegistrationDraft() *RegistrationDraft {
	return &RegistrationDraft{TeamMembers: []TeamMember{}}
}

// Normalize replaces a nil member list with an empty one.
func (d *RegistrationDraft) Normalize() {
	if d.TeamMembers == nil {
		d.TeamMembers = []TeamMember{}
	}
}

// SkillList splits the comma separated skills into trimmed, non-empty entries.
func (d *RegistrationDraft) SkillList() []string {
	parts := strings.Split(d.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// RegistrationRequest is the body of POST /register/:id.
type RegistrationRequest struct {
	HackathonID    EntityID         `json:"hackathonId"`
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Education      string           `json:"education"`
	HeardFrom      DiscoveryChannel `json:"heardFrom"`
	Skills         []string         `json:"skills"`
	HasTeam        bool             `json:"hasTeam"`
	TeamName       string           `json:"teamName"`
	TeamMembers    []TeamMember     `json:"teamMembers,omitempty"`
	LookingForTeam bool             `json:"lookingForTeam"`
	TeamPreference MemberRole       `json:"teamPreference"`
}
