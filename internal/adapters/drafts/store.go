package drafts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"hackverse/internal/domain"
)

const untitled = "untitled"

// FileStore keeps work-in-progress drafts as JSON files named after their title.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// PathFor returns the file a draft titled title is saved to.
func (s *FileStore) PathFor(title string) string {
	name := slug.Make(strings.TrimSpace(title))
	if name == "" {
		name = untitled
	}
	return filepath.Join(s.dir, name+".json")
}

// SaveHackathon writes d next to the other drafts and returns its path.
func (s *FileStore) SaveHackathon(d *domain.HackathonDraft) (string, error) {
	path := s.PathFor(d.Title)
	return path, write(path, d)
}

// SaveRegistration writes d under a name derived from the hackathon and the applicant.
func (s *FileStore) SaveRegistration(hackathonID domain.EntityID, d *domain.RegistrationDraft) (string, error) {
	path := s.PathFor("registration " + hackathonID.String() + " " + d.FullName)
	return path, write(path, d)
}

// LoadHackathon reads a hackathon draft. List fields of the result are never nil.
func LoadHackathon(path string) (*domain.HackathonDraft, error) {
	d := domain.NewHackathonDraft()
	if err := read(path, d); err != nil {
		return nil, err
	}
	d.Normalize()
	return d, nil
}

// LoadRegistration reads a registration draft.
func LoadRegistration(path string) (*domain.RegistrationDraft, error) {
	d := domain.NewRegistrationDraft()
	if err := read(path, d); err != nil {
		return nil, err
	}
	d.Normalize()
	return d, nil
}

func read(path string, v any) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("draft %s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode draft %s: %w: %w", path, domain.ErrInvalidInput, err)
	}
	return nil
}

func write(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create draft directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".draft-*")
	if err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}
