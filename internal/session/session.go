// Package session keeps the operator's selected identity between CLI runs.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"photostudio-backend/internal/auth"
	apperrors "photostudio-backend/internal/errors"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Preference is the persisted identity selection
type Preference struct {
	Role     auth.CallerKind `yaml:"role"`
	StudioID string          `yaml:"studio_id"`
	MemberID string          `yaml:"member_id,omitempty"`
	Token    string          `yaml:"token,omitempty"`
	SavedAt  time.Time       `yaml:"saved_at"`
}

// Session is process-wide preference state backed by a yaml file.
// Init loads it, Login replaces it and Teardown clears it.
type Session struct {
	path string

	mu   sync.RWMutex
	pref *Preference
}

// New creates a session persisted at path
func New(path string) *Session {
	return &Session{path: path}
}

// Path returns the backing file
func (s *Session) Path() string {
	return s.path
}

// Init loads the persisted preference. A missing file leaves the session empty.
func (s *Session) Init() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.set(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var pref Preference
	if err := yaml.Unmarshal(data, &pref); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}
	if _, err := toCaller(&pref); err != nil {
		return fmt.Errorf("session file %s: %w", s.path, err)
	}
	s.set(&pref)
	return nil
}

// Login persists caller (and the token issued for it) as the active preference
func (s *Session) Login(caller auth.Caller, token string) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	pref := &Preference{
		Role:     caller.Kind,
		StudioID: caller.StudioID.String(),
		Token:    token,
		SavedAt:  time.Now().UTC(),
	}
	if caller.IsTeamMember() {
		pref.MemberID = caller.MemberID.String()
	}

	data, err := yaml.Marshal(pref)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	s.set(pref)
	return nil
}

// Active reports whether a preference is loaded
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref != nil
}

// Caller returns the caller of the active preference
func (s *Session) Caller() (auth.Caller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pref == nil {
		return auth.Caller{}, apperrors.ErrSessionNotStarted
	}
	return toCaller(s.pref)
}

// Token returns the token saved with the active preference
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pref == nil {
		return ""
	}
	return s.pref.Token
}

// Teardown clears the preference and removes the backing file
func (s *Session) Teardown() error {
	s.set(nil)
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *Session) set(pref *Preference) {
	s.mu.Lock()
	s.pref = pref
	s.mu.Unlock()
}

func toCaller(pref *Preference) (auth.Caller, error) {
	studioID, err := uuid.Parse(pref.StudioID)
	if err != nil {
		return auth.Caller{}, fmt.Errorf("invalid studio_id: %w", err)
	}

	var caller auth.Caller
	switch pref.Role {
	case auth.KindStudio:
		caller = auth.StudioCaller(studioID)
	case auth.KindTeamMember:
		memberID, err := uuid.Parse(pref.MemberID)
		if err != nil {
			return auth.Caller{}, fmt.Errorf("invalid member_id: %w", err)
		}
		caller = auth.TeamMemberCaller(studioID, memberID)
	default:
		return auth.Caller{}, fmt.Errorf("unknown role %q", pref.Role)
	}
	return caller, caller.Validate()
}
