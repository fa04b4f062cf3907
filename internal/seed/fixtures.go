// Package seed loads studio fixtures from yaml files and records them through
// the services, so seeded data passes the same validation as API traffic.
package seed

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"photostudio-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// StudioFixture describes one studio and everything it owns
type StudioFixture struct {
	Studio      service.CreateStudioRequest       `yaml:"studio"`
	TeamMembers []service.CreateTeamMemberRequest `yaml:"team_members"`
	Events      []EventFixture                    `yaml:"events"`

	// Source is the file the fixture was read from
	Source string `yaml:"-"`
}

// EventFixture is an event with its schedule, crew, photos and galleries.
// Status, when set, is reached through the legal transitions after the rest is recorded.
type EventFixture struct {
	service.CreateEventRequest `yaml:",inline"`

	Status      string                          `yaml:"status,omitempty"`
	Ceremonies  []service.CreateCeremonyRequest `yaml:"ceremonies"`
	Assignments []AssignmentFixture             `yaml:"assignments"`
	Photos      []PhotoFixture                  `yaml:"photos"`
	Galleries   []GalleryFixture                `yaml:"galleries"`
}

// AssignmentFixture refers to its member by email and its ceremony by name.
// No ceremony means the whole event.
type AssignmentFixture struct {
	MemberEmail string  `yaml:"member_email"`
	Ceremony    string  `yaml:"ceremony,omitempty"`
	Role        *string `yaml:"role,omitempty"`
}

// PhotoFixture is a photo already stored at FileURL
type PhotoFixture struct {
	FileURL    string `yaml:"file_url"`
	FileName   string `yaml:"file_name"`
	FileSize   int64  `yaml:"file_size,omitempty"`
	MimeType   string `yaml:"mime_type,omitempty"`
	Tags       string `yaml:"tags,omitempty"`
	Ceremony   string `yaml:"ceremony,omitempty"`
	UploadedBy string `yaml:"uploaded_by,omitempty"`
	Rating     int    `yaml:"rating,omitempty"`
	Selected   bool   `yaml:"selected,omitempty"`
}

// GalleryFixture lists its photos by file name, in display order
type GalleryFixture struct {
	service.CreateGalleryRequest `yaml:",inline"`

	Photos []string `yaml:"photos"`
}

// Load reads every .yaml/.yml file under path, or path itself when it is a
// file. Fixtures are returned in file name order.
func Load(path string) ([]*StudioFixture, error) {
	var files []string
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(p)); ext == ".yaml" || ext == ".yml" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	sort.Strings(files)

	fixtures := make([]*StudioFixture, 0, len(files))
	for _, file := range files {
		fixture, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

// LoadFile parses a single fixture file
func LoadFile(path string) (*StudioFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var fixture StudioFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	fixture.Source = path
	return &fixture, nil
}
