package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/kwonoj/tauri-specta/event"
)

// Manifest validation errors.
var (
	// ErrMissingVersion is returned when a manifest has no version.
	ErrMissingVersion = errors.New("manifest: version is required")

	// ErrInvalidVersion is returned when a version is not valid semver.
	ErrInvalidVersion = errors.New("manifest: version must be valid semver")

	// ErrInvalidEventName is returned when a declared event name is
	// empty or contains the reserved separator.
	ErrInvalidEventName = errors.New("manifest: invalid event name")

	// ErrDuplicateEvent is returned when a manifest declares the same
	// event name twice.
	ErrDuplicateEvent = errors.New("manifest: duplicate event declaration")
)

// semverPattern validates version strings (simplified semver).
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)

// Manifest describes a plugin's identity and the events it declares,
// loaded from a plugin.toml file.
type Manifest struct {
	// Identity
	Name        string `toml:"name"`         // Unique identifier (e.g., "demo-tools")
	Version     string `toml:"version"`      // Semver (e.g., "1.2.0")
	DisplayName string `toml:"display_name"` // Human-readable name
	Description string `toml:"description"`  // Short description
	Author      string `toml:"author"`       // Author name or org

	// Events the plugin intends to register. Informational: the
	// authoritative registrations come from Plugin.Attach, but a
	// manifest lets tooling see the surface without loading code.
	Events []EventDeclaration `toml:"events"`

	// Internal: directory the manifest was loaded from.
	path string
}

// EventDeclaration names one event a plugin provides.
type EventDeclaration struct {
	Name        string `toml:"name"`        // Logical event name
	Description string `toml:"description"` // Short description
}

// LoadManifest loads and validates a plugin manifest from a TOML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	m.path = filepath.Dir(path)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Path returns the directory the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Validate checks that the manifest is internally consistent.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, m.Name)
	}
	if m.Version == "" {
		return ErrMissingVersion
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, m.Version)
	}

	seen := make(map[string]bool, len(m.Events))
	for _, decl := range m.Events {
		if decl.Name == "" || strings.Contains(decl.Name, event.Separator) {
			return fmt.Errorf("%w: %q", ErrInvalidEventName, decl.Name)
		}
		if seen[decl.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateEvent, decl.Name)
		}
		seen[decl.Name] = true
	}

	return nil
}

// Plugin constructs the plugin named by the manifest.
func (m *Manifest) Plugin() (*Plugin, error) {
	return New(m.Name)
}
