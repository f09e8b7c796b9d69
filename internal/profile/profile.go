package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings, e.g.
// OVERLAYKIT_ACTIVE=compact.
const EnvPrefix = "OVERLAYKIT_"

// Item is one menu row. When holds an optional CEL expression; the row is
// only shown when it evaluates to true.
type Item struct {
	Label string `yaml:"label" koanf:"label"`
	When  string `yaml:"when,omitempty" koanf:"when"`
}

// Description is the callout shown by the description overlay.
type Description struct {
	Header string `yaml:"header" koanf:"header"`
	Body   string `yaml:"body" koanf:"body"`
}

// Theme holds the appearance of a profile. Colours are hex strings. Empty
// colours and a zero width or content height fall back to the overlay
// defaults; the remaining sizes are used as written.
type Theme struct {
	Panel              string `yaml:"panel,omitempty" koanf:"panel"`
	Text               string `yaml:"text,omitempty" koanf:"text"`
	Tint               string `yaml:"tint,omitempty" koanf:"tint"`
	Width              int    `yaml:"width,omitempty" koanf:"width"`
	ContentHeight      int    `yaml:"content_height,omitempty" koanf:"content_height"`
	CornerRadius       int    `yaml:"corner_radius" koanf:"corner_radius"`
	BorderWidth        int    `yaml:"border_width" koanf:"border_width"`
	PartitionThickness int    `yaml:"partition_thickness" koanf:"partition_thickness"`
	ArrowWidth         int    `yaml:"arrow_width" koanf:"arrow_width"`
}

// Profile is a named presentation setup: how overlays look and what they
// contain.
type Profile struct {
	Name        string      `yaml:"name" koanf:"name"`
	Theme       Theme       `yaml:"theme" koanf:"theme"`
	Menu        []Item      `yaml:"menu" koanf:"menu"`
	SideMenu    []Item      `yaml:"side_menu" koanf:"side_menu"`
	Description Description `yaml:"description" koanf:"description"`
}

func (p Profile) Summary() string {
	return fmt.Sprintf("%s, %d menu, %d side", p.Name, len(p.Menu), len(p.SideMenu))
}

// Appearance converts the theme into overlay parameters.
func (p Profile) Appearance() overlay.Appearance {
	a := overlay.DefaultAppearance()
	t := p.Theme
	if t.Panel != "" {
		a.PanelColor = lipgloss.Color(t.Panel)
	}
	if t.Text != "" {
		a.TextColor = lipgloss.Color(t.Text)
	}
	if t.Tint != "" {
		a.TintColor = lipgloss.Color(t.Tint)
	}
	if t.Width != 0 {
		a.PanelWidth = t.Width
	}
	if t.ContentHeight != 0 {
		a.ContentHeight = t.ContentHeight
	}
	a.CornerRadius = t.CornerRadius
	a.BorderWidth = t.BorderWidth
	a.PartitionLineThickness = t.PartitionThickness
	a.ArrowWidth = t.ArrowWidth
	return a
}

// Validate checks that the profile can be presented.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("profile name is required")
	}
	for i, it := range p.Menu {
		if it.Label == "" {
			return fmt.Errorf("profile %s: menu item %d has no label", p.Name, i)
		}
	}
	for i, it := range p.SideMenu {
		if it.Label == "" {
			return fmt.Errorf("profile %s: side menu item %d has no label", p.Name, i)
		}
	}
	if err := p.Appearance().Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return nil
}

// File is the on-disk layout of the profiles file.
type File struct {
	Active          string    `yaml:"active,omitempty" koanf:"active"`
	FrameIntervalMS int       `yaml:"frame_interval_ms,omitempty" koanf:"frame_interval_ms"`
	Profiles        []Profile `yaml:"profiles" koanf:"profiles"`
}

// Store manages loading and saving presentation profiles.
type Store struct {
	path string
	File
}

// NewStore returns a store backed by profiles.yaml in the user config
// directory.
func NewStore() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return NewStoreAt(filepath.Join(dir, "overlaykit", "profiles.yaml"))
}

// NewStoreAt returns a store backed by path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the profiles file and applies OVERLAYKIT_* overrides. A missing
// file, or one without profiles, yields the built-in profiles.
func (s *Store) Load() error {
	k := koanf.New(".")

	if _, err := os.Stat(s.path); err == nil {
		if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
			return fmt.Errorf("reading profiles %s: %w", s.path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("accessing profiles %s: %w", s.path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	}), nil); err != nil {
		return fmt.Errorf("loading env overrides: %w", err)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return fmt.Errorf("parsing profiles %s: %w", s.path, err)
	}
	if len(f.Profiles) == 0 {
		f.Profiles = DefaultProfiles()
	}
	for _, p := range f.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.path, err)
		}
	}
	if f.Active != "" {
		if _, ok := f.get(f.Active); !ok {
			return fmt.Errorf("%s: active profile %q not found", s.path, f.Active)
		}
	}
	s.File = f
	return nil
}

// Save writes the profiles file, creating its directory.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := yamlv3.Marshal(s.File)
	if err != nil {
		return fmt.Errorf("marshalling profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing profiles to %s: %w", s.path, err)
	}
	return nil
}

func (f File) get(name string) (Profile, bool) {
	i := slices.IndexFunc(f.Profiles, func(p Profile) bool { return p.Name == name })
	if i < 0 {
		return Profile{}, false
	}
	return f.Profiles[i], true
}

// Get returns the profile called name.
func (s *Store) Get(name string) (Profile, bool) {
	return s.get(name)
}

// Names lists the profile names in file order.
func (s *Store) Names() []string {
	names := make([]string, len(s.Profiles))
	for i, p := range s.Profiles {
		names[i] = p.Name
	}
	return names
}

// Upsert adds or updates a profile by name.
func (s *Store) Upsert(p Profile) {
	if i := slices.IndexFunc(s.Profiles, func(e Profile) bool {
		return e.Name == p.Name
	}); i >= 0 {
		s.Profiles[i] = p
		return
	}
	s.Profiles = append(s.Profiles, p)
}

func (s *Store) Remove(name string) {
	s.Profiles = slices.DeleteFunc(s.Profiles, func(p Profile) bool {
		return p.Name == name
	})
	if s.Active == name {
		s.Active = ""
	}
}
