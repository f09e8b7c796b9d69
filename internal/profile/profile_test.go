package profile

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfilesValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range DefaultProfiles() {
		assert.NoError(t, p.Validate(), p.Name)
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		seen[p.Name] = true
		assert.NotEmpty(t, p.Menu)
		assert.NotEmpty(t, p.SideMenu)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, s.Load())
	assert.Equal(t, []string{"default", "compact", "bold"}, s.Names())
	assert.Empty(t, s.Active)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profiles.yaml")
	s := NewStoreAt(path)
	s.Active = "mine"
	s.FrameIntervalMS = 33
	s.Upsert(Profile{
		Name:  "mine",
		Theme: Theme{Panel: "#101010", Width: 20, ContentHeight: 2, BorderWidth: 1},
		Menu:  []Item{{Label: "One"}, {Label: "Two", When: `x > 3`}},
		SideMenu: []Item{
			{Label: "Side"},
		},
		Description: Description{Header: "H", Body: "B"},
	})
	require.NoError(t, s.Save())

	loaded := NewStoreAt(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "mine", loaded.Active)
	assert.Equal(t, 33, loaded.FrameIntervalMS)

	p, ok := loaded.Get("mine")
	require.True(t, ok)
	assert.Equal(t, s.Profiles[0], p)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	s := NewStoreAt(path)
	s.Profiles = DefaultProfiles()
	require.NoError(t, s.Save())

	t.Setenv("OVERLAYKIT_ACTIVE", "bold")
	t.Setenv("OVERLAYKIT_FRAME_INTERVAL_MS", "40")

	loaded := NewStoreAt(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "bold", loaded.Active)
	assert.Equal(t, 40, loaded.FrameIntervalMS)
}

func TestLoadUnknownActive(t *testing.T) {
	t.Setenv("OVERLAYKIT_ACTIVE", "nope")
	s := NewStoreAt(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, s.Load(), `active profile "nope" not found`)
}

func TestLoadInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	data := []byte("profiles:\n  - name: broken\n    theme:\n      width: -4\n    menu:\n      - label: x\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	err := NewStoreAt(path).Load()
	assert.ErrorIs(t, err, overlay.ErrInvalidAppearance)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [\n"), 0o600))
	assert.Error(t, NewStoreAt(path).Load())
}

func TestUpsertRemove(t *testing.T) {
	s := NewStoreAt("unused")
	s.Upsert(Profile{Name: "a"})
	s.Upsert(Profile{Name: "b"})
	s.Upsert(Profile{Name: "a", Menu: []Item{{Label: "x"}}})
	assert.Equal(t, []string{"a", "b"}, s.Names())
	p, _ := s.Get("a")
	assert.Len(t, p.Menu, 1)

	s.Active = "a"
	s.Remove("a")
	assert.Equal(t, []string{"b"}, s.Names())
	assert.Empty(t, s.Active)
	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestAppearance(t *testing.T) {
	a := Profile{Name: "x"}.Appearance()
	def := overlay.DefaultAppearance()
	assert.Equal(t, def.PanelWidth, a.PanelWidth)
	assert.Equal(t, def.ContentHeight, a.ContentHeight)
	assert.Equal(t, def.PanelColor, a.PanelColor)
	assert.Zero(t, a.BorderWidth)

	a = Profile{Theme: Theme{Tint: "#00A4FF", Width: 18, BorderWidth: 2, ArrowWidth: 3}}.Appearance()
	assert.Equal(t, lipgloss.Color("#00A4FF"), a.TintColor)
	assert.Equal(t, 18, a.PanelWidth)
	assert.Equal(t, 2, a.BorderWidth)
	assert.Equal(t, 3, a.ArrowWidth)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Profile{}.Validate())
	assert.Error(t, Profile{Name: "p", Menu: []Item{{When: "true"}}}.Validate())
	assert.Error(t, Profile{Name: "p", SideMenu: []Item{{}}}.Validate())
	assert.NoError(t, Profile{Name: "p"}.Validate())
}
