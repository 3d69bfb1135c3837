package loader_test

import (
	"errors"
	"testing"

	"scene-inspector/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// stubFeature records whether Load ran.
type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }

func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

// TestManager_LoadAll tests that enabled features load in registration
// order and disabled ones are skipped.
func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	enabled := &stubFeature{name: "inspect", enabled: true}
	disabled := &stubFeature{name: "archive", enabled: false}

	mgr := loader.NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(app)
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

// TestManager_LoadAll_Error tests that a failing feature stops loading
// and surfaces its name.
func TestManager_LoadAll_Error(t *testing.T) {
	app := fiber.New()
	broken := &stubFeature{name: "inspect", enabled: true, loadErr: errors.New("migration failed")}
	after := &stubFeature{name: "later", enabled: true}

	mgr := loader.NewManager()
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load feature inspect")
	assert.False(t, after.loaded)
}
