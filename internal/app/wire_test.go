package app_test

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"x3dhkit/internal/app"
	"x3dhkit/internal/util/logging"
)

func TestNewWire_BuildsGraph(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	logger := logrus.New()

	w, err := app.NewWire(app.Config{Home: home, Logger: logger})
	require.NoError(t, err)
	assert.NotNil(t, w.IdentityStore)
	assert.NotNil(t, w.Contacts)
	assert.NotNil(t, w.Identity)
	assert.NotNil(t, w.Messages)
	assert.DirExists(t, home)
	assert.Same(t, logger, logging.Logger())
}

func TestNewWire_RequiresHome(t *testing.T) {
	_, err := app.NewWire(app.Config{})
	require.Error(t, err)
}
