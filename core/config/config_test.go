package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/core/config"
)

type defaultsConfig struct {
	Name    string        `env:"WAYPOINT_TEST_DEFAULTS_NAME" envDefault:"todo"`
	Timeout time.Duration `env:"WAYPOINT_TEST_DEFAULTS_TIMEOUT" envDefault:"5s"`
	Origins []string      `env:"WAYPOINT_TEST_DEFAULTS_ORIGINS" envDefault:"a,b"`
}

type envConfig struct {
	Port int `env:"WAYPOINT_TEST_ENV_PORT" envDefault:"8080"`
}

type cachedConfig struct {
	Value string `env:"WAYPOINT_TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Secret string `env:"WAYPOINT_TEST_REQUIRED_SECRET,required"`
}

type invalidConfig struct {
	Count int `env:"WAYPOINT_TEST_INVALID_COUNT"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "todo", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b"}, cfg.Origins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_ENV_PORT", "9090")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadIsCachedPerType(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("WAYPOINT_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", first.Value)
	assert.Equal(t, first, second)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("WAYPOINT_TEST_INVALID_COUNT", "many")

	var cfg invalidConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParse)
}
