package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilEnvironment(t *testing.T) {
	var e *Environment
	assert.False(t, e.ServerRuntime())
	assert.False(t, e.BundlerRuntime())
	assert.False(t, e.Development())
	assert.False(t, e.LoggingEnabled())
	assert.Equal(t, RuntimeNone, e.Runtime())
	assert.Equal(t, "", e.ServerValue(KeyNodeEnv))
	assert.Equal(t, "", e.BundlerValue(KeyMode))
}

func TestRuntime(t *testing.T) {
	tests := []struct {
		name string
		env  *Environment
		want Runtime
	}{
		{"none", New(nil, nil), RuntimeNone},
		{"server", New(Map{}, nil), RuntimeServer},
		{"bundler", New(nil, Map{}), RuntimeBundler},
		{"both", New(Map{}, Map{}), RuntimeBoth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.Runtime())
		})
	}
}

func TestDevelopment(t *testing.T) {
	tests := []struct {
		name    string
		server  Lookup
		bundler Lookup
		want    bool
	}{
		{"node env development", Map{KeyNodeEnv: "development"}, nil, true},
		{"node env production", Map{KeyNodeEnv: "production"}, nil, false},
		{"bundler mode development", nil, Map{KeyMode: "development"}, true},
		{"bundler logging flag", nil, Map{KeyBundlerEnableLogging: "true"}, true},
		{"bundler logging flag not true", nil, Map{KeyBundlerEnableLogging: "1"}, false},
		{"server prod bundler dev", Map{KeyNodeEnv: "production"}, Map{KeyMode: "development"}, true},
		{"server public logging flag is not dev", Map{KeyPublicEnableLogging: "true"}, nil, false},
		{"empty stores", Map{}, Map{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.server, tt.bundler).Development())
		})
	}
}

func TestLoggingEnabled(t *testing.T) {
	assert.True(t, New(Map{KeyPublicEnableLogging: "true"}, nil).LoggingEnabled())
	assert.True(t, New(Map{KeyNodeEnv: "development"}, nil).LoggingEnabled())
	assert.True(t, New(nil, Map{KeyMode: "development"}).LoggingEnabled())
	assert.True(t, New(nil, Map{KeyBundlerEnableLogging: "true"}).LoggingEnabled())
	assert.False(t, New(Map{KeyNodeEnv: "production"}, Map{KeyMode: "production"}).LoggingEnabled())
}

func TestHasAPIURL(t *testing.T) {
	e := New(Map{KeyPublicAPIURL: "https://api.example.com"}, Map{KeyBundlerAPIURL: ""})
	assert.True(t, e.HasServerAPIURL())
	assert.False(t, e.HasBundlerAPIURL())
	assert.False(t, New(Map{}, nil).HasServerAPIURL())
}

func TestOSReadsLiveEnvironment(t *testing.T) {
	t.Setenv(KeyNodeEnv, "production")
	e := FromOS()
	assert.False(t, e.Development())

	t.Setenv(KeyNodeEnv, "development")
	assert.True(t, e.Development())
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Setenv(KeyNodeEnv, "development")
	t.Setenv(KeyPublicAPIURL, "https://api.example.com")
	snap := FromOS().Snapshot()

	t.Setenv(KeyNodeEnv, "production")
	os.Unsetenv(KeyPublicAPIURL)

	assert.True(t, snap.Development())
	assert.Equal(t, "https://api.example.com", snap.ServerValue(KeyPublicAPIURL))
	assert.False(t, snap.BundlerRuntime())
}

func TestSnapshotKeepsOnlyKnownKeys(t *testing.T) {
	snap := New(nil, Map{KeyMode: "development", "OTHER": "x"}).Snapshot()
	m, ok := snap.Bundler.(Map)
	require.True(t, ok)
	assert.Equal(t, Map{KeyMode: "development"}, m)
	assert.Nil(t, snap.Server)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, ".env")
	local := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(base, []byte("VITE_API_BASE_URL=https://a.example.com\nMODE=production\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("MODE=development\n"), 0o600))

	m, err := LoadDotenv(base, local)
	require.NoError(t, err)
	assert.Equal(t, "https://a.example.com", m[KeyBundlerAPIURL])
	assert.Equal(t, "development", m[KeyMode])

	_, err = LoadDotenv(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	e, err := ParseYAML([]byte("server:\n  NODE_ENV: production\nbundler:\n  MODE: development\n"))
	require.NoError(t, err)
	assert.Equal(t, RuntimeBoth, e.Runtime())
	assert.True(t, e.Development())

	e, err = ParseYAML([]byte("bundler:\n  VITE_API_BASE_URL: https://v.example.com\n"))
	require.NoError(t, err)
	assert.Equal(t, RuntimeBundler, e.Runtime())
	assert.Nil(t, e.Server)

	_, err = ParseYAML([]byte("server: [unclosed"))
	assert.Error(t, err)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
