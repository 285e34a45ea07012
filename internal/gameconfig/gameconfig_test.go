package gameconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		missing  bool
		wantErr  bool
		validate func(t *testing.T, cfg Config)
	}{
		{
			name:    "missing file uses defaults",
			missing: true,
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial file overrides per field",
			content: `backend:
  base_url: "http://game.local/api"
  timeout: 750ms
wolf:
  follow_trigger_radius: 20
  spawn: [1, 0, -4]
`,
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, "http://game.local/api", cfg.Backend.BaseURL)
				assert.Equal(t, 750*time.Millisecond, cfg.Backend.Timeout)
				assert.Equal(t, Default().Backend.MoveSyncInterval, cfg.Backend.MoveSyncInterval)
				assert.Equal(t, float32(20), cfg.Wolf.FollowTriggerRadius)
				assert.Equal(t, Default().Wolf.FollowStopRadius, cfg.Wolf.FollowStopRadius)
				assert.Equal(t, mgl32.Vec3{1, 0, -4}, cfg.Wolf.Spawn)
				assert.Equal(t, Default().Camera, cfg.Camera)
			},
		},
		{
			name:    "malformed yaml",
			content: "wolf: [unterminated",
			wantErr: true,
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "invalid geometry",
			content: `wolf:
  follow_stop_radius: 30
`,
			wantErr: true,
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeFile(t, tt.content)
			}
			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.yaml")
	cfg := Default()
	cfg.Window.Title = "Ruins (test)"
	cfg.Camera.Offset = mgl32.Vec3{0, 8, 12}
	cfg.Backend.BaseURL = ""

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Camera.MinPolarAngle = 2
	cfg.Camera.MaxPolarAngle = 1
	cfg.Wolf.ArenaHalfExtent = 0
	cfg.Wolf.WanderMaxMs = 10

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera")
	assert.Contains(t, err.Error(), "arena_half_extent")
	assert.Contains(t, err.Error(), "wander delay")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBackendURL: "",
		EnvLogLevel:   "debug",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	assert.Empty(t, cfg.Backend.BaseURL, "empty URL selects offline mode")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, Default().Storage.Dir, cfg.Storage.Dir)
}
