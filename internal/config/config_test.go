package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	yamlContent := `base_path: /work/slides
extension: .jsx
slides:
  - slide-cover
  - slide-next-steps
logging:
  level: debug
`
	require.NoError(t, afero.WriteFile(fs, "/slideprops.yml", []byte(yamlContent), 0o600))

	config, err := Load(fs, "/slideprops.yml")
	require.NoError(t, err)

	assert.Equal(t, "/work/slides", config.BasePath)
	assert.Equal(t, ".jsx", config.Extension)
	assert.Equal(t, []string{"slide-cover", "slide-next-steps"}, config.Slides)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadFromYAML([]byte("base_path: /tmp/slides\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/slides", config.BasePath)
	assert.Equal(t, ".tsx", config.Extension)
	assert.Equal(t, DefaultSlides(), config.Slides)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(afero.NewMemMapFs(), "/nope.yml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Parallel()

	config, err := LoadOrDefault(afero.NewMemMapFs(), "/nope.yml")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yml", []byte("slides: [Slide_Bad]\n"), 0o600))

	_, err := LoadOrDefault(fs, "/bad.yml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name 'Slide_Bad'")
}

func TestLoadFromYAML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := LoadFromYAML([]byte("slides: [unterminated\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		errText string
		wantErr bool
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{
			name:   "duplicate slides are allowed",
			modify: func(c *Config) { c.Slides = []string{"slide-ngfw", "slide-ngfw"} },
		},
		{
			name:    "empty base path",
			modify:  func(c *Config) { c.BasePath = "  " },
			wantErr: true,
			errText: "base_path is required",
		},
		{
			name:    "extension without dot",
			modify:  func(c *Config) { c.Extension = "tsx" },
			wantErr: true,
			errText: "must start with a dot",
		},
		{
			name:    "bare dot extension",
			modify:  func(c *Config) { c.Extension = "." },
			wantErr: true,
			errText: "must start with a dot",
		},
		{
			name:    "no slides",
			modify:  func(c *Config) { c.Slides = nil },
			wantErr: true,
			errText: "at least one slide",
		},
		{
			name:    "uppercase slide",
			modify:  func(c *Config) { c.Slides = []string{"slide-NGFW"} },
			wantErr: true,
			errText: "slide 1: invalid name",
		},
		{
			name:    "trailing hyphen",
			modify:  func(c *Config) { c.Slides = []string{"slide-ngfw", "slide-"} },
			wantErr: true,
			errText: "slide 2: invalid name",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: true,
			errText: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	config := DefaultConfig()
	config.BasePath = "/srv/deck"

	require.NoError(t, config.Save(fs, "/slideprops.yml"))

	loaded, err := Load(fs, "/slideprops.yml")
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	config := DefaultConfig()
	config.Slides = nil

	err := config.Save(fs, "/slideprops.yml")

	require.Error(t, err)
	exists, _ := afero.Exists(fs, "/slideprops.yml")
	assert.False(t, exists)
}
