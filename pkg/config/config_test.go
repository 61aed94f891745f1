package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"go.minekube.com/chatmsg/pkg/configs"
)

func TestDefaultConfig_Valid(t *testing.T) {
	warns, errs := DefaultConfig.Validate()
	require.Empty(t, warns)
	require.Empty(t, errs)
	require.Equal(t, []string{"rules", "welcome"}, DefaultConfig.Names())
}

func TestEmbeddedDefaultConfig(t *testing.T) {
	// yaml.v3 decoding
	var cfg Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigBytes, &cfg))
	require.Equal(t, DefaultConfig, cfg)

	// viper decoding
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(configs.DefaultConfigBytes)))
	decoded, err := Decode(v)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig, *decoded)
}

func TestEmbeddedMinimalConfig(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(configs.MinimalConfigBytes)))
	cfg, err := Decode(v)
	require.NoError(t, err)
	_, err = Valid(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"hello"}, cfg.Names())
}

// TestLoadConfig_MapSharing tests that LoadConfig creates fresh maps
// for each load so removed messages don't persist between reloads.
func TestLoadConfig_MapSharing(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	withBye := `
messages:
  hello:
    - text: Hello
  bye:
    - text: Bye
`
	withoutBye := `
messages:
  hello:
    - text: Hello
  # bye:
  #   - text: Bye
`
	require.NoError(t, os.WriteFile(configPath, []byte(withBye), 0644))
	v1 := viper.New()
	v1.SetConfigFile(configPath)
	cfg1, err := LoadConfig(v1)
	require.NoError(t, err)
	require.Len(t, cfg1.Messages, 2)

	require.NoError(t, os.WriteFile(configPath, []byte(withoutBye), 0644))
	v2 := viper.New()
	v2.SetConfigFile(configPath)
	cfg2, err := LoadConfig(v2)
	require.NoError(t, err)
	require.Len(t, cfg2.Messages, 1)
	require.NotContains(t, cfg2.Messages, "bye")
	require.Len(t, cfg1.Messages, 2, "first load must be unchanged")
}

func TestLoadConfig_CaseInsensitiveNames(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
messages:
  Welcome:
    - text: Hi
      hoverSegments:
        - text: tip
          color: gold
`), 0644))
	v := viper.New()
	v.SetConfigFile(configPath)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	require.Contains(t, cfg.Messages, "welcome")
	require.Len(t, cfg.Messages["welcome"][0].HoverSegments, 1)
	require.Equal(t, "gold", cfg.Messages["welcome"][0].HoverSegments[0].Color)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	_, err := LoadConfig(v)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Prefix: `{"text":`,
		Messages: map[string][]Segment{
			"-bad-": {{Text: "x"}},
			"empty": {},
			"broken": {
				{Text: "a", Color: "pink"},
				{Text: "b", Click: &Click{Action: "open_door", Value: "now"}},
				{Text: "c", Hover: "tip", HoverSegments: []Segment{{Text: "tip"}}},
				{Text: "d", Click: &Click{Action: "open_url", Value: "not a url"}},
				{Text: "e", Extra: []string{`{"text":`}},
			},
			"warned": {
				{},
				{Text: "f", Click: &Click{Action: "run_command"}},
				{Text: "g", HoverSegments: []Segment{{Text: "h", Hover: "nested"}}},
			},
		},
	}
	warns, errs := cfg.Validate()
	assert.Len(t, warns, 3)
	assert.Len(t, errs, 8)

	_, err := Valid(cfg)
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), `unknown color "pink"`)

	var nilCfg *Config
	_, errs = nilCfg.Validate()
	require.Len(t, errs, 1)

	warns, errs = (&Config{}).Validate()
	require.Len(t, warns, 1)
	require.Empty(t, errs)
}
