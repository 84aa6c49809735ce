package ruddertyper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
client:
  sdk: analytics-go
  language: go
trackingPlans:
  - id: tp_2kKI0i514th5OEuYi5AdsRwNlXC
    version: "3"
    workspaceSlug: acme
    path: ./analytics
`

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, ClientConfig{SDK: "analytics-go", Language: "go"}, config.Client)
	require.Len(t, config.TrackingPlans, 1)
	assert.Equal(t, "./analytics", config.TrackingPlans[0].Path)
	assert.Equal(t, testGeneratorContext, config.GeneratorContext("1.2.0"))
}

func TestParseConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"malformed":        "client: [",
		"missing sdk":      "client:\n  language: go\ntrackingPlans:\n  - id: tp_1\n",
		"unknown language": "client:\n  sdk: analytics-go\n  language: cobol\ntrackingPlans:\n  - id: tp_1\n",
		"no plans":         "client:\n  sdk: analytics-go\n  language: go\n",
		"plan without id":  "client:\n  sdk: analytics-go\n  language: go\ntrackingPlans:\n  - path: ./a\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	config, err := ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tp_2kKI0i514th5OEuYi5AdsRwNlXC", config.TrackingPlans[0].ID)

	_, err = ReadConfigFile(filepath.Join(dir, "missing.yml"))
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Path, "missing.yml")

	require.NoError(t, os.WriteFile(path, []byte("client: ["), 0o600))
	_, err = ReadConfigFile(path)
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, path, configErr.Path)
}

func TestEmptyConfigGeneratorContext(t *testing.T) {
	g := Config{Client: ClientConfig{SDK: "analytics-go", Language: "go"}}.GeneratorContext("1.0.0")
	assert.Equal(t, "", g.TrackingPlanID)
	assert.Equal(t, "1.0.0", g.RudderTyperVersion)
}
