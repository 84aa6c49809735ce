package ruddertyper

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const ConfigName = "ruddertyper.yml"

var supportedLanguages = map[string]bool{
	"go":         true,
	"typescript": true,
	"javascript": true,
	"swift":      true,
	"java":       true,
	"kotlin":     true,
}

// Config is the ruddertyper.yml a client was generated from.
type Config struct {
	Client        ClientConfig         `yaml:"client"`
	TrackingPlans []TrackingPlanConfig `yaml:"trackingPlans"`
}

type ClientConfig struct {
	SDK      string `yaml:"sdk"`
	Language string `yaml:"language"`
}

type TrackingPlanConfig struct {
	ID            string `yaml:"id"`
	Version       string `yaml:"version"`
	WorkspaceSlug string `yaml:"workspaceSlug,omitempty"`
	Path          string `yaml:"path"`
}

func ParseConfig(input []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(input, &config); err != nil {
		return Config{}, &ConfigError{Err: fmt.Errorf("decode config: %w", err)}
	}
	if err := config.Validate(); err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	return config, nil
}

func ReadConfigFile(path string) (Config, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	config, err := ParseConfig(input)
	if err != nil {
		var configErr *ConfigError
		if errors.As(err, &configErr) {
			configErr.Path = path
		}
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Client.SDK == "" {
		return errors.New("client.sdk is required")
	}
	if !supportedLanguages[c.Client.Language] {
		return fmt.Errorf("client.language %q is not supported", c.Client.Language)
	}
	if len(c.TrackingPlans) == 0 {
		return errors.New("at least one tracking plan is required")
	}
	for i, tp := range c.TrackingPlans {
		if tp.ID == "" {
			return fmt.Errorf("trackingPlans[%d].id is required", i)
		}
	}
	return nil
}

// GeneratorContext builds the context for the first tracking plan in c.
func (c Config) GeneratorContext(rudderTyperVersion string) GeneratorContext {
	g := GeneratorContext{
		SDK:                c.Client.SDK,
		Language:           c.Client.Language,
		RudderTyperVersion: rudderTyperVersion,
	}
	if len(c.TrackingPlans) > 0 {
		g.TrackingPlanID = c.TrackingPlans[0].ID
		g.TrackingPlanVersion = c.TrackingPlans[0].Version
	}
	return g
}
