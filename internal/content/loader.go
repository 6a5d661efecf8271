package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/glyphrun.yaml
var defaultYAML []byte

// Load reads and validates a configuration document.
// Search order: customPath -> ~/.glyphrun/content.yaml -> ./configs/content.yaml
// -> embedded default. A custom path that fails to read or parse is an error;
// the fallback locations are skipped silently when absent.
func Load(customPath string) (*Config, error) {
	data, source, err := readConfig(customPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("content: cannot parse %s: %w", source, err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", source, err)
	}
	return &cfg, nil
}

func readConfig(customPath string) (data []byte, source string, err error) {
	if customPath != "" {
		data, err = os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("content: cannot read %s: %w", customPath, err)
		}
		return data, customPath, nil
	}

	if userPath := userConfigPath("content.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return data, userPath, nil
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "content.yaml")); err == nil {
		return data, "configs/content.yaml", nil
	}

	return defaultYAML, "embedded default", nil
}

// userConfigPath returns the path under the user's config directory,
// or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphrun", filename)
}

// applyDefaults fills zero values that have non-zero meanings.
func applyDefaults(cfg *Config) {
	for key, style := range cfg.Sounds {
		if style.Gain == 0 {
			style.Gain = 1
			cfg.Sounds[key] = style
		}
	}
}

// Default returns the embedded default configuration. Panics if the embedded
// document is invalid, which is a build-time content bug.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("content: embedded default is unparsable: %v", err))
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		panic(fmt.Sprintf("content: embedded default is invalid: %v", err))
	}
	return &cfg
}
