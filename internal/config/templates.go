package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# tradecoach configuration

[generator]
# Random seed; 0 draws a fresh seed per run
seed = 0
# Optional YAML catalog replacing the built-in traders, scenarios and tables
catalog_file = ""
# Decision count range for random scenarios
random_min_decisions = 3
random_max_decisions = 6
# Decision count range for custom scenarios
custom_min_decisions = 3
custom_max_decisions = 5
# Chance that a run spans a second trading session
secondary_session_probability = 0.4

[server]
# Listen address for "tradecoach serve"
addr = ":8080"
# gin mode: debug, release, test
mode = "release"
# Generation requests per second (0 = unlimited) and burst size
rate_limit = 0
burst = 5

[logging]
# Level: debug, info, warn, error
level = "info"
console = true
# Rotating log file
file = false
# file_path = "~/.config/tradecoach/logs/tradecoach.log"
max_size = 20
max_backups = 5
max_age = 14

[ui]
# Enable colored output
color_enabled = true
`

// Template returns the commented config template.
func Template() string {
	return configTemplate
}

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
