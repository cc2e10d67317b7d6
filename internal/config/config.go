// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"articlefix/internal/logging"
)

const DefaultPath = ".articlefix.json"

type Config struct {
	LogLevel string `json:"log_level"` // debug, info, warn, error
	ShowDiff bool   `json:"show_diff"`
}

func Default() *Config {
	return &Config{LogLevel: logging.DefaultLevel}
}

// Load reads the JSON config at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	config := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	return config, nil
}
