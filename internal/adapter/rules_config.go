package adapter

import (
	"encoding/json"
	"fmt"
	"os"
)

// RulesConfig is the rule selection file exported by the linterman UI. Custom
// templates may appear in the export but are not interpreted here.
type RulesConfig struct {
	Version         string            `json:"version"`
	EnabledRules    []string          `json:"enabledRules"`
	CustomTemplates map[string]string `json:"customTemplates,omitempty"`
}

// LoadRulesConfig reads an exported rules configuration from path.
func LoadRulesConfig(path string) (RulesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RulesConfig{}, fmt.Errorf("read rules config %s: %w", path, err)
	}

	var cfg RulesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return RulesConfig{}, fmt.Errorf("parse rules config %s: %w", path, err)
	}

	return cfg, nil
}
