package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"database": map[string]interface{}{
			"path": "~/.focald/focald.db",
		},
		"day": map[string]interface{}{
			"start_hour":      7,
			"end_hour":        22,
			"min_gap_minutes": 5,
		},
		"calm": map[string]interface{}{
			"up_next_limit": 3,
		},
		"focus": map[string]interface{}{
			"work_minutes":  25,
			"break_minutes": 5,
		},
		"scheduler": map[string]interface{}{
			"buffer": 64,
		},
		"notifications": map[string]interface{}{
			"desktop": true,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.focald/config.yaml"
}
