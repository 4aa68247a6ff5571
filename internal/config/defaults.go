package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/mobile.yaml
var defaultMobileYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "classic":
		return defaultClassicYAML
	case "mobile":
		return defaultMobileYAML
	case "quiz":
		return defaultQuizYAML
	default:
		return nil
	}
}
