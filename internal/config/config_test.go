package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagank1/Flappy-Nerd/internal/sim"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	for _, id := range []string{"classic", "mobile", "quiz"} {
		t.Run(id, func(t *testing.T) {
			cfg, err := LoadVariant(id, "")
			if err != nil {
				t.Fatalf("LoadVariant(%q) failed: %v", id, err)
			}
			sc := cfg.ToSim(0)
			if err := sc.Validate(); err != nil {
				t.Errorf("embedded %s default does not validate: %v", id, err)
			}
			if _, err := sim.NewSession(sc); err != nil {
				t.Errorf("embedded %s default cannot build a session: %v", id, err)
			}
		})
	}
}

func TestLoadVariantUnknownID(t *testing.T) {
	if _, err := LoadVariant("nosuchvariant", ""); err == nil {
		t.Error("expected an error for an unknown variant ID")
	}
}

func TestLoadVariantCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweaked.yaml")
	writeFile(t, path, `
world:
  width: 100
  height: 100
  floor_height: 10
physics:
  gravity: 1000
clock:
  step_hz: 30
  max_frame_delta: 0.5
`)

	cfg, err := LoadVariant("classic", path)
	if err != nil {
		t.Fatalf("LoadVariant with custom path failed: %v", err)
	}
	if cfg.World.Width != 100 {
		t.Errorf("world width = %v, expected the custom file's 100", cfg.World.Width)
	}
	if got := cfg.ToSim(0).FixedStep; got != 1.0/30.0 {
		t.Errorf("fixed step = %v, expected 1/30", got)
	}
}

func TestLoadVariantMissingCustomPath(t *testing.T) {
	if _, err := LoadVariant("classic", "/definitely/not/here.yaml"); err == nil {
		t.Error("expected an error for a missing custom path")
	}
}

func TestQuizSectionParsed(t *testing.T) {
	cfg, err := LoadVariant("quiz", "")
	if err != nil {
		t.Fatalf("LoadVariant(quiz) failed: %v", err)
	}
	if cfg.Quiz.ZoneWidth <= 0 {
		t.Errorf("quiz zone width = %v, expected positive", cfg.Quiz.ZoneWidth)
	}
	if cfg.Quiz.ZoneInterval < 1 {
		t.Errorf("quiz zone interval = %d, expected at least 1", cfg.Quiz.ZoneInterval)
	}
}
