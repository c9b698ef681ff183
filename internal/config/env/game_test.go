package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
game:
  max_turns: 512
  max_token_weight: 1000000
  history_page_limit: 50
`)

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	if cfg.MaxTurns() != 512 {
		t.Errorf("MaxTurns = %d, want 512", cfg.MaxTurns())
	}
	if cfg.MaxTokenWeight() != 1000000 {
		t.Errorf("MaxTokenWeight = %d, want 1000000", cfg.MaxTokenWeight())
	}
	if cfg.HistoryPageLimit() != 50 {
		t.Errorf("HistoryPageLimit = %d, want 50", cfg.HistoryPageLimit())
	}
}

func TestNewGameConfigRejectsMissingLimits(t *testing.T) {
	path := writeConfig(t, `
game:
  max_turns: 512
`)

	if _, err := NewGameConfigFromYAML(path); err == nil {
		t.Error("config without max_token_weight accepted")
	}
}

func TestNewGameConfigMissingFile(t *testing.T) {
	if _, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}
