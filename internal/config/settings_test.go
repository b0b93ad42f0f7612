package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetServerURL() != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, settings.GetServerURL())
	}

	settings.SetServerURL("http://10.0.0.5:8188")
	if settings.GetServerURL() != "http://10.0.0.5:8188" {
		t.Errorf("Expected custom server URL, got %s", settings.GetServerURL())
	}
}

func TestPromptLineCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetPromptLineCount() != DefaultPromptLineCount {
		t.Errorf("Expected default line count %d, got %d", DefaultPromptLineCount, settings.GetPromptLineCount())
	}

	settings.SetPromptLineCount(5)
	if settings.GetPromptLineCount() != 5 {
		t.Errorf("Expected line count 5, got %d", settings.GetPromptLineCount())
	}

	// Boundary values are clamped
	settings.SetPromptLineCount(0)
	if settings.GetPromptLineCount() != 1 {
		t.Error("Line count should be clamped to minimum 1")
	}
	settings.SetPromptLineCount(99)
	if settings.GetPromptLineCount() != 10 {
		t.Error("Line count should be clamped to maximum 10")
	}
}

func TestHistoryLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetHistoryLimit() != DefaultHistoryLimit {
		t.Errorf("Expected default history limit %d, got %d", DefaultHistoryLimit, settings.GetHistoryLimit())
	}

	settings.SetHistoryLimit(0)
	if settings.GetHistoryLimit() != 1 {
		t.Error("History limit should be clamped to minimum 1")
	}
}

func TestSettings_ChangedBroadcast(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	var keys []string
	settings.Changed.Listen(func(key string) error {
		keys = append(keys, key)
		return nil
	})

	settings.SetShowNegativePrompt(true)
	settings.SetPromptLineCount(3)

	if len(keys) != 2 || keys[0] != KeyShowNegativePrompt || keys[1] != KeyPromptLineCount {
		t.Errorf("Expected changed keys for each write, got %v", keys)
	}
}

func TestSettings_ApplyEnvOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := EnvServerURL + "=http://env-host:8188\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	// godotenv does not override variables already present, so make sure the
	// key is truly absent (t.Setenv registers the restore).
	t.Setenv(EnvServerURL, "")
	os.Unsetenv(EnvServerURL)
	t.Setenv(EnvStyleDir, "")
	os.Unsetenv(EnvStyleDir)

	settings.ApplyEnvOverrides(envFile)

	if settings.GetServerURL() != "http://env-host:8188" {
		t.Errorf("Expected env override applied, got %s", settings.GetServerURL())
	}
}

func TestSettings_ApplyEnvOverridesMissingFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	t.Setenv(EnvServerURL, "")
	os.Unsetenv(EnvServerURL)
	t.Setenv(EnvStyleDir, "")
	os.Unsetenv(EnvStyleDir)

	settings.ApplyEnvOverrides(filepath.Join(t.TempDir(), "missing.env"))

	if settings.GetServerURL() != DefaultServerURL {
		t.Errorf("Expected defaults untouched, got %s", settings.GetServerURL())
	}
}
