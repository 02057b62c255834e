package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the persisted configuration record. All four fields are
// always present in the file, possibly as empty strings.
type Settings struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url"`
}

// DefaultSettings returns the placeholder record written on first run.
func DefaultSettings() *Settings {
	return &Settings{
		Provider: "openai",
		Model:    "gpt-4o-mini",
		APIKey:   "sk-your-api-key",
		BaseURL:  "https://api.openai.com/v1",
	}
}

// Path returns the settings file location.
// GENTOR_HOME overrides the directory, otherwise the user's home is used.
func Path() (string, error) {
	var configDir string

	if gentorHome := os.Getenv("GENTOR_HOME"); gentorHome != "" {
		configDir = gentorHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".gentor", "settings.json"), nil
}

// Bootstrap creates the settings file with placeholder values if it does
// not exist yet. It reports whether a new file was created, so the caller
// can tell the operator to fill in the credential before relaunching.
func Bootstrap() (bool, error) {
	path, err := Path()
	if err != nil {
		return false, fmt.Errorf("failed to resolve settings path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat settings file: %w", err)
	}

	if err := save(DefaultSettings(), path); err != nil {
		return false, fmt.Errorf("failed to create settings file: %w", err)
	}

	return true, nil
}

// Load reads the settings file. A missing or malformed file is an error;
// Bootstrap is expected to have run first.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

// Save persists the record back to the settings file.
func Save(s *Settings) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("failed to resolve settings path: %w", err)
	}

	return save(s, path)
}

// FileStore persists records through Save. It exists so callers can depend
// on a narrow interface and substitute a fake in tests.
type FileStore struct{}

func (FileStore) Save(s *Settings) error {
	return Save(s)
}

func save(settings *Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
