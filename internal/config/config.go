package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	envCatalog = "CARDPACK_CATALOG"
	envLang    = "CARDPACK_LANG"
)

// catalogExtensions lists the file extensions tried for library catalogs
var catalogExtensions = []string{".toml", ".yaml", ".yml"}

// Config represents the application configuration
type Config struct {
	DefaultCatalog string `toml:"default_catalog"`
	Language       string `toml:"language"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCatalogLibraryPath returns the path to the catalog library
func GetCatalogLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardpack", "catalogs")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardpack", "config.toml")
}

// LoadConfig loads the config file and applies environment overrides
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv(envCatalog); v != "" {
		config.DefaultCatalog = v
	}
	if v := os.Getenv(envLang); v != "" {
		config.Language = v
	}
	return config, nil
}

// loadFile reads the config file, creating it with defaults when missing
func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := defaultConfig()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DefaultCatalog: "standard52",
		Language:       "en",
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetCatalogPath returns the path to a catalog file, either in the catalog
// library or a relative path
func GetCatalogPath(name string) (string, error) {
	libraryPath := GetCatalogLibraryPath()

	for _, ext := range catalogExtensions {
		catalogPath := filepath.Join(libraryPath, name+ext)
		if _, err := os.Stat(catalogPath); err == nil {
			return catalogPath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	return "", fmt.Errorf("catalog not found: %s", name)
}

// IsCatalogFile reports whether name has a catalog file extension
func IsCatalogFile(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range catalogExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GetDefaultCatalog returns the default catalog name from config
func GetDefaultCatalog() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultCatalog, nil
}

// GetLanguage returns the configured language for card names
func GetLanguage() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.Language, nil
}

// SetDefaultCatalog sets the default catalog in the config file
func SetDefaultCatalog(name string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}

	config.DefaultCatalog = name
	return saveConfig(config)
}
