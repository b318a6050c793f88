package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	GoThemesDir   string `mapstructure:"go_themes_dir"`
	BashThemesDir string `mapstructure:"bash_themes_dir"`
	ThemeName     string `mapstructure:"theme_name"`
	SortThemes    bool   `mapstructure:"sort_themes"`
	DBPath        string `mapstructure:"db_path"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".themeparity")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// loads config from file
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if !ConfigExists() {
		return GetDefaultConfig(), nil
	}

	// setup viper
	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	viper.SetDefault("sort_themes", true)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "snapshots.db")
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("go_themes_dir", cfg.GoThemesDir)
	viper.Set("bash_themes_dir", cfg.BashThemesDir)
	viper.Set("theme_name", cfg.ThemeName)
	viper.Set("sort_themes", cfg.SortThemes)
	viper.Set("db_path", cfg.DBPath)

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		GoThemesDir:   "",
		BashThemesDir: "",
		ThemeName:     "",
		SortThemes:    true,
		DBPath:        filepath.Join(configDir, "snapshots.db"),
	}
}

// updates theme roots in config file
func UpdateRoots(goThemesDir, bashThemesDir string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.GoThemesDir = goThemesDir
	cfg.BashThemesDir = bashThemesDir
	return SaveConfig(cfg)
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}
