package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
	"github.com/bytesyntax/schedule-helper/pkg/workbook"
)

const (
	configFileBase = "schedule_helper_config"
	homeFolderVar  = "<HOME_FOLDER>"

	// DatabaseURLEnv overrides database.url when set (also read from a .env file)
	DatabaseURLEnv = "SCHEDULE_HELPER_DATABASE_URL"
)

// Settings holds the lunch policy. Both values are in hours.
type Settings struct {
	HoursForLunch *float64 `yaml:"hoursForLunch" validate:"required,gte=0"`
	LunchAfter    *float64 `yaml:"lunchAfter" validate:"required,gte=0"`
}

// InputFormat describes where shift data sits in an input sheet.
// RowStart is 1-based like spreadsheet rows; columns are 0-based.
type InputFormat struct {
	RowStart     int `yaml:"rowStart" validate:"gte=1"`
	ColID        int `yaml:"colID" validate:"gte=0"`
	ColLastName  int `yaml:"colLastName" validate:"gte=0"`
	ColFirstName int `yaml:"colFirstName" validate:"gte=0"`
	ColDate      int `yaml:"colDate" validate:"gte=0"`
	ColShift     int `yaml:"colShift" validate:"gte=0"`
}

// Layout converts the input format for the spreadsheet readers
func (f InputFormat) Layout() workbook.Layout {
	return workbook.Layout(f)
}

// Paths lists the folders and files the CLI reads from and writes to.
// Values may start with <HOME_FOLDER>.
type Paths struct {
	Default      string `yaml:"default"`
	Output       string `yaml:"output"`
	Footers      string `yaml:"footers,omitempty"`
	EmployeeData string `yaml:"employeeData,omitempty"` // Folder containing employee.csv
	Settings     string `yaml:"settings,omitempty"`     // Settings.xlsx with employeeId, phone, role
}

// Database configures the optional Postgres shift store
type Database struct {
	URL string `yaml:"url,omitempty" validate:"omitempty,url"`
}

// Sheets configures the optional Google Sheets shift source
type Sheets struct {
	SpreadsheetID string `yaml:"spreadsheetID,omitempty"`
	Range         string `yaml:"range,omitempty" validate:"required_with=SpreadsheetID"`
	EmployeeRange string `yaml:"employeeRange,omitempty"` // Optional id/phone/role table in the same spreadsheet
}

// Server configures the headless upload server
type Server struct {
	Addr      string `yaml:"addr"`
	RateLimit int    `yaml:"rateLimit" validate:"gte=0"` // Uploads per minute per client, 0 disables

	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"` // CORS origins, none disables CORS
}

// Config represents the application configuration
type Config struct {
	Settings    Settings    `yaml:"settings"`
	InputFormat InputFormat `yaml:"inputFormat"`
	Paths       Paths       `yaml:"paths"`
	Database    Database    `yaml:"database,omitempty"`
	Sheets      Sheets      `yaml:"sheets,omitempty"`
	Server      Server      `yaml:"server"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns a configuration with everything but the lunch policy filled in
func Default() Config {
	return Config{
		InputFormat: InputFormat(workbook.DefaultLayout),
		Paths: Paths{
			Default: ".",
			Output:  ".",
		},
		Server: Server{
			Addr:      ":8999",
			RateLimit: 20,
		},
	}
}

// Load loads and validates the configuration from schedule_helper_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment
// For example, env="test" will look for "schedule_helper_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	name := configFileBase + ".yaml"
	if env != "" {
		name = configFileBase + "." + env + ".yaml"
	}

	configPath, err := findFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if cfg.Settings.HoursForLunch == nil {
		return fmt.Errorf("%w: settings.hoursForLunch", schedule.ErrConfigurationMissing)
	}
	if cfg.Settings.LunchAfter == nil {
		return fmt.Errorf("%w: settings.lunchAfter", schedule.ErrConfigurationMissing)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Policy combines the lunch settings with an employee directory
func (c *Config) Policy(directory schedule.Directory) schedule.Policy {
	p := schedule.Policy{Directory: directory}
	if c.Settings.HoursForLunch != nil {
		p.HoursForLunch = *c.Settings.HoursForLunch
	}
	if c.Settings.LunchAfter != nil {
		p.LunchAfter = *c.Settings.LunchAfter
	}
	return p
}

// OutputDir returns the expanded output folder
func (c *Config) OutputDir() string {
	return ParsePath(c.Paths.Output)
}

// FooterDir returns the expanded footer folder, or "" when not configured
func (c *Config) FooterDir() string {
	return ParsePath(c.Paths.Footers)
}

// ParsePath expands <HOME_FOLDER> to the user's home directory and trims whitespace
func ParsePath(path string) string {
	path = strings.TrimSpace(path)
	if strings.Contains(path, homeFolderVar) {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.ReplaceAll(path, homeFolderVar, home)
		}
	}
	return path
}

// applyEnvOverrides loads a .env file from the working directory if there is one and
// applies environment overrides on top of the file configuration
func applyEnvOverrides(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	if url := os.Getenv(DatabaseURLEnv); url != "" {
		cfg.Database.URL = url
	}

	return nil
}

// findFile searches for name in the current directory and then the home directory
func findFile(name string) (string, error) {
	// Check current directory
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
