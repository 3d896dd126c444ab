package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/orayew2002/rast-attendance/domain"
	"gopkg.in/yaml.v3"
)

const (
	defaultPath  = "configs/config.yaml"
	yearlyLayout = "01-02"
)

type Config struct {
	App struct {
		Port           int      `yaml:"port"`
		Env            string   `yaml:"env"`
		LogLevel       string   `yaml:"log_level"`
		MaxUploadMB    int      `yaml:"max_upload_mb"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"app"`

	Report struct {
		CompanyName string         `yaml:"company_name"`
		FilePrefix  string         `yaml:"file_prefix"`
		Seed        uint64         `yaml:"seed"`
		Holidays    []HolidayEntry `yaml:"holidays"`
	} `yaml:"report"`

	Monitoring struct {
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
	} `yaml:"monitoring"`
}

// HolidayEntry is a default holiday offered on the form. Date is either
// "2006-01-02" (that day only) or "01-02" (the same day every year).
type HolidayEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// Load reads .env (if present) and then the YAML file at path. An empty path
// falls back to $ATTENDANCE_CONFIG and then configs/config.yaml; a missing
// default file is not an error, the built-in defaults apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = getEnv("ATTENDANCE_CONFIG", defaultPath)
		explicit = path != defaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Support ${ENV_VAR} placeholders in YAML config.
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.MaxUploadMB <= 0 {
		c.App.MaxUploadMB = 8
	}
	if c.Report.CompanyName == "" {
		c.Report.CompanyName = "ABC COMPANY"
	}
	if c.Report.FilePrefix == "" {
		c.Report.FilePrefix = "NFP"
	}
}

// Validate checks values the defaults cannot repair.
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("app.port %d out of range", c.App.Port)
	}
	for _, h := range c.Report.Holidays {
		if _, _, err := h.parse(); err != nil {
			return err
		}
	}
	return nil
}

// HolidaysFor resolves the configured holidays against year. Yearly entries
// that do not exist in year (02-29) are skipped.
func (c *Config) HolidaysFor(year int) []domain.Holiday {
	list := make([]domain.Holiday, 0, len(c.Report.Holidays))
	for _, h := range c.Report.Holidays {
		date, yearly, err := h.parse()
		if err != nil {
			continue
		}
		if yearly {
			resolved := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
			if resolved.Month() != date.Month() {
				continue
			}
			date = resolved
		}
		list = append(list, domain.Holiday{Date: date, Name: h.Name})
	}
	return list
}

func (h HolidayEntry) parse() (time.Time, bool, error) {
	if h.Name == "" {
		return time.Time{}, false, fmt.Errorf("report.holidays %s: name is required", h.Date)
	}
	if date, err := time.Parse(time.DateOnly, h.Date); err == nil {
		return date, false, nil
	}
	date, err := time.Parse(yearlyLayout, h.Date)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("report.holidays %q: want YYYY-MM-DD or MM-DD", h.Date)
	}
	return date, true, nil
}

// Addr is the listen address of the web server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// MaxUploadBytes caps the multipart body of a generation request.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.App.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
