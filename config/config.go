package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Type   string `yaml:"type"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
	User   string `yaml:"user"`
	Passwd string `yaml:"passwd"`
	Debug  bool   `yaml:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type ImportConfig struct {
	LogRetentionDays int `yaml:"log_retention_days"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system"`
	Web      WebConfig    `yaml:"web"`
	Database DBConfig     `yaml:"database"`
	Logger   LogConfig    `yaml:"logger"`
	Import   ImportConfig `yaml:"import"`
}

// DefaultAppConfig are the settings used when no config file is supplied.
var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "stockbridge",
		Location: "Africa/Lagos",
		Workdir:  "/var/stockbridge",
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1860,
	},
	Database: DBConfig{
		Type:   "postgres",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "stockbridge",
		User:   "postgres",
		Passwd: "",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/stockbridge/stockbridge.log",
	},
	Import: ImportConfig{
		LogRetentionDays: 90,
	},
}

// LoadConfig reads a YAML config file over the defaults. Environment
// variables override the database credentials so containers don't need a
// file edit.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if v := os.Getenv("STOCKBRIDGE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("STOCKBRIDGE_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("STOCKBRIDGE_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("STOCKBRIDGE_DB_PASSWD"); v != "" {
		cfg.Database.Passwd = v
	}
	return &cfg, nil
}
