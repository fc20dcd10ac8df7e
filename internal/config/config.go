package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "fileboard.yaml"

type ClientConfig struct {
	Endpoint    string `yaml:"endpoint"`
	CurrentPath string `yaml:"current_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Messages is the wording of outcome notifications.
type Messages struct {
	Moved          string `yaml:"moved"`
	UploadFailed   string `yaml:"upload_failed"`
	TransportError string `yaml:"transport_error"`
	Refreshed      string `yaml:"refreshed"`
}

type Prompts struct {
	FolderName    string `yaml:"folder_name"`
	MoveTo        string `yaml:"move_to"`
	ConfirmDelete string `yaml:"confirm_delete"`
}

type Config struct {
	Client   ClientConfig `yaml:"client"`
	Log      LogConfig    `yaml:"log"`
	Messages Messages     `yaml:"messages"`
	Prompts  Prompts      `yaml:"prompts"`
}

func DefaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			Endpoint:    "http://localhost:3000/",
			CurrentPath: "",
		},
		Log: LogConfig{Level: "info"},
		Messages: Messages{
			Moved:          "Moved!",
			UploadFailed:   "Upload failed.",
			TransportError: "Error occurred:",
			Refreshed:      "View refreshed",
		},
		Prompts: Prompts{
			FolderName:    "New folder name",
			MoveTo:        "Move to",
			ConfirmDelete: "Move %s to trash?",
		},
	}
}

// LoadConfig reads filename on top of the defaults. A missing file at the
// default location is not an error. The result is not validated: flags may
// still override it, so callers run Validate afterwards.
func LoadConfig(filename string) (*Config, error) {
	cfg, err := LoadConfigWithError(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && filename == DefaultConfigFile {
			logrus.Debugf("config file %s not found, using defaults", filename)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func LoadConfigWithError(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	return cfg, nil
}

// Validate checks the config after flag overrides were applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

type validationError struct {
	field string
	msg   string
}

func (e validationError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.msg)
}

func validateConfig(cfg *Config) error {
	type validator func() error

	validators := []validator{
		func() error { return validateRequiredString("client.endpoint", cfg.Client.Endpoint) },
		func() error { return validateEndpoint(cfg.Client.Endpoint) },
		func() error { return validateLogLevel(cfg.Log.Level) },
		func() error { return validateRequiredString("prompts.confirm_delete", cfg.Prompts.ConfirmDelete) },
	}

	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}

	return nil
}

func validateRequiredString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationError{field: field, msg: "is required"}
	}
	return nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return validationError{field: "client.endpoint", msg: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validationError{
			field: "client.endpoint",
			msg:   fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
		}
	}
	if u.Host == "" {
		return validationError{field: "client.endpoint", msg: "host is required"}
	}
	return nil
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := logrus.ParseLevel(level); err != nil {
		return validationError{field: "log.level", msg: err.Error()}
	}
	return nil
}
