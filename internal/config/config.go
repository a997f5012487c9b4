// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables and an
// optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address"`

	// BaseURL is the origin used when formatting share links.
	BaseURL string `json:"base_url"`

	// FilePath is the path to the durable storage file. Empty means the
	// durable namespace is kept in memory.
	FilePath string `json:"file_storage_path"`

	// AutosaveInterval is the quiet period before a content mutation is
	// persisted.
	AutosaveInterval time.Duration `json:"-"`

	// LogLevel sets the zap logging level.
	LogLevel string `json:"log_level"`

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool `json:"enable_pprof"`

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool `json:"enable_https"`

	// Config is the path to an optional JSON config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.BaseURL, "b", "http://localhost:8080", "base url for share links")
	flag.StringVar(&options.FilePath, "f", "", "path to storage file")
	flag.DurationVar(&options.AutosaveInterval, "i", time.Second, "autosave debounce interval")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
	flag.StringVar(&options.Config, "c", "", "path to json config file")
}

// Parse parses the command-line flags, the optional config file and the
// environment variables. Environment variables win over the file, the file
// over flag defaults.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if err := loadFromFile(options.Config, options); err != nil {
			// A broken config file falls back to flags and env.
			options.Config = ""
		}
	}

	// Override flags with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		options.BaseURL = baseURL
	}

	if storagePath := os.Getenv("FILE_STORAGE_PATH"); storagePath != "" {
		options.FilePath = storagePath
	}

	if interval := os.Getenv("AUTOSAVE_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			options.AutosaveInterval = d
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		options.LogLevel = logLevel
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			options.EnableHTTPS = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}

func loadFromFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, opts)
}
