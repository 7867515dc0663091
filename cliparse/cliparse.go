package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://supermarketapp25.pythonanywhere.com"

// DefaultTimeout bounds every API round trip.
const DefaultTimeout = 15 * time.Second

type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
}

// ParseFlags validates flags and fills in environment fallbacks and defaults.
func ParseFlags(args []string) (Config, []string, error) {
	var cfg Config
	var timeoutFlag string

	fs := flag.NewFlagSet("supermarket-list", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", "", "API base URL")
	fs.StringVar(&cfg.StoragePath, "s", "", "Session storage path")
	fs.StringVar(&timeoutFlag, "t", "", "Request timeout (e.g. 15s)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	// Fall back to environment variables
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultBaseURL
	}

	if cfg.StoragePath == "" {
		cfg.StoragePath = os.Getenv("STORAGE_PATH")
	}
	if cfg.StoragePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.StoragePath = filepath.Join(home, ".supermarket-list.db")
	}

	if timeoutFlag == "" {
		timeoutFlag = os.Getenv("REQUEST_TIMEOUT")
	}
	if timeoutFlag == "" {
		cfg.RequestTimeout = DefaultTimeout
	} else {
		timeout, err := time.ParseDuration(timeoutFlag)
		if err != nil || timeout <= 0 {
			return Config{}, nil, errors.New("invalid request timeout (use a positive duration like 15s)")
		}
		cfg.RequestTimeout = timeout
	}

	return cfg, fs.Args(), nil
}
