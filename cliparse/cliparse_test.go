package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, rest, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIBaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.StoragePath == "" {
		t.Error("expected a non-empty default storage path")
	}
	if len(rest) != 0 {
		t.Errorf("expected no remaining args, got %v", rest)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://localhost:5000")
	os.Setenv("STORAGE_PATH", "/tmp/session.db")
	os.Setenv("REQUEST_TIMEOUT", "3s")
	defer os.Clearenv()

	cfg, _, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Errorf("expected env base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.StoragePath != "/tmp/session.db" {
		t.Errorf("expected env storage path, got %q", cfg.StoragePath)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.RequestTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://env:5000")
	defer os.Clearenv()

	cfg, rest, err := ParseFlags([]string{"-a", "http://flag:5000", "-t", "1s", "lists"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.APIBaseURL != "http://flag:5000" {
		t.Errorf("CLI should override env: got %q", cfg.APIBaseURL)
	}
	if len(rest) != 1 || rest[0] != "lists" {
		t.Errorf("expected command args [lists], got %v", rest)
	}
}

func TestParseFlags_InvalidTimeout(t *testing.T) {
	os.Clearenv()

	if _, _, err := ParseFlags([]string{"-t", "soon"}); err == nil {
		t.Error("expected error for unparseable timeout")
	}
	if _, _, err := ParseFlags([]string{"-t", "-5s"}); err == nil {
		t.Error("expected error for negative timeout")
	}
}
