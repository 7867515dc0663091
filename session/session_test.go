package session

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Supermarket-List/create-list/db"
	"github.com/Supermarket-List/create-list/models"
)

func openStorage(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestFreshStorageIsUnauthenticated(t *testing.T) {
	s, err := New(openStorage(t))
	if err != nil {
		t.Fatal(err)
	}

	if s.Current() != nil {
		t.Errorf("expected nil user on fresh storage, got %+v", s.Current())
	}
}

func TestSetUserAndCurrent(t *testing.T) {
	s, err := New(openStorage(t))
	if err != nil {
		t.Fatal(err)
	}

	user := &models.User{ID: "42", Nome: "Maria"}
	if err := s.SetUser(user); err != nil {
		t.Fatal(err)
	}

	got := s.Current()
	if got == nil || got.ID != "42" || got.Nome != "Maria" {
		t.Errorf("expected stored user, got %+v", got)
	}
}

func TestIdentitySurvivesRestart(t *testing.T) {
	conn := openStorage(t)

	s1, err := New(conn)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.SetUser(&models.User{ID: "42", Nome: "Maria"}); err != nil {
		t.Fatal(err)
	}

	// Rebuilding the store is the process-restart path.
	s2, err := New(conn)
	if err != nil {
		t.Fatal(err)
	}

	got := s2.Current()
	if got == nil || got.ID != "42" {
		t.Errorf("expected identity restored after restart, got %+v", got)
	}
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	conn := openStorage(t)

	s, err := New(conn)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetUser(&models.User{ID: "42", Nome: "Maria"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("expected nil user after logout")
	}

	s2, err := New(conn)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Current() != nil {
		t.Error("expected logout to clear durable storage")
	}
}

func TestSetNilUserLogsOut(t *testing.T) {
	s, err := New(openStorage(t))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetUser(&models.User{ID: "42", Nome: "Maria"}); err != nil {
		t.Fatal(err)
	}

	if err := s.SetUser(nil); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("expected SetUser(nil) to clear the session")
	}
}

// A row pair with only one key present must not authenticate.
func TestHalfWrittenSessionIsIgnored(t *testing.T) {
	conn := openStorage(t)

	_, err := conn.Exec("INSERT INTO storage (key, value) VALUES (?, ?)", models.StorageKeyUserID, "42")
	if err != nil {
		t.Fatal(err)
	}

	s, err := New(conn)
	if err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Errorf("expected unauthenticated session, got %+v", s.Current())
	}
}
