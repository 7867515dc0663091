package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Supermarket-List/create-list/db"
	"github.com/Supermarket-List/create-list/models"
	"github.com/Supermarket-List/create-list/session"
)

// NewTestSession creates a session store on a throwaway SQLite file,
// optionally pre-authenticated as user.
func NewTestSession(t *testing.T, user *models.User) *session.Store {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Failed to open test storage: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	sess, err := session.New(conn)
	if err != nil {
		t.Fatalf("Failed to build session store: %v", err)
	}

	if user != nil {
		if err := sess.SetUser(user); err != nil {
			t.Fatalf("Failed to seed session user: %v", err)
		}
	}

	return sess
}

// SaveCall records one POST /api/listas received by the fake backend.
type SaveCall struct {
	UserID string
	Body   models.SaveListRequest
}

// FakeBackend is an httptest server speaking the backend's five endpoints.
// Responses are scripted per test; every call is recorded for assertions.
type FakeBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu sync.Mutex

	authUser   models.User
	authStatus int
	authBody   string

	listas       []models.Lista
	listasStatus int
	listasBody   string

	saveID     int64
	saveStatus int
	saveBody   string
	saveDelay  time.Duration

	deleteStatus int
	deleteBody   string

	saveCalls   []SaveCall
	listCalls   int
	deleteCalls []int64
	authCalls   int
}

// NewFakeBackend starts a backend that accepts everything: auth returns the
// given user, saves return list id 1, fetches return no lists. Use the
// Fail*/Set* methods to script other behavior. The server is shut down via
// t.Cleanup.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	f := &FakeBackend{
		t:            t,
		authUser:     models.User{ID: "42", Nome: "Maria"},
		authStatus:   http.StatusOK,
		listasStatus: http.StatusOK,
		saveID:       1,
		saveStatus:   http.StatusOK,
		deleteStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users", f.handleAuth)
	mux.HandleFunc("POST /api/login", f.handleAuth)
	mux.HandleFunc("GET /api/listas", f.handleFetch)
	mux.HandleFunc("POST /api/listas", f.handleSave)
	mux.HandleFunc("DELETE /api/listas/{id}", f.handleDelete)

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	return f
}

func (f *FakeBackend) URL() string {
	return f.srv.URL
}

// SetAuthUser scripts the identity returned by register and login.
func (f *FakeBackend) SetAuthUser(id int64, nome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authUser = models.User{ID: strconv.FormatInt(id, 10), Nome: nome}
}

// FailAuth makes register and login respond with status and rawBody.
func (f *FakeBackend) FailAuth(status int, rawBody string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authStatus = status
	f.authBody = rawBody
}

// SetListas scripts the GET /api/listas response.
func (f *FakeBackend) SetListas(listas []models.Lista) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listas = listas
}

// FailFetch makes GET /api/listas respond with status and rawBody.
func (f *FakeBackend) FailFetch(status int, rawBody string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listasStatus = status
	f.listasBody = rawBody
}

// SetSaveID scripts the listaId assigned to the next successful save.
func (f *FakeBackend) SetSaveID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveID = id
}

// FailSave makes POST /api/listas respond with status and rawBody.
func (f *FakeBackend) FailSave(status int, rawBody string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveStatus = status
	f.saveBody = rawBody
}

// DelaySave holds every save response for d, for in-flight suppression tests.
func (f *FakeBackend) DelaySave(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveDelay = d
}

// FailDelete makes DELETE /api/listas/{id} respond with status and rawBody.
func (f *FakeBackend) FailDelete(status int, rawBody string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteStatus = status
	f.deleteBody = rawBody
}

// SaveCalls returns the recorded save requests.
func (f *FakeBackend) SaveCalls() []SaveCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SaveCall(nil), f.saveCalls...)
}

// ListCalls returns how many fetches were received.
func (f *FakeBackend) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// DeleteCalls returns the list ids of the recorded delete requests.
func (f *FakeBackend) DeleteCalls() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deleteCalls...)
}

// AuthCalls returns how many register/login requests were received.
func (f *FakeBackend) AuthCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authCalls
}

func (f *FakeBackend) handleAuth(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.authCalls++
	status, rawBody, user := f.authStatus, f.authBody, f.authUser
	f.mu.Unlock()

	if status < 200 || status >= 300 {
		writeRaw(w, status, rawBody)
		return
	}

	// The real backend sends the id as a number.
	id, _ := strconv.ParseInt(user.ID, 10, 64)
	writeJSON(w, status, map[string]any{"id": id, "nome": user.Nome})
}

func (f *FakeBackend) handleFetch(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	status, rawBody, listas := f.listasStatus, f.listasBody, f.listas
	f.mu.Unlock()

	if status < 200 || status >= 300 {
		writeRaw(w, status, rawBody)
		return
	}

	if listas == nil {
		listas = []models.Lista{}
	}
	writeJSON(w, status, listas)
}

func (f *FakeBackend) handleSave(w http.ResponseWriter, r *http.Request) {
	var body models.SaveListRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		f.t.Errorf("fake backend: bad save body: %v", err)
	}

	f.mu.Lock()
	f.saveCalls = append(f.saveCalls, SaveCall{
		UserID: r.URL.Query().Get("userId"),
		Body:   body,
	})
	status, rawBody, id, delay := f.saveStatus, f.saveBody, f.saveID, f.saveDelay
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	if status < 200 || status >= 300 {
		writeRaw(w, status, rawBody)
		return
	}

	writeJSON(w, status, models.SaveListResponse{ListaID: id})
}

func (f *FakeBackend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		f.t.Errorf("fake backend: bad delete id %q", r.PathValue("id"))
	}

	f.mu.Lock()
	f.deleteCalls = append(f.deleteCalls, id)
	status, rawBody := f.deleteStatus, f.deleteBody
	f.mu.Unlock()

	if status < 200 || status >= 300 {
		writeRaw(w, status, rawBody)
		return
	}

	writeJSON(w, status, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
