package viewer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/Supermarket-List/create-list/models"
	"github.com/Supermarket-List/create-list/session"
)

var (
	// ErrNotLoggedIn is returned by Load when there is no session; no
	// network call is made in that case.
	ErrNotLoggedIn = errors.New("Usuário não logado.")

	// ErrLoadFailed is the generic retrieval failure surfaced to the user.
	ErrLoadFailed = errors.New("Erro ao carregar listas.")

	// ErrDeleteFailed is surfaced when a delete is rejected; the local
	// collection stays as it was.
	ErrDeleteFailed = errors.New("Erro ao excluir a lista.")
)

// ListsAPI is the slice of the remote client the viewer needs.
type ListsAPI interface {
	ListsByUser(ctx context.Context, userID string) ([]models.Lista, error)
	DeleteList(ctx context.Context, listaID int64) error
}

// Viewer holds the fetched lists of the session user and supports per-list
// deletion with optimistic local removal.
type Viewer struct {
	session *session.Store
	api     ListsAPI

	mu     sync.Mutex
	listas []models.Lista
}

func New(sess *session.Store, api ListsAPI) *Viewer {
	return &Viewer{session: sess, api: api}
}

// Load fetches every list owned by the session user. Without a session it
// fails immediately with ErrNotLoggedIn; a backend failure is logged and
// surfaced as the generic ErrLoadFailed.
func (v *Viewer) Load(ctx context.Context) error {
	user := v.session.Current()
	if user == nil {
		return ErrNotLoggedIn
	}

	listas, err := v.api.ListsByUser(ctx, user.ID)
	if err != nil {
		slog.Error("failed to load lists", "user_id", user.ID, "error", err)
		return ErrLoadFailed
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.listas = listas
	return nil
}

// Listas returns a copy of the loaded lists.
func (v *Viewer) Listas() []models.Lista {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.listas)
}

// Delete removes the list on the backend and, on success, drops it from the
// local collection without a re-fetch. On failure the collection is left
// unchanged, the cause is logged, and the generic error is surfaced.
func (v *Viewer) Delete(ctx context.Context, listaID int64) error {
	if err := v.api.DeleteList(ctx, listaID); err != nil {
		slog.Error("failed to delete list", "lista_id", listaID, "error", err)
		return ErrDeleteFailed
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.listas = slices.DeleteFunc(v.listas, func(l models.Lista) bool {
		return l.ID == listaID
	})

	slog.Info("list deleted", "lista_id", listaID)
	return nil
}
