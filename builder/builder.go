package builder

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Supermarket-List/create-list/format"
	"github.com/Supermarket-List/create-list/models"
	"github.com/Supermarket-List/create-list/session"
)

var (
	// ErrNotAuthenticated blocks a save before any network call is made.
	ErrNotAuthenticated = errors.New("Usuário não autenticado. Faça login novamente.")

	// ErrEmptyDraft rejects saving a draft with no items.
	ErrEmptyDraft = errors.New("a lista está vazia")

	// ErrSaveInFlight is returned while a previous save is still pending,
	// so a rapid double submit cannot persist the draft twice.
	ErrSaveInFlight = errors.New("já existe um salvamento em andamento")
)

// ListsAPI is the slice of the remote client the builder needs.
type ListsAPI interface {
	SaveList(ctx context.Context, userID string, req models.SaveListRequest) (int64, error)
}

// Builder accumulates a draft shopping list and submits it as a single
// all-or-nothing save. Input fields go through the same masks the form
// applied, so an item is always built from normalized values.
type Builder struct {
	session *session.Store
	api     ListsAPI
	now     func() time.Time

	mu            sync.Mutex
	produto       string
	valor         string
	quantidade    string
	supermercado  string
	itens         []models.Item
	nextID        int64
	pendingRemove int64
	hasPending    bool
	saving        bool
}

func New(sess *session.Store, api ListsAPI) *Builder {
	return &Builder{
		session: sess,
		api:     api,
		now:     time.Now,
		// Monotonic seed: unique across builder sessions and immune to
		// clock-resolution collisions on rapid adds.
		nextID: time.Now().UnixMilli(),
	}
}

// SetProduto updates the product field, capitalized.
func (b *Builder) SetProduto(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.produto = format.CapitalizeWords(s)
}

// SetValor updates the price field through the currency mask.
func (b *Builder) SetValor(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.valor = format.MaskCurrency(s)
}

// SetQuantidade updates the quantity field.
func (b *Builder) SetQuantidade(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.quantidade = strings.TrimSpace(s)
}

// SetSupermercado updates the store field, capitalized.
func (b *Builder) SetSupermercado(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.supermercado = format.CapitalizeWords(s)
}

// Supermercado returns the current store field. It survives AddItem so
// consecutive items from the same store need no retyping.
func (b *Builder) Supermercado() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.supermercado
}

// AddItem appends an item built from the current fields. A missing field or
// non-positive quantity makes it a no-op: no item, no error dialog. On
// success the product, price, and quantity fields are cleared; the store
// field is kept.
func (b *Builder) AddItem() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	qty, _ := strconv.Atoi(b.quantidade)
	if b.produto == "" || b.valor == "" || b.supermercado == "" || qty <= 0 {
		return false
	}

	item := models.Item{
		ID:           b.nextID,
		Produto:      b.produto,
		Valor:        format.ToDecimal(b.valor),
		Quantidade:   qty,
		Supermercado: b.supermercado,
	}
	b.nextID++
	b.itens = append(b.itens, item)

	b.produto = ""
	b.valor = ""
	b.quantidade = ""

	return true
}

// Itens returns a copy of the draft items in insertion order.
func (b *Builder) Itens() []models.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.itens)
}

// RequestRemove marks an item for removal; nothing is mutated until
// ConfirmRemove. Returns false when no draft item has that id.
func (b *Builder) RequestRemove(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, item := range b.itens {
		if item.ID == id {
			b.pendingRemove = id
			b.hasPending = true
			return true
		}
	}
	return false
}

// PendingRemove reports which item, if any, is awaiting confirmation.
func (b *Builder) PendingRemove() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingRemove, b.hasPending
}

// ConfirmRemove deletes the item marked by RequestRemove.
func (b *Builder) ConfirmRemove() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hasPending {
		return false
	}

	id := b.pendingRemove
	b.pendingRemove = 0
	b.hasPending = false

	for i, item := range b.itens {
		if item.ID == id {
			b.itens = append(b.itens[:i], b.itens[i+1:]...)
			return true
		}
	}
	return false
}

// CancelRemove clears a pending removal without touching the draft.
func (b *Builder) CancelRemove() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingRemove = 0
	b.hasPending = false
}

// Total recomputes the draft total ("25.50") from the current items.
func (b *Builder) Total() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return format.Total(b.itens)
}

// CanSave reports whether the draft has anything worth submitting.
func (b *Builder) CanSave() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.itens) > 0
}

// Save submits the draft as one persisted list and returns the server
// assigned id. Without an authenticated session it fails before any network
// call. On failure the draft is left intact so the user can retry; only a
// successful save clears it. A save that is still pending suppresses new
// attempts.
func (b *Builder) Save(ctx context.Context) (int64, error) {
	b.mu.Lock()
	if b.saving {
		b.mu.Unlock()
		return 0, ErrSaveInFlight
	}

	user := b.session.Current()
	if user == nil {
		b.mu.Unlock()
		return 0, ErrNotAuthenticated
	}

	if len(b.itens) == 0 {
		b.mu.Unlock()
		return 0, ErrEmptyDraft
	}

	req := models.SaveListRequest{
		Data:  saoPauloISO(b.now()),
		Itens: slices.Clone(b.itens),
	}
	b.saving = true
	b.mu.Unlock()

	listaID, err := b.api.SaveList(ctx, user.ID, req)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.saving = false

	if err != nil {
		slog.Error("failed to save list",
			"user_id", user.ID,
			"items", len(req.Itens),
			"error", err,
		)
		return 0, err
	}

	b.itens = nil
	slog.Info("list saved", "lista_id", listaID, "user_id", user.ID, "items", len(req.Itens))
	return listaID, nil
}

// saoPauloISO reads the wall clock in America/Sao_Paulo and returns the
// instant as ISO-8601 in UTC.
func saoPauloISO(now time.Time) string {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return now.UTC().Format(time.RFC3339)
	}
	return now.In(loc).UTC().Format(time.RFC3339)
}
