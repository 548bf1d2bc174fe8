package history

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// Manager owns the in-memory history list and mirrors it to a Store.
// Store failures are logged and otherwise ignored: the in-memory list stays
// authoritative for the session. Methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	store  Store
	limit  int
	items  []Item
	logger *slog.Logger
	now    func() time.Time
}

// NewManager creates a manager persisting to store. A nil store keeps history
// in memory only.
func NewManager(store Store, limit int, logger *slog.Logger) *Manager {
	if store == nil {
		store = NewMemStore()
	}
	if limit < 1 {
		limit = MaxItems
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, limit: limit, logger: logger, now: time.Now}
}

// Load replaces the in-memory list with the stored one. On failure the list is
// left empty.
func (m *Manager) Load(ctx context.Context) []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Debug("loading history failed", "err", err)
		items = nil
	}
	if len(items) > m.limit {
		items = items[:m.limit]
	}
	m.items = items
	return slices.Clone(m.items)
}

// Items returns a copy of the current list, most recent first.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.items)
}

// Add records text. It returns the ID of an existing entry with the same text,
// or 0 when the text was added (or ignored as blank).
func (m *Manager) Add(ctx context.Context, text string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return 0
	}
	res := Add(m.items, text, m.limit, m.now())
	if res.DuplicateID != 0 {
		return res.DuplicateID
	}
	m.items = res.Items
	m.save(ctx)
	return 0
}

// Remove deletes the entry with the given ID.
func (m *Manager) Remove(ctx context.Context, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = Remove(m.items, id)
	m.save(ctx)
}

// Clear deletes every entry.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.save(ctx)
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

func (m *Manager) save(ctx context.Context) {
	if err := m.store.Save(ctx, m.items); err != nil {
		m.logger.Debug("saving history failed", "err", err, "items", len(m.items))
	}
}
