package store

import (
	"context"
	"sync"
	"time"

	"priceai_back_end/internal/models"
)

// MemoryStore garde les documents utilisateur en mémoire. Il sert de mode
// démo quand aucun cluster ScyllaDB n'est configuré, et de doublure dans les
// tests. Mêmes sémantiques que ScyllaStore : mutations par document entier,
// update composé du checkout indivisible (sous le même verrou).
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*models.User)}
}

// Put insère ou remplace un document (seed des tests et du mode démo)
func (m *MemoryStore) Put(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := cloneUser(&user)
	m.users[user.ID] = u
}

func (m *MemoryStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(user), nil
}

func (m *MemoryStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, *cloneUser(u))
	}
	return users, nil
}

func (m *MemoryStore) SaveCart(_ context.Context, userID string, cart []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Cart = append([]models.Product(nil), cart...)
	user.LastActive = time.Now().UTC().Format(time.RFC3339)
	return nil
}

func (m *MemoryStore) AppendOrderAndClearCart(_ context.Context, userID string, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Orders = append(user.Orders, order)
	user.Cart = nil
	user.LastActive = time.Now().UTC().Format(time.RFC3339)
	return nil
}

func (m *MemoryStore) AppendSearch(_ context.Context, userID string, entry models.SearchEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.SearchHistory = append(user.SearchHistory, entry)
	user.LastActive = time.Now().UTC().Format(time.RFC3339)
	return nil
}

func (m *MemoryStore) DeleteUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, userID)
	return nil
}

// cloneUser copie le document pour que les appelants ne partagent jamais les
// slices internes du store
func cloneUser(u *models.User) *models.User {
	clone := *u
	clone.Cart = append([]models.Product(nil), u.Cart...)
	clone.Orders = make([]models.Order, 0, len(u.Orders))
	for _, o := range u.Orders {
		oc := o
		oc.Items = append([]models.Product(nil), o.Items...)
		clone.Orders = append(clone.Orders, oc)
	}
	clone.SearchHistory = append([]models.SearchEntry(nil), u.SearchHistory...)
	return &clone
}
