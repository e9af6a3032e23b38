package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

func newTestService(t *testing.T, seed models.User) (*Service, *store.MemoryStore) {
	t.Helper()
	m := store.NewMemoryStore()
	m.Put(seed)
	return NewService(m), m
}

func iphone() models.Product {
	return models.Product{
		Source: "Amazon",
		Name:   "iPhone 15",
		Price:  "₹70,000",
		Link:   "https://amazon.in/iphone-15",
		Image:  "https://images.amazon.in/iphone-15.jpg",
	}
}

func TestAddAppendsWithoutDedup(t *testing.T) {
	svc, _ := newTestService(t, models.User{ID: "u1"})
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", iphone())
	require.NoError(t, err)
	newCart, err := svc.Add(ctx, "u1", iphone())
	require.NoError(t, err)

	// Deux exemplaires = deux entrées répétées, l'ordre d'insertion est conservé
	assert.Len(t, newCart, 2)
}

func TestRemoveMatchesByComputedKey(t *testing.T) {
	svc, _ := newTestService(t, models.User{ID: "u1"})
	ctx := context.Background()

	original := iphone()
	refetched := iphone()
	refetched.Image = "https://cdn.amazon.in/mirror-2/iphone-15.jpg"
	refetched.Link = "https://amazon.in/iphone-15?ref=serp"

	_, err := svc.Add(ctx, "u1", original)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", refetched)
	require.NoError(t, err)

	// La suppression passe par la clé d'identité : les deux copies tombent,
	// même si les champs accessoires divergent
	newCart, err := svc.Remove(ctx, "u1", original)
	require.NoError(t, err)
	assert.Empty(t, newCart)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, models.User{ID: "u1"})
	ctx := context.Background()

	other := models.Product{Source: "Flipkart", Name: "Clavier", Price: "₹1,500"}
	_, err := svc.Add(ctx, "u1", other)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", iphone())
	require.NoError(t, err)

	first, err := svc.Remove(ctx, "u1", iphone())
	require.NoError(t, err)
	second, err := svc.Remove(ctx, "u1", iphone())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []models.Product{other}, second)
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	existing := models.Product{Source: "Flipkart", Name: "Clavier", Price: "₹1,500"}
	svc, _ := newTestService(t, models.User{ID: "u1", Cart: []models.Product{existing}})
	ctx := context.Background()

	before, err := svc.Read(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Add(ctx, "u1", iphone())
	require.NoError(t, err)
	after, err := svc.Remove(ctx, "u1", iphone())
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestReadAbsentCartIsEmpty(t *testing.T) {
	svc, _ := newTestService(t, models.User{ID: "u1"})

	items, err := svc.Read(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartOperationsOnUnknownUser(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Read(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.Add(ctx, "ghost", iphone())
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.Remove(ctx, "ghost", iphone())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
