package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

func TestClientSearchParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/iphone%2015", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"iPhone 15","price":"₹70,000","source":"Amazon","link":"https://a.in/x","image":""}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	results, err := client.Search(context.Background(), "iphone 15")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Amazon", results[0].Source)
}

func TestClientSearchNon2xxYieldsNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	results, err := client.Search(context.Background(), "laptop")

	// Non-2xx = « aucun résultat », pas une erreur de session
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClientSearchMalformedBodyYieldsNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": pas-du-json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	results, err := client.Search(context.Background(), "laptop")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestServiceRecordsSearchHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	m := store.NewMemoryStore()
	m.Put(models.User{ID: "u1"})
	svc := NewService(NewClient(srv.URL), m)

	_, err := svc.Search(context.Background(), "u1", "chaussures")
	require.NoError(t, err)

	user, err := m.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, user.SearchHistory, 1)
	assert.Equal(t, "chaussures", user.SearchHistory[0].Term)
	assert.NotEmpty(t, user.SearchHistory[0].Timestamp)
	assert.NotEmpty(t, user.LastActive)
}

func TestServiceSearchSurvivesHistoryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"name":"TV","price":"₹30,000","source":"Flipkart"}]}`))
	}))
	defer srv.Close()

	// Utilisateur inconnu : l'append d'historique échoue, les résultats passent quand même
	svc := NewService(NewClient(srv.URL), store.NewMemoryStore())

	results, err := svc.Search(context.Background(), "ghost", "tv")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
