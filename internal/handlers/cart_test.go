package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceai_back_end/internal/cart"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

// asUser simule la session posée par le middleware JWT
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newCartRouter(m *store.MemoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCartHandler(cart.NewService(m))

	api := r.Group("/api", asUser("u1", "user"))
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.POST("/cart/remove", h.RemoveFromCart)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCartAbsentUserYieldsEmptyCart(t *testing.T) {
	r := newCartRouter(store.NewMemoryStore())

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []models.Product `json:"items"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Count)
}

func TestAddThenRemoveOverHTTP(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{ID: "u1"})
	r := newCartRouter(m)

	p := models.Product{Source: "Amazon", Name: "iPhone 15", Price: "₹70,000"}

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", p)
	require.Equal(t, http.StatusOK, w.Code)

	var addResp struct {
		Count int     `json:"count"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))
	assert.Equal(t, 1, addResp.Count)
	assert.Equal(t, float64(70000), addResp.Total)

	w = doJSON(t, r, http.MethodPost, "/api/cart/remove", p)
	require.Equal(t, http.StatusOK, w.Code)

	var removeResp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removeResp))
	assert.Zero(t, removeResp.Count)
}

func TestAddToCartRejectsInvalidProduct(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{ID: "u1"})
	r := newCartRouter(m)

	w := doJSON(t, r, http.MethodPost, "/api/cart/add", map[string]string{"price": "₹70,000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
