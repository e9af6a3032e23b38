package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceai_back_end/internal/activity"
	"priceai_back_end/internal/middleware"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

func asRole(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", userID+"@priceai.dev")
		c.Set("role", role)
		c.Next()
	}
}

func newAdminRouter(m *store.MemoryStore, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(activity.NewService(m))

	grp := r.Group("/api/admin", asRole("boss", role), middleware.RequireAdmin)
	grp.GET("/users", h.ListUsers)
	grp.GET("/users/:id/activity", h.ViewActivity)
	grp.DELETE("/users/:id", h.BanUser)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r := newAdminRouter(store.NewMemoryStore(), "user")

	w := do(r, http.MethodGet, "/api/admin/users")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUsers(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{ID: "u1", Name: "Asha", Email: "asha@test.dev", Role: "user"})
	m.Put(models.User{ID: "boss", Name: "Boss", Email: "boss@priceai.dev", Role: "admin"})
	r := newAdminRouter(m, "admin")

	w := do(r, http.MethodGet, "/api/admin/users")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestViewActivity(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{
		ID: "u1",
		SearchHistory: []models.SearchEntry{
			{Term: "iphone"}, {Term: "laptop"},
		},
		Cart: []models.Product{{Source: "Amazon", Name: "iPhone 15", Price: "₹70,000"}},
	})
	r := newAdminRouter(m, "admin")

	w := do(r, http.MethodGet, "/api/admin/users/u1/activity")
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.ActivitySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, []string{"laptop", "iphone"}, summary.Searches)
	assert.Equal(t, 1, summary.CartItems)
	assert.Equal(t, models.LastActiveUnknown, summary.LastActive)
}

func TestViewActivityUnknownUser(t *testing.T) {
	r := newAdminRouter(store.NewMemoryStore(), "admin")

	w := do(r, http.MethodGet, "/api/admin/users/ghost/activity")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBanUser(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{ID: "u1", Role: "user"})
	r := newAdminRouter(m, "admin")

	w := do(r, http.MethodDelete, "/api/admin/users/u1")
	require.Equal(t, http.StatusOK, w.Code)

	_, err := m.GetUser(t.Context(), "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBanAdminIsForbidden(t *testing.T) {
	m := store.NewMemoryStore()
	m.Put(models.User{ID: "other-admin", Role: "admin"})
	r := newAdminRouter(m, "admin")

	w := do(r, http.MethodDelete, "/api/admin/users/other-admin")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Le document n'a pas bougé
	_, err := m.GetUser(t.Context(), "other-admin")
	assert.NoError(t, err)
}
