package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"priceai_back_end/internal/activity"
	"priceai_back_end/internal/services"
	"priceai_back_end/internal/store"
	"priceai_back_end/internal/utils"
)

// Handler expose la console opérateur : liste des utilisateurs, activité,
// ban. Fines passerelles vers ActivityAggregator.
type Handler struct {
	activities *activity.Service
}

func NewHandler(activities *activity.Service) *Handler {
	return &Handler{activities: activities}
}

//
// 👥 GET /api/admin/users
//
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.activities.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	// Projection légère pour la table de la console
	type row struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		LastActive string `json:"lastActive,omitempty"`
	}
	rows := make([]row, 0, len(users))
	for _, u := range users {
		rows = append(rows, row{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, LastActive: u.LastActive})
	}

	c.JSON(http.StatusOK, gin.H{"users": rows, "total": len(rows)})
}

//
// 📊 GET /api/admin/users/:id/activity
//
func (h *Handler) ViewActivity(c *gin.Context) {
	userID := c.Param("id")

	summary, err := h.activities.Summarize(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	utils.LogAction(c, utils.ACTION_ACTIVITY_VIEW, utils.RESOURCE_USER, userID)

	c.JSON(http.StatusOK, summary)
}

//
// 🔨 DELETE /api/admin/users/:id
//
// Ban = suppression irréversible du document complet. La confirmation est
// l'affaire de la console, pas du moteur.
func (h *Handler) BanUser(c *gin.Context) {
	userID := c.Param("id")

	err := h.activities.Ban(c.Request.Context(), userID)
	switch {
	case errors.Is(err, activity.ErrPermissionDenied):
		utils.LogFailedAction(c, utils.ACTION_USER_BAN, utils.RESOURCE_USER, userID, err.Error())
		c.JSON(http.StatusForbidden, gin.H{"error": "Impossible de bannir un administrateur"})
		return
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	utils.LogAction(c, utils.ACTION_USER_BAN, utils.RESOURCE_USER, userID)
	log.Printf("🔨 Utilisateur %s banni par %s", userID, c.GetString("user_id"))

	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur banni"})
}

//
// 📈 GET /api/admin/searches/top
//
func (h *Handler) TopSearches(c *gin.Context) {
	terms, err := services.TopSearchTerms(10)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Analytique indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"terms": terms})
}
