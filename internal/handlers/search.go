package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"priceai_back_end/internal/search"
)

// SearchHandler proxifie l'agrégateur de prix externe
type SearchHandler struct {
	searches *search.Service
}

func NewSearchHandler(searches *search.Service) *SearchHandler {
	return &SearchHandler{searches: searches}
}

//
// 🔍 GET /api/search/:query
//
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Param("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête vide"})
		return
	}

	results, err := h.searches.Search(c.Request.Context(), c.GetString("user_id"), query)
	if err != nil {
		// Panne transport vers l'agrégateur : transitoire pour l'appelant
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Agrégateur de recherche injoignable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
