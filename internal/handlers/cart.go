package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"priceai_back_end/internal/cache"
	"priceai_back_end/internal/cart"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

// CartHandler expose le panier du document utilisateur
type CartHandler struct {
	carts *cart.Service
}

func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

//
// 🛒 GET /api/cart
//
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.carts.Read(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		// Document absent = pas de panier, pas une erreur
		c.JSON(http.StatusOK, gin.H{"items": []models.Product{}, "total": 0, "count": 0})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": cart.ComputeTotal(items),
		"count": len(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil || product.Name == "" || product.Source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide"})
		return
	}

	items, err := h.carts.Add(c.Request.Context(), userID, product)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	cache.PublishCartEvent(c.Request.Context(), userID, "updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
		"total":   cart.ComputeTotal(items),
		"count":   len(items),
	})
}

//
// ❌ POST /api/cart/remove
//
// Le produit complet est envoyé dans le corps : la suppression se fait par
// clé d'identité calculée, pas par id opaque.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produit invalide"})
		return
	}

	items, err := h.carts.Remove(c.Request.Context(), userID, product)
	if err != nil {
		h.writeCartError(c, err)
		return
	}

	cache.PublishCartEvent(c.Request.Context(), userID, "updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
		"total":   cart.ComputeTotal(items),
		"count":   len(items),
	})
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
}
