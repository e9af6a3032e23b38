package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"priceai_back_end/internal/cart"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/order"
	"priceai_back_end/internal/store"
	"priceai_back_end/internal/utils"
)

// OrderHandler expose le checkout et l'historique de commandes
type OrderHandler struct {
	orders *order.Service
	carts  *cart.Service
}

func NewOrderHandler(orders *order.Service, carts *cart.Service) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

//
// 💳 POST /api/checkout
//
// Le contexte de la requête porte l'annulation : un client qui abandonne
// pendant le règlement n'écrit rien, le panier reste intact.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !models.ValidMethod(input.Method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Méthode de paiement invalide"})
		return
	}

	newOrder, err := h.orders.Checkout(c.Request.Context(), userID, input.Method)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		case errors.Is(err, order.ErrSettlementFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Paiement refusé, aucune commande créée"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		}
		return
	}

	log.Printf("✅ Commande #%s créée pour %s (%.2f, %s)", newOrder.ID, userID, newOrder.Total, newOrder.Method)

	// Confirmation par e-mail, sans bloquer la réponse
	go utils.SendOrderConfirmation(c.GetString("email"), newOrder)

	c.JSON(http.StatusOK, gin.H{
		"message": "Paiement accepté",
		"order":   newOrder,
	})
}

//
// 📦 GET /api/orders
//
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	orders, err := h.orders.History(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"orders": []models.Order{}})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 📱 GET /api/checkout/upi/qr
//
// Génère le QR de paiement UPI du panier courant (affiché sur l'onglet UPI
// de la page de checkout)
func (h *OrderHandler) UPIQRCode(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.carts.Read(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store indisponible, réessayez"})
		return
	}

	payload := fmt.Sprintf("upi://pay?pa=priceai@upi&pn=PriceAI&am=%.2f&cu=INR", cart.ComputeTotal(items))
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
