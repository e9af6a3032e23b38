// Package order convertit un panier en commande durable : lecture du panier,
// règlement simulé, puis UNE écriture composée (append commande + vidage du
// panier) dans le document utilisateur.
package order

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"priceai_back_end/internal/cart"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

// Service orchestre le checkout. États d'une tentative :
// Started → Charging → Settled | Failed. La seule écriture a lieu en
// Settled ; Charging est long (plusieurs secondes) et ne tient aucun verrou,
// les autres opérations de panier ne sont jamais bloquées.
type Service struct {
	store   store.UserStore
	settler Settler

	// UniqueIDs retire un nouvel id en cas de collision avec une commande
	// existante du même utilisateur. Désactivé par défaut : le comportement
	// historique accepte la (très faible) probabilité de collision des ids
	// à 6 chiffres. ORDER_ID_UNIQUE=true l'active.
	uniqueIDs bool

	now     func() time.Time
	randInt func(n int) int
}

func NewService(st store.UserStore, settler Settler, uniqueIDs bool) *Service {
	return &Service{
		store:     st,
		settler:   settler,
		uniqueIDs: uniqueIDs,
		now:       time.Now,
		randInt:   rand.IntN,
	}
}

// Checkout exécute une tentative de commande pour userID.
//
// Un panier vide est permis (commande à zéro article) : empêcher le checkout
// sans sélection est l'affaire de l'appelant, pas du store. Un utilisateur
// inexistant est en revanche une erreur (store.ErrNotFound).
//
// Exactement-une-fois par tentative : si le règlement échoue ou si le client
// abandonne avant Settled, aucune écriture n'a eu lieu et le panier est
// intact. Après succès, le panier est vide et la commande ajoutée par la
// même mutation.
func (s *Service) Checkout(ctx context.Context, userID, method string) (models.Order, error) {
	if !models.ValidMethod(method) {
		return models.Order{}, fmt.Errorf("méthode de paiement invalide: %q", method)
	}

	// Started : instantané du panier
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}

	items := append([]models.Product(nil), user.Cart...)
	total := cart.ComputeTotal(items)
	orderID := s.generateOrderID(user.Orders)

	// Charging : collaborateur externe, aucun accès au document
	if err := s.settler.Settle(ctx, method, total); err != nil {
		return models.Order{}, err
	}

	// Settled : l'unique écriture du flux
	newOrder := models.Order{
		ID:     orderID,
		Date:   s.now().UTC().Format(time.RFC3339),
		Items:  items,
		Total:  total,
		Method: method,
	}
	if err := s.store.AppendOrderAndClearCart(ctx, userID, newOrder); err != nil {
		return models.Order{}, err
	}

	return newOrder, nil
}

// History renvoie les commandes de l'utilisateur, champ absent = vide
func (s *Service) History(ctx context.Context, userID string) ([]models.Order, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Orders == nil {
		return []models.Order{}, nil
	}
	return user.Orders, nil
}

// generateOrderID tire un id à 6 chiffres, uniforme sur [100000, 999999]
func (s *Service) generateOrderID(existing []models.Order) string {
	for {
		id := fmt.Sprintf("%d", 100000+s.randInt(900000))
		if !s.uniqueIDs || !orderIDExists(existing, id) {
			return id
		}
	}
}

func orderIDExists(orders []models.Order, id string) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
