// Package cart gère la liste autoritaire des articles du panier d'un
// utilisateur, dans son document partagé.
package cart

import (
	"context"

	"priceai_back_end/internal/identity"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

// Service mute le panier via le store de documents. Aucun état partagé en
// mémoire : chaque opération est ré-entrante et tient dans un seul update de
// document (pas d'écriture partielle possible côté moteur). Pas de retry ici,
// c'est l'affaire de l'appelant.
type Service struct {
	store store.UserStore
}

func NewService(st store.UserStore) *Service {
	return &Service{store: st}
}

// Add ajoute le produit en fin de panier. Pas de déduplication à l'insertion :
// deux exemplaires du même article sont deux entrées répétées, l'unicité ne
// joue qu'à la suppression via la clé d'identité.
func (s *Service) Add(ctx context.Context, userID string, p models.Product) ([]models.Product, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	newCart := append(user.Cart, p)
	if err := s.store.SaveCart(ctx, userID, newCart); err != nil {
		return nil, err
	}
	return newCart, nil
}

// Remove supprime TOUTES les entrées dont la clé calculée correspond, pas
// seulement la valeur littérale passée : deux copies « identiques » du même
// produit peuvent différer sur des champs accessoires (image re-fetchée), la
// suppression par valeur du store raterait l'une des deux. On matérialise
// donc le panier complet, on filtre par clé, on réécrit la séquence entière.
// Idempotent : retirer une clé déjà absente est un no-op.
func (s *Service) Remove(ctx context.Context, userID string, p models.Product) ([]models.Product, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := identity.ComputeKey(p)
	newCart := make([]models.Product, 0, len(user.Cart))
	for _, item := range user.Cart {
		if identity.ComputeKey(item) != target {
			newCart = append(newCart, item)
		}
	}

	if err := s.store.SaveCart(ctx, userID, newCart); err != nil {
		return nil, err
	}
	return newCart, nil
}

// Read renvoie le panier persisté ; champ absent = séquence vide
func (s *Service) Read(ctx context.Context, userID string) ([]models.Product, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return []models.Product{}, nil
	}
	return user.Cart, nil
}

// ComputeTotal somme les prix parsés du panier. Une entrée illisible compte
// pour 0, jamais d'échec global.
func ComputeTotal(items []models.Product) float64 {
	var total float64
	for _, item := range items {
		total += ParsePrice(item.Price)
	}
	return total
}
