// Package store définit l'accès au document utilisateur : une ligne par
// utilisateur contenant profil, panier, commandes et historique de recherche.
//
// Le moteur n'ajoute aucune couche compare-and-swap : chaque mutation est un
// unique update de document et les sessions concurrentes d'un même utilisateur
// se résolvent à la granularité last-write-wins du store. Limitation connue,
// pas une garantie implicite.
package store

import (
	"context"
	"errors"

	"priceai_back_end/internal/models"
)

var (
	// ErrNotFound : document utilisateur inexistant. Pour les lecteurs c'est
	// « pas de panier / pas d'historique » ; seul le checkout le traite comme
	// une erreur.
	ErrNotFound = errors.New("utilisateur introuvable")

	// ErrTransient : panne store ou réseau, l'opération complète peut être
	// rejouée sans risque (mutations idempotentes ou atomiques).
	ErrTransient = errors.New("store indisponible")
)

// UserStore expose les primitives dont le moteur a besoin : lecture par id,
// réécriture du panier, update composé atomique du checkout, append
// d'historique, suppression. SaveCart, AppendOrderAndClearCart et
// AppendSearch mettent aussi à jour last_active.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// SaveCart réécrit la séquence complète du panier en un seul update.
	SaveCart(ctx context.Context, userID string, cart []models.Product) error

	// AppendOrderAndClearCart ajoute la commande à orders et vide cart dans
	// LA MÊME mutation de document. C'est la seule écriture du checkout : un
	// crash ne peut pas laisser la commande sans vidage du panier côté
	// moteur. La gestion d'une écriture partielle côté store reste le
	// contrat du store lui-même, le moteur ne peut pas le renforcer.
	AppendOrderAndClearCart(ctx context.Context, userID string, order models.Order) error

	AppendSearch(ctx context.Context, userID string, entry models.SearchEntry) error
	DeleteUser(ctx context.Context, userID string) error
}
