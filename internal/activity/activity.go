// Package activity reconstruit le résumé d'activité d'un utilisateur pour la
// console opérateur, et porte l'opération de ban.
package activity

import (
	"context"
	"errors"
	"time"

	"priceai_back_end/internal/models"
	"priceai_back_end/internal/store"
)

// ErrPermissionDenied : ban tenté sur un compte administrateur
var ErrPermissionDenied = errors.New("impossible de bannir un administrateur")

const maxRecentSearches = 5

// Formats de date acceptés pour last_active (RFC3339 en priorité, plus
// quelques formes héritées des anciens documents)
var lastActiveLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Service est une projection lecture seule du document utilisateur ; seule
// l'opération Ban écrit (en supprimant le document entier).
type Service struct {
	store store.UserStore
}

func NewService(st store.UserStore) *Service {
	return &Service{store: st}
}

// Summarize projette le document en résumé affichable. Chaque champ se
// dégrade indépendamment vers sa sentinelle : un sous-champ malformé ne fait
// jamais échouer le résumé entier. Seul un document manquant ou un store
// injoignable remonte en erreur.
func (s *Service) Summarize(ctx context.Context, userID string) (models.ActivitySummary, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return models.ActivitySummary{}, err
	}

	return models.ActivitySummary{
		Searches:   recentSearches(user.SearchHistory),
		CartItems:  len(user.Cart),
		LastActive: formatLastActive(user.LastActive),
	}, nil
}

// ListUsers liste tous les documents pour la console opérateur
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Ban supprime irréversiblement le document utilisateur complet. Pas de
// soft-delete, pas de confirmation ici (c'est l'affaire de l'appelant).
// Refusé avec ErrPermissionDenied sur un compte admin : le document reste
// intact, jamais de no-op silencieux.
func (s *Service) Ban(ctx context.Context, userID string) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == "admin" {
		return ErrPermissionDenied
	}
	return s.store.DeleteUser(ctx, userID)
}

// recentSearches renverse l'historique (plus récent d'abord), tronque à 5 et
// normalise chaque entrée vers son terme. Historique vide = une seule entrée
// sentinelle, jamais une séquence vide : l'affichage reste uniforme.
func recentSearches(history []models.SearchEntry) []string {
	terms := make([]string, 0, maxRecentSearches)
	for i := len(history) - 1; i >= 0 && len(terms) < maxRecentSearches; i-- {
		terms = append(terms, history[i].Term)
	}
	if len(terms) == 0 {
		return []string{models.NoHistorySentinel}
	}
	return terms
}

// formatLastActive distingue absent ("Unknown") d'illisible ("Invalid Date") :
// ce sont deux pannes différentes, pas une seule
func formatLastActive(raw string) string {
	if raw == "" {
		return models.LastActiveUnknown
	}
	for _, layout := range lastActiveLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("02/01/2006 15:04:05")
		}
	}
	return models.LastActiveInvalid
}
