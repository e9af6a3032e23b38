package search

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"priceai_back_end/internal/cache"
	"priceai_back_end/internal/models"
	"priceai_back_end/internal/services"
	"priceai_back_end/internal/store"
)

// Service orchestre une recherche utilisateur : cache Redis, appel à
// l'agrégateur, enregistrement de l'historique {term, timestamp} dans le
// document utilisateur, et indexation de l'événement pour l'analytique.
// Historique et indexation sont best-effort : leur échec ne prive jamais
// l'utilisateur de ses résultats.
type Service struct {
	client *Client
	store  store.UserStore
}

func NewService(client *Client, st store.UserStore) *Service {
	return &Service{client: client, store: st}
}

func (s *Service) Search(ctx context.Context, userID, query string) ([]models.Product, error) {
	results, hit := cache.GetSearchResults(ctx, query)
	if !hit {
		var err error
		results, err = s.client.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		cache.SetSearchResults(ctx, query, results)
	}

	entry := models.SearchEntry{
		Term:      query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.AppendSearch(ctx, userID, entry); err != nil {
		log.Printf("⚠️ Historique de recherche non enregistré pour %s: %v", userID, err)
	}

	go services.IndexSearchEvent(models.SearchEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Term:      query,
		Results:   len(results),
		Timestamp: entry.Timestamp,
	})

	return results, nil
}
