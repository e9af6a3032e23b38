package cache

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"priceai_back_end/internal/database"
	"priceai_back_end/internal/models"
)

const SearchCacheTTL = 10 * time.Minute

// searchKey normalise la clé de cache d'une requête de recherche
func searchKey(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}

// GetSearchResults récupère des résultats de recherche depuis Redis.
// Sans Redis configuré, cache miss systématique.
func GetSearchResults(ctx context.Context, query string) ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, searchKey(query)).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var results []models.Product
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return nil, false
	}
	return results, true
}

// SetSearchResults met en cache les résultats d'une recherche (10 minutes)
func SetSearchResults(ctx context.Context, query string, results []models.Product) {
	if database.Redis == nil {
		return
	}

	data, _ := json.Marshal(results)
	if err := database.Redis.Set(ctx, searchKey(query), data, SearchCacheTTL).Err(); err != nil {
		log.Printf("⚠️ Échec mise en cache recherche %q: %v", query, err)
	}
}

// PublishCartEvent notifie les onglets ouverts d'un changement de panier
// (canal cart:<uid>, sync temps réel côté client)
func PublishCartEvent(ctx context.Context, userID, event string) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Publish(ctx, "cart:"+userID, event).Err(); err != nil {
		log.Printf("⚠️ Échec publication événement panier pour %s: %v", userID, err)
	}
}
