// Package search interroge l'agrégateur de prix externe et enregistre
// l'historique de recherche de l'utilisateur.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"priceai_back_end/internal/models"
)

// Client encapsule l'API de recherche externe : GET {base}/search/{query} →
// {results: [Product]}. Boîte noire : une réponse non-2xx ou un corps
// illisible vaut « aucun résultat », jamais une erreur fatale pour la
// session.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Search interroge l'agrégateur. L'erreur n'est renvoyée que pour une panne
// transport (timeout, DNS...) : l'appelant peut la traiter comme transitoire.
func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/search/%s", c.BaseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("⚠️ Agrégateur de recherche: statut %d pour %q — aucun résultat", res.StatusCode, query)
		return []models.Product{}, nil
	}

	var body struct {
		Results []models.Product `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("⚠️ Agrégateur de recherche: corps illisible pour %q — aucun résultat: %v", query, err)
		return []models.Product{}, nil
	}

	if body.Results == nil {
		return []models.Product{}, nil
	}
	return body.Results, nil
}
