package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"priceai_back_end/internal/database"
	"priceai_back_end/internal/models"
)

const searchEventsIndex = "search_events"

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexSearchEvent indexe un événement de recherche pour l'analytique
// opérateur. Best-effort : sans Elastic ou en cas d'erreur, on logge et on
// continue, la recherche elle-même n'est jamais impactée.
func IndexSearchEvent(ev models.SearchEvent) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(ev)
	req := esapi.IndexRequest{
		Index:      searchEventsIndex,
		DocumentID: ev.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %q: %s", ev.Term, res.String())
	}
}

//
// --- AGRÉGATION DES TERMES LES PLUS RECHERCHÉS ---
//

// TermCount associe un terme de recherche à son nombre d'occurrences
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TopSearchTerms renvoie les termes les plus recherchés, tous utilisateurs
// confondus, via une agrégation terms sur search_events.
func TopSearchTerms(size int) ([]TermCount, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}
	if size <= 0 {
		size = 10
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"top_terms": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "term.keyword",
					"size":  size,
				},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{searchEventsIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Aggregations struct {
			TopTerms struct {
				Buckets []struct {
					Key      string `json:"key"`
					DocCount int    `json:"doc_count"`
				} `json:"buckets"`
			} `json:"top_terms"`
		} `json:"aggregations"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	results := make([]TermCount, 0, len(r.Aggregations.TopTerms.Buckets))
	for _, bucket := range r.Aggregations.TopTerms.Buckets {
		results = append(results, TermCount{Term: bucket.Key, Count: bucket.DocCount})
	}
	return results, nil
}
