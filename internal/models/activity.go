package models

// Valeurs sentinelles du résumé d'activité : chaque champ se dégrade
// indépendamment, le résumé n'échoue jamais en bloc.
const (
	NoHistorySentinel = "No history found"
	LastActiveUnknown = "Unknown"
	LastActiveInvalid = "Invalid Date"
)

// ActivitySummary est la projection lecture seule d'un document utilisateur
// affichée dans la console opérateur.
type ActivitySummary struct {
	Searches   []string `json:"searches"`   // 5 plus récentes, de la plus récente à la plus ancienne
	CartItems  int      `json:"cartItems"`
	LastActive string   `json:"lastActive"`
}

// SearchEvent est l'événement de recherche indexé dans Elasticsearch pour
// l'analytique opérateur (termes les plus recherchés).
type SearchEvent struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Term      string `json:"term"`
	Results   int    `json:"results"`
	Timestamp string `json:"timestamp"`
}
