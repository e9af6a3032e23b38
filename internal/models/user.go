package models

import "encoding/json"

// User est le document agrégat d'un utilisateur : profil, panier, commandes
// et historique de recherche vivent dans le même document (une ligne par
// utilisateur côté ScyllaDB). Les champs absents en base se lisent comme
// des séquences vides.
type User struct {
	ID            string        `json:"user_id"`
	Name          string        `json:"name,omitempty"`
	Email         string        `json:"email"`
	Role          string        `json:"role,omitempty"`
	Cart          []Product     `json:"cart"`
	Orders        []Order       `json:"orders"`
	SearchHistory []SearchEntry `json:"searchHistory"`
	LastActive    string        `json:"lastActive,omitempty"` // ISO-8601, peut être vide ou illisible
}

// SearchEntry est une entrée d'historique de recherche. Les anciens documents
// stockent un simple terme ("iphone"), les nouveaux un objet {term, timestamp} :
// les deux formes doivent être acceptées à la lecture.
type SearchEntry struct {
	Term      string `json:"term"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DecodeSearchEntry accepte les deux formes persistées d'une entrée
// d'historique : objet JSON {term, timestamp}, chaîne JSON, ou terme brut.
func DecodeSearchEntry(raw string) SearchEntry {
	var entry SearchEntry
	if err := json.Unmarshal([]byte(raw), &entry); err == nil && entry.Term != "" {
		return entry
	}

	var term string
	if err := json.Unmarshal([]byte(raw), &term); err == nil {
		return SearchEntry{Term: term}
	}

	// Forme héritée : le terme est stocké tel quel
	return SearchEntry{Term: raw}
}
