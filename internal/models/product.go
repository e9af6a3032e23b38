package models

// Product est un résultat de recherche renvoyé par l'agrégateur de prix.
// Immuable une fois récupéré : Price reste la chaîne brute du marchand
// (symbole monétaire et séparateurs inclus), DisplayPrice est optionnel.
type Product struct {
	Name         string `json:"name"`
	Price        string `json:"price"`
	DisplayPrice string `json:"displayPrice,omitempty"`
	Source       string `json:"source"`
	Link         string `json:"link"`
	Image        string `json:"image"`
}
