package models

// Méthodes de paiement acceptées au checkout
const (
	MethodCard = "card"
	MethodUPI  = "upi"
	MethodCOD  = "cod"
)

// Order est un instantané immuable du panier au moment du checkout.
// Items est une copie : le panier peut être vidé ou modifié ensuite sans
// toucher à la commande.
type Order struct {
	ID     string    `json:"id"`
	Date   string    `json:"date"` // ISO-8601
	Items  []Product `json:"items"`
	Total  float64   `json:"total"`
	Method string    `json:"method"`
}

// ValidMethod vérifie qu'une méthode de paiement est acceptée
func ValidMethod(m string) bool {
	return m == MethodCard || m == MethodUPI || m == MethodCOD
}
