package cart

import (
	"strconv"
	"strings"
)

// ParsePrice extrait un montant d'une chaîne de prix brute ("₹70,000",
// "Rs. 1499.50"...) en ne gardant que chiffres et point décimal. Heuristique
// volontairement isolée ici : elle est perdante sur certains séparateurs de
// locale et pourra être remplacée sans toucher les appelants.
//
// Une chaîne illisible vaut 0 : un prix malformé ne bloque ni un affichage
// de total ni un checkout.
func ParsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
