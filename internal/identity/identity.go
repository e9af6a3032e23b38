// Package identity dérive l'identifiant canonique d'un produit.
//
// Deux résultats de recherche que l'utilisateur perçoit comme « le même
// article, du même marchand, au même prix » doivent produire la même clé,
// même si image, lien ou displayPrice diffèrent entre deux fetchs. Un prix
// différent (même juste de formatage, "1,200" vs "1200") est volontairement
// une autre ligne de panier : on ne normalise pas le prix ici, ça changerait
// la sémantique de déduplication.
package identity

import (
	"strings"
	"unicode"

	"priceai_back_end/internal/models"
)

// ComputeKey concatène (source, name, price) avec un séparateur fixe,
// supprime tous les blancs et passe en minuscules. Fonction totale, stable
// entre redémarrages et sérialisations.
func ComputeKey(p models.Product) string {
	raw := p.Source + "-" + p.Name + "-" + p.Price
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return strings.ToLower(stripped)
}
