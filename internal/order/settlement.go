package order

import (
	"context"
	"errors"
	"log"
	"time"
)

// ErrSettlementFailed : le règlement externe a échoué. Terminal pour la
// tentative de checkout uniquement, aucune écriture n'a eu lieu.
var ErrSettlementFailed = errors.New("règlement du paiement refusé")

// Settler est le collaborateur externe de règlement : il reçoit (méthode,
// total), met plusieurs secondes, et ne touche jamais au document.
type Settler interface {
	Settle(ctx context.Context, method string, total float64) error
}

// SimulatedSettler simule la passerelle de paiement : un délai (3 s par
// défaut, comme le temps de traitement affiché au client) puis succès.
// Annulation côté client pendant le délai = aucune écriture, le panier est
// intact.
type SimulatedSettler struct {
	Delay time.Duration
}

func (s SimulatedSettler) Settle(ctx context.Context, method string, total float64) error {
	delay := s.Delay
	if delay <= 0 {
		delay = 3 * time.Second
	}

	log.Printf("💳 Règlement simulé (%s, %.2f) en cours...", method, total)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}

	log.Printf("✅ Règlement simulé accepté (%s, %.2f)", method, total)
	return nil
}
