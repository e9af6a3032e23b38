package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// SearchAPIURL renvoie la base de l'agrégateur de recherche externe
func SearchAPIURL() string {
	if url := os.Getenv("SEARCH_API_URL"); url != "" {
		return url
	}
	return "https://price-ai.onrender.com"
}

// OrderIDUnique active le contrôle d'unicité des ids de commande par
// utilisateur. Désactivé par défaut : le comportement historique ne vérifie
// pas les collisions.
func OrderIDUnique() bool {
	return os.Getenv("ORDER_ID_UNIQUE") == "true"
}

// SettlementDelay renvoie le délai du règlement simulé (3 s par défaut)
func SettlementDelay() time.Duration {
	if raw := os.Getenv("SETTLEMENT_DELAY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("⚠️ SETTLEMENT_DELAY_MS invalide (%q), délai par défaut", raw)
	}
	return 3 * time.Second
}
