package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"

	"priceai_back_end/internal/models"
)

// ScyllaStore persiste le document utilisateur dans une table unique du
// keyspace users :
//
//	CREATE TABLE users (
//	    user_id        text PRIMARY KEY,
//	    name           text,
//	    email          text,
//	    role           text,
//	    cart           list<text>,   -- éléments : Product JSON
//	    orders         list<text>,   -- éléments : Order JSON
//	    search_history list<text>,   -- éléments : terme brut ou SearchEntry JSON
//	    last_active    text
//	);
//
// Toutes les mutations touchent une seule partition : un UPDATE composé
// (orders + cart + last_active) est atomique et isolé côté ScyllaDB, ce qui
// porte la garantie d'atomicité du checkout.
type ScyllaStore struct {
	session *gocql.Session
}

func NewScyllaStore(session *gocql.Session) *ScyllaStore {
	return &ScyllaStore{session: session}
}

func (s *ScyllaStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var (
		name, email, role, lastActive string
		rawCart, rawOrders, rawHist   []string
	)

	err := s.session.Query(`SELECT name, email, role, cart, orders, search_history, last_active
		FROM users WHERE user_id = ?`, userID).WithContext(ctx).
		Scan(&name, &email, &role, &rawCart, &rawOrders, &rawHist, &lastActive)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	return decodeUser(userID, name, email, role, rawCart, rawOrders, rawHist, lastActive), nil
}

func (s *ScyllaStore) ListUsers(ctx context.Context) ([]models.User, error) {
	iter := s.session.Query(`SELECT user_id, name, email, role, cart, orders, search_history, last_active
		FROM users`).WithContext(ctx).Iter()

	var users []models.User
	var (
		userID, name, email, role, lastActive string
		rawCart, rawOrders, rawHist           []string
	)
	for iter.Scan(&userID, &name, &email, &role, &rawCart, &rawOrders, &rawHist, &lastActive) {
		users = append(users, *decodeUser(userID, name, email, role, rawCart, rawOrders, rawHist, lastActive))
		rawCart, rawOrders, rawHist = nil, nil, nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return users, nil
}

// SaveCart réécrit la séquence complète : jamais de suppression par valeur
// côté CQL (cart = cart - ?), qui supprimerait par égalité profonde et
// raterait deux copies du « même » produit avec une image re-fetchée.
func (s *ScyllaStore) SaveCart(ctx context.Context, userID string, cart []models.Product) error {
	encoded := make([]string, 0, len(cart))
	for _, p := range cart {
		data, _ := json.Marshal(p)
		encoded = append(encoded, string(data))
	}

	err := s.session.Query(`UPDATE users SET cart = ?, last_active = ? WHERE user_id = ?`,
		encoded, nowISO(), userID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return nil
}

// AppendOrderAndClearCart : un seul statement CQL, une seule partition.
func (s *ScyllaStore) AppendOrderAndClearCart(ctx context.Context, userID string, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encodage commande: %v", err)
	}

	err = s.session.Query(`UPDATE users SET orders = orders + ?, cart = ?, last_active = ? WHERE user_id = ?`,
		[]string{string(data)}, []string{}, nowISO(), userID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return nil
}

func (s *ScyllaStore) AppendSearch(ctx context.Context, userID string, entry models.SearchEntry) error {
	data, _ := json.Marshal(entry)

	err := s.session.Query(`UPDATE users SET search_history = search_history + ?, last_active = ? WHERE user_id = ?`,
		[]string{string(data)}, nowISO(), userID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return nil
}

func (s *ScyllaStore) DeleteUser(ctx context.Context, userID string) error {
	err := s.session.Query(`DELETE FROM users WHERE user_id = ?`, userID).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return nil
}

// decodeUser reconstruit le document depuis les colonnes list<text>. Un
// élément illisible est ignoré avec un log : un champ malformé ne doit
// jamais faire échouer la lecture du document entier.
func decodeUser(userID, name, email, role string, rawCart, rawOrders, rawHist []string, lastActive string) *models.User {
	user := &models.User{
		ID:         userID,
		Name:       name,
		Email:      email,
		Role:       role,
		LastActive: lastActive,
	}

	for _, raw := range rawCart {
		var p models.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			log.Printf("⚠️ Entrée panier illisible pour %s, ignorée: %v", userID, err)
			continue
		}
		user.Cart = append(user.Cart, p)
	}

	for _, raw := range rawOrders {
		var o models.Order
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			log.Printf("⚠️ Commande illisible pour %s, ignorée: %v", userID, err)
			continue
		}
		user.Orders = append(user.Orders, o)
	}

	for _, raw := range rawHist {
		user.SearchHistory = append(user.SearchHistory, models.DecodeSearchEntry(raw))
	}

	return user
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
