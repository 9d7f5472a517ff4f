package store

import (
	"context"
	"encoding/json"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

const cartKeyPrefix = "carrinho:"

// CartStore keeps one persisted cart per customer. Every mutation
// re-serializes the whole collection synchronously; there is no batching.
type CartStore struct {
	kv KV
}

func NewCartStore(kv KV) *CartStore {
	return &CartStore{kv: kv}
}

func cartKey(customerID string) string {
	return cartKeyPrefix + customerID
}

// Load returns the persisted cart. A malformed blob is discarded silently
// and the cart resets to empty.
func (s *CartStore) Load(ctx context.Context, customerID string) []models.CartItem {
	blob, ok, err := s.kv.Get(ctx, cartKey(customerID))
	if err != nil || !ok {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return []models.CartItem{}
	}
	return items
}

// Toggle flips membership of (id, kind) and persists the result, returning
// the new cart contents.
func (s *CartStore) Toggle(ctx context.Context, customerID string, item models.CartItem) ([]models.CartItem, error) {
	items := s.Load(ctx, customerID)

	next := make([]models.CartItem, 0, len(items)+1)
	removed := false
	for _, it := range items {
		if it.ID == item.ID && it.Kind == item.Kind {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		next = append(next, item)
	}

	if err := s.save(ctx, customerID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *CartStore) save(ctx context.Context, customerID string, items []models.CartItem) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, cartKey(customerID), string(blob))
}

func (s *CartStore) Clear(ctx context.Context, customerID string) error {
	return s.kv.Del(ctx, cartKey(customerID))
}
