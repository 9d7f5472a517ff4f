package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

const customerKeyPrefix = "cliente:"

// CustomerStore caches the logged-in customer record across requests, the
// server-side counterpart of the app's persisted session.
type CustomerStore struct {
	kv KV
}

func NewCustomerStore(kv KV) *CustomerStore {
	return &CustomerStore{kv: kv}
}

func customerKey(id string) string {
	return customerKeyPrefix + id
}

func (s *CustomerStore) Save(ctx context.Context, customer models.Customer) error {
	blob, err := json.Marshal(customer.Sanitized())
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, customerKey(customer.ID), string(blob))
}

// Load returns the cached record, or false when absent. A malformed blob
// is dropped and treated as absent.
func (s *CustomerStore) Load(ctx context.Context, id string) (models.Customer, bool) {
	blob, ok, err := s.kv.Get(ctx, customerKey(id))
	if err != nil || !ok {
		return models.Customer{}, false
	}

	var customer models.Customer
	if err := json.Unmarshal([]byte(blob), &customer); err != nil {
		_ = s.kv.Del(ctx, customerKey(id))
		return models.Customer{}, false
	}
	return customer, true
}

// Delete logs the customer out of the cached session.
func (s *CustomerStore) Delete(ctx context.Context, id string) error {
	return s.kv.Del(ctx, customerKey(id))
}

// ActiveIDs lists the customer ids with a cached session.
func (s *CustomerStore) ActiveIDs(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx, customerKeyPrefix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, customerKeyPrefix))
	}
	return ids, nil
}
