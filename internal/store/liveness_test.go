package store

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/models"
)

type fakeChecker struct {
	existsFn func(ctx context.Context, customerID string) bool
}

func (f fakeChecker) CustomerExists(ctx context.Context, customerID string) bool {
	if f.existsFn == nil {
		return true
	}
	return f.existsFn(ctx, customerID)
}

func TestSweepRemovesDeletedCustomers(t *testing.T) {
	ctx := context.Background()
	customers := NewCustomerStore(NewMemoryKV())
	customers.Save(ctx, models.Customer{ID: "alive"})
	customers.Save(ctx, models.Customer{ID: "deleted"})

	checker := fakeChecker{existsFn: func(ctx context.Context, id string) bool {
		return id != "deleted"
	}}

	NewLivenessSweeper(customers, checker, zap.NewNop()).Sweep(ctx)

	if _, ok := customers.Load(ctx, "alive"); !ok {
		t.Fatal("existing customer was logged out")
	}
	if _, ok := customers.Load(ctx, "deleted"); ok {
		t.Fatal("deleted customer still has a session")
	}
}

func TestSweepKeepsEveryoneWhenCheckerFailsOpen(t *testing.T) {
	ctx := context.Background()
	customers := NewCustomerStore(NewMemoryKV())
	customers.Save(ctx, models.Customer{ID: "c1"})
	customers.Save(ctx, models.Customer{ID: "c2"})

	NewLivenessSweeper(customers, fakeChecker{}, zap.NewNop()).Sweep(ctx)

	ids, err := customers.ActiveIDs(ctx)
	if err != nil {
		t.Fatalf("active ids: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 sessions, got %v", ids)
	}
}

func TestCustomerStoreNeverPersistsPasswordHash(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	customers := NewCustomerStore(kv)

	customers.Save(ctx, models.Customer{ID: "c1", FullName: "João", PasswordHash: "$2a$10$abc"})

	blob, ok, _ := kv.Get(ctx, customerKey("c1"))
	if !ok {
		t.Fatal("session not saved")
	}
	if strings.Contains(blob, "$2a$10$abc") {
		t.Fatal("password hash leaked into the session blob")
	}

	loaded, ok := customers.Load(ctx, "c1")
	if !ok || loaded.PasswordHash != "" {
		t.Fatalf("expected sanitized customer, got %+v", loaded)
	}
}

func TestCustomerStoreDropsMalformedBlob(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	kv.Set(ctx, customerKey("c1"), "][")

	customers := NewCustomerStore(kv)
	if _, ok := customers.Load(ctx, "c1"); ok {
		t.Fatal("malformed session treated as valid")
	}
	if _, ok, _ := kv.Get(ctx, customerKey("c1")); ok {
		t.Fatal("malformed blob should be deleted")
	}
}
