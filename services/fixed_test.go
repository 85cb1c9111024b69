package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DavidRCh56/prisma-api/models"

	"github.com/shopspring/decimal"
)

func TestFixedItemCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixedItemService(db)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.CreateFixedItemRequest{
		Amount:      decimal.NewFromInt(700),
		Category:    "Vivienda",
		Description: "Rent",
		Type:        "expense",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != item.ID || list[0].Description != "Rent" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty fixed item list, got %d", len(list))
	}
}

func TestApplyFixedItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixedItemService(db)
	txSvc := NewTransactionService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateFixedItemRequest{
		Amount:      decimal.NewFromInt(100),
		Category:    "Vivienda",
		Description: "Rent",
		Type:        "expense",
	})
	if err != nil {
		t.Fatalf("create fixed item: %v", err)
	}

	if err := svc.Apply(ctx, "2024-05"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	list, err := txSvc.List(ctx)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 generated transaction, got %d", len(list))
	}
	got := list[0]
	if got.Date != "2024-05-01" {
		t.Errorf("expected date 2024-05-01, got %q", got.Date)
	}
	if got.Description != "[Fijo] Rent" {
		t.Errorf("expected marked description, got %q", got.Description)
	}
	if got.Category != "Vivienda" || got.Type != "expense" || !got.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("fixed item fields not copied: %+v", got)
	}
}

func TestApplyFixedItemsTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixedItemService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateFixedItemRequest{
		Amount:   decimal.NewFromInt(30),
		Category: "Suscripciones",
		Type:     "expense",
	})
	if err != nil {
		t.Fatalf("create fixed item: %v", err)
	}

	if err := svc.Apply(ctx, "2024-05"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	before := countTransactions(t, db)

	err = svc.Apply(ctx, "2024-05")
	if !errors.Is(err, ErrFixedAlreadyApplied) {
		t.Fatalf("expected ErrFixedAlreadyApplied, got %v", err)
	}
	if n := countTransactions(t, db); n != before {
		t.Fatalf("second apply created transactions: %d -> %d", before, n)
	}

	// A different month applies cleanly.
	if err := svc.Apply(ctx, "2024-06"); err != nil {
		t.Fatalf("apply other month: %v", err)
	}
}

func TestApplyGuardIgnoresManualTransactions(t *testing.T) {
	db := newTestDB(t)
	svc := NewFixedItemService(db)
	txSvc := NewTransactionService(db)
	ctx := context.Background()

	// A regular transaction in the month must not trip the guard.
	mustCreateTransaction(t, txSvc, "10", "Comida", "2024-05-12", "expense")

	if err := svc.Apply(ctx, "2024-05"); err != nil {
		t.Fatalf("apply with unrelated transactions present: %v", err)
	}
}
