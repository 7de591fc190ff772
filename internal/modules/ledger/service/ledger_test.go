package service_test

import (
	"context"
	"reflect"
	"testing"

	"umusanzu/internal/modules/ledger/domain"
	"umusanzu/internal/modules/ledger/service"
)

type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore { return &fakeStore{values: map[string]string{}} }

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestLoadMissingKeyIsEmptySet(t *testing.T) {
	t.Parallel()
	ledger := service.NewLedger(newFakeStore())
	set := ledger.Load(context.Background(), domain.CategoryKirundi)
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set)
	}
}

func TestLoadMalformedPayloadIsEmptySet(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	store.values[domain.CategoryKirundi.Key()] = "{not json["
	ledger := service.NewLedger(store)
	if set := ledger.Load(context.Background(), domain.CategoryKirundi); len(set) != 0 {
		t.Fatalf("malformed payload must degrade to empty set, got %v", set)
	}
}

func TestRecordIsIdempotentAndSetSemantics(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	ledger := service.NewLedger(store)
	ctx := context.Background()

	first, err := ledger.Record(ctx, domain.CategoryKirundi, []string{"Muraho", "Ego", "Muraho"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	persisted := store.values[domain.CategoryKirundi.Key()]

	second, err := ledger.Record(ctx, domain.CategoryKirundi, []string{"Muraho", "Ego"})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("record not idempotent: %v vs %v", first, second)
	}
	if store.values[domain.CategoryKirundi.Key()] != persisted {
		t.Fatalf("persisted payload changed on idempotent record")
	}
	if len(second) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(second))
	}
}

func TestCategoriesAreIndependent(t *testing.T) {
	t.Parallel()
	ledger := service.NewLedger(newFakeStore())
	ctx := context.Background()
	if _, err := ledger.Record(ctx, domain.CategoryKirundi, []string{"Muraho"}); err != nil {
		t.Fatalf("record kirundi: %v", err)
	}
	if set := ledger.Load(ctx, domain.CategoryFrench); len(set) != 0 {
		t.Fatalf("french category must stay empty, got %v", set)
	}
}

func TestClearRemovesKey(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	ledger := service.NewLedger(store)
	ctx := context.Background()
	if _, err := ledger.Record(ctx, domain.CategoryFrench, []string{"Bonjour"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := ledger.Clear(ctx, domain.CategoryFrench); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.values[domain.CategoryFrench.Key()]; ok {
		t.Fatalf("key must be removed")
	}
	if set := ledger.Load(ctx, domain.CategoryFrench); len(set) != 0 {
		t.Fatalf("expected empty set after clear, got %v", set)
	}
}

func TestRecordRejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	ledger := service.NewLedger(newFakeStore())
	if _, err := ledger.Record(context.Background(), domain.Category("swahili"), []string{"x"}); err == nil {
		t.Fatalf("unknown category must be rejected")
	}
}
