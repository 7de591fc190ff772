package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"umusanzu/internal/modules/ledger/domain"
	ledgerout "umusanzu/internal/modules/ledger/port/out"
)

// Ledger is the per-contributor record of already-submitted phrases, one
// durable string set per category. The physical value is an ordered JSON
// string array; semantically it is a set.
type Ledger struct {
	store ledgerout.Store
}

func NewLedger(store ledgerout.Store) *Ledger {
	return &Ledger{store: store}
}

// Load returns the persisted set for a category. A missing key, a store read
// failure, or a malformed payload all degrade to the empty set: losing the
// ledger only means a contributor may see a phrase again, which beats
// refusing to collect at all.
func (l *Ledger) Load(ctx context.Context, category domain.Category) map[string]struct{} {
	raw, ok, err := l.store.Get(ctx, category.Key())
	if err != nil || !ok {
		return map[string]struct{}{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Record unions items into the category set and persists the result
// synchronously. Exact string match, no normalization. Idempotent.
func (l *Ledger) Record(ctx context.Context, category domain.Category, items []string) (map[string]struct{}, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown ledger category %q", category)
	}
	set := l.Load(ctx, category)
	for _, item := range items {
		set[item] = struct{}{}
	}
	ordered := make([]string, 0, len(set))
	for item := range set {
		ordered = append(ordered, item)
	}
	sort.Strings(ordered)
	payload, err := json.Marshal(ordered)
	if err != nil {
		return nil, fmt.Errorf("encode ledger %s: %w", category, err)
	}
	if err := l.store.Set(ctx, category.Key(), string(payload)); err != nil {
		return nil, fmt.Errorf("persist ledger %s: %w", category, err)
	}
	return set, nil
}

// Clear removes the category's persisted key entirely. Explicit reset only.
func (l *Ledger) Clear(ctx context.Context, category domain.Category) error {
	if err := l.store.Remove(ctx, category.Key()); err != nil {
		return fmt.Errorf("clear ledger %s: %w", category, err)
	}
	return nil
}
