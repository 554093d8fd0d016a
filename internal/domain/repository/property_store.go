// Package repository defines persistence interfaces for the settings domain.
package repository

import "context"

// PropertyStore is the durable key-value backend shared by every settings group.
// Keys are namespaced by section (one per group). Each write is independent and
// durable on return; there are no cross-key transactions.
type PropertyStore interface {
	// Get returns the raw stored value. found is false when the key is absent.
	// Raw values are store-native (int64, bool, string, []any, map[string]any).
	Get(ctx context.Context, section, key string) (raw any, found bool, err error)

	// Set stores value under section/key, replacing any previous value.
	Set(ctx context.Context, section, key string, value any) error

	// Delete removes section/key. Deleting an absent key is not an error.
	Delete(ctx context.Context, section, key string) error

	// Keys lists the stored keys of a section in sorted order.
	Keys(ctx context.Context, section string) ([]string, error)
}
