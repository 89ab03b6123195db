package repositories

import "context"

// KVStore is the persistence collaborator: a flat key-value store holding
// JSON-serializable values, mirroring the browser-local storage contract the
// application was built around (`ledger:<userId>`, `budgetGoal:<userId>`,
// `users`).
type KVStore interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
