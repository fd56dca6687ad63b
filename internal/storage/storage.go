// Package storage is the persistence boundary: a synchronous, machine-local
// key-value store with string keys and string values. Values are whole
// JSON-serialized collections; callers rewrite a full value on every mutation.
package storage

// KV is the persistent store contract. Get reports ok=false for an absent key;
// a store failure surfaces as err and is not retried anywhere in the app.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
