package repositories

// ClientStorage is key/value storage held by the shopper's browser.
// Each value is read and written as a whole; concurrent tabs race with
// last-write-wins semantics.
type ClientStorage interface {
	// Get returns the stored value and whether one was present and readable.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
	// Delete removes key.
	Delete(key string)
}
