package storage

// ApiStore defines the complete set of operations needed by the API.
// It composes the granular interfaces to provide a clear boundary for the
// API's data access.
type ApiStore interface {
	ProfileStore
	CustomerStore
	TransactionStore
	BatwaStore
	UserStore
}
