// Package store defines the persistence boundary for application state.
package store

import "daykeeper/internal/state"

// Store loads and saves the full application snapshot. Save replaces the
// previously persisted state wholesale; callers treat the snapshot as the
// unit of persistence.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	Load() (state.Snapshot, error)
	Save(state.Snapshot) error
	Close() error
}
