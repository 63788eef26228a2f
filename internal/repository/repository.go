package repository

import "workboard/internal/models"

// StateRepository is the durable storage for application state: one
// serialized JSON document per storage key, the only wire-level contract the
// store has. Save overwrites the whole document (last write wins, no merge).
type StateRepository interface {
	// Load reads the state stored under key. A missing key is not an
	// error: the initial default state is returned with found=false.
	Load(key string) (models.AppState, bool, error)

	// Save writes the complete state under key, replacing any previous
	// document.
	Save(key string, state models.AppState) error
}
