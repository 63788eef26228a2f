package store

import (
	"encoding/json"
	"reflect"

	"workboard/internal/models"
)

// historyValue converts a value to its JSON-normal form (string, float64,
// bool, nil, map, slice) before it enters the audit log. History entries are
// persisted as part of the state document; normalizing up front means a
// reloaded log compares equal to the one that was written.
func historyValue(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

// valuesEqual gates change detection. Structural equality is used so that
// replacing a slice or map with an equal-content value does not log a
// spurious change (a deliberate tightening of the original shallow compare).
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(historyValue(a), historyValue(b))
}

func fieldChange(field string, oldValue, newValue any) models.FieldChange {
	return models.FieldChange{
		Field:    field,
		OldValue: historyValue(oldValue),
		NewValue: historyValue(newValue),
	}
}

// newHistoryEntry builds one attributed, timestamped entry covering every
// field a single mutating call changed.
func (s *Store) newHistoryEntry(actor *models.User, changes []models.FieldChange) models.EditHistoryEntry {
	return models.EditHistoryEntry{
		ID:        s.newID(),
		Timestamp: s.clock(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Changes:   changes,
	}
}
