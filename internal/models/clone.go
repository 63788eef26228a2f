package models

// Deep copies. The store hands snapshots to subscribers, the persistence
// hook, and query callers; nothing outside the store may alias its internal
// slices and maps.

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

// Clone returns a deep copy of the field values.
func (f FieldValues) Clone() FieldValues {
	if f == nil {
		return nil
	}
	out := make(FieldValues, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := b
	out.TeamMembers = make([]TeamMember, len(b.TeamMembers))
	copy(out.TeamMembers, b.TeamMembers)
	out.Stages = make([]BoardStage, len(b.Stages))
	copy(out.Stages, b.Stages)
	return out
}

// Clone returns a deep copy of the history entry.
func (e EditHistoryEntry) Clone() EditHistoryEntry {
	out := e
	out.Changes = make([]FieldChange, len(e.Changes))
	for i, c := range e.Changes {
		out.Changes[i] = FieldChange{
			Field:    c.Field,
			OldValue: cloneValue(c.OldValue),
			NewValue: cloneValue(c.NewValue),
		}
	}
	return out
}

// Clone returns a deep copy of the task, including embedded history and help
// requests.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.DataCollectionFields != nil {
		out.DataCollectionFields = make([]DataCollectionField, len(t.DataCollectionFields))
		for i, f := range t.DataCollectionFields {
			out.DataCollectionFields[i] = f
			out.DataCollectionFields[i].Options = cloneStrings(f.Options)
		}
	}
	out.DataCollectionData = t.DataCollectionData.Clone()
	out.DraftData = t.DraftData.Clone()
	out.EditHistory = make([]EditHistoryEntry, len(t.EditHistory))
	for i, e := range t.EditHistory {
		out.EditHistory[i] = e.Clone()
	}
	out.HelpRequests = make([]HelpRequest, len(t.HelpRequests))
	for i, r := range t.HelpRequests {
		out.HelpRequests[i] = r
		if r.ResolvedAt != nil {
			at := *r.ResolvedAt
			out.HelpRequests[i].ResolvedAt = &at
		}
	}
	out.Tags = cloneStrings(t.Tags)
	return out
}

// Clone returns a deep copy of the whole state tree.
func (s AppState) Clone() AppState {
	out := s
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	out.Users = make([]User, len(s.Users))
	copy(out.Users, s.Users)
	out.Boards = make([]Board, len(s.Boards))
	for i, b := range s.Boards {
		out.Boards[i] = b.Clone()
	}
	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone()
	}
	out.BoardFilters = make(map[string]BoardFilter, len(s.BoardFilters))
	for k, v := range s.BoardFilters {
		out.BoardFilters[k] = v
	}
	return out
}
