package domain

import "time"

// OccurrenceKey identifies one concrete occurrence of a recurring obligation.
type OccurrenceKey struct {
	ObligationID string
	DueDate      time.Time
}

// SettlementRecord is one reconciliation statement about an occurrence: it was
// observed as settled (cleared) or explicitly unsettled at RecordedAt.
type SettlementRecord struct {
	ID         string
	Key        OccurrenceKey
	Settled    bool
	RecordedAt time.Time
}

// SettlementSet holds the resolved settlement state per occurrence key.
type SettlementSet map[OccurrenceKey]bool

// BuildSettlementSet folds reconciliation records into a set. When the same
// key appears more than once the record with the latest RecordedAt wins, so a
// later reconciliation supersedes an earlier unresolved state.
func BuildSettlementSet(records []SettlementRecord) SettlementSet {
	latest := make(map[OccurrenceKey]SettlementRecord, len(records))
	for _, rec := range records {
		rec.Key.DueDate = DateOf(rec.Key.DueDate)
		cur, ok := latest[rec.Key]
		if !ok || !rec.RecordedAt.Before(cur.RecordedAt) {
			latest[rec.Key] = rec
		}
	}

	set := make(SettlementSet, len(latest))
	for key, rec := range latest {
		if rec.Settled {
			set[key] = true
		}
	}

	return set
}

// IsSettled reports whether the occurrence is known to be cleared.
func (s SettlementSet) IsSettled(key OccurrenceKey) bool {
	key.DueDate = DateOf(key.DueDate)
	return s[key]
}
