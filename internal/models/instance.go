package models

import "strings"

// recurringIDSep joins a source id and an occurrence day key into the
// derived id of a materialized recurring instance. The derived id is for
// display and external round-trips only; it is never a valid DayRecord
// lookup key.
const recurringIDSep = "::recurring::"

// InstanceRef identifies a materialized instance unambiguously: either the
// original entity itself, or a recurring projection of a source onto a
// specific occurrence date. Carrying this alongside the display payload
// avoids parsing composite id strings on the mutation path.
type InstanceRef struct {
	SourceID   string
	Occurrence string // occurrence day key; empty for originals
}

// OriginalRef references a non-projected entity.
func OriginalRef(id string) InstanceRef {
	return InstanceRef{SourceID: id}
}

// RecurringRef references the projection of source id onto the given
// occurrence day.
func RecurringRef(sourceID, occurrenceKey string) InstanceRef {
	return InstanceRef{SourceID: sourceID, Occurrence: occurrenceKey}
}

// Recurring reports whether the ref points at a materialized projection.
func (r InstanceRef) Recurring() bool { return r.Occurrence != "" }

// InstanceID renders the deterministic id form: the source id for
// originals, "{sourceId}::recurring::{occurrenceDateKey}" for projections.
func (r InstanceRef) InstanceID() string {
	if !r.Recurring() {
		return r.SourceID
	}
	return r.SourceID + recurringIDSep + r.Occurrence
}

// ParseInstanceID reverses InstanceID. Any id without the recurring marker
// is an original reference.
func ParseInstanceID(id string) InstanceRef {
	source, occurrence, found := strings.Cut(id, recurringIDSep)
	if !found {
		return InstanceRef{SourceID: id}
	}
	return InstanceRef{SourceID: source, Occurrence: occurrence}
}
