package models

import (
	"errors"
	"fmt"
	"time"
)

// SyncStatus is the synchronization state of one entity.
type SyncStatus string

const (
	SyncStatusSynced   SyncStatus = "SYNCED"
	SyncStatusPending  SyncStatus = "PENDING"
	SyncStatusConflict SyncStatus = "CONFLICT"
	SyncStatusError    SyncStatus = "ERROR"
)

var (
	// ErrRemoteIDImmutable is returned when a record already linked to a
	// remote record is asked to link to a different one.
	ErrRemoteIDImmutable = errors.New("remote id already assigned")

	// ErrInvalidSyncRecord is returned by Validate for broken invariants.
	ErrInvalidSyncRecord = errors.New("invalid sync record")
)

// ConflictData holds the two competing snapshots of a conflicted entity.
type ConflictData struct {
	DetectedAt      time.Time `json:"detected_at" msgpack:"detected_at"`
	RemoteUpdatedAt time.Time `json:"remote_updated_at" msgpack:"remote_updated_at"`
	AppVersion      Fields    `json:"app_version" msgpack:"app_version"`
	RemoteVersion   Fields    `json:"notion_version" msgpack:"notion_version"`
	// Sequence orders conflicts detected within the same instant.
	Sequence int64 `json:"sequence" msgpack:"sequence"`
}

// Clone returns a deep copy.
func (c *ConflictData) Clone() *ConflictData {
	if c == nil {
		return nil
	}
	out := *c
	out.AppVersion = c.AppVersion.Clone()
	out.RemoteVersion = c.RemoteVersion.Clone()
	return &out
}

// SyncRecord tracks one entity across the local/remote boundary.
type SyncRecord struct {
	LastAppUpdate    time.Time     `json:"last_app_update" msgpack:"last_app_update"`
	LastRemoteUpdate time.Time     `json:"last_remote_update" msgpack:"last_remote_update"`
	UpdatedAt        time.Time     `json:"updated_at" msgpack:"updated_at"`
	ConflictData     *ConflictData `json:"conflict_data,omitempty" msgpack:"conflict_data,omitempty"`
	AppID            string        `json:"app_id" msgpack:"app_id"`
	RemoteID         string        `json:"remote_id,omitempty" msgpack:"remote_id,omitempty"`
	EntityType       EntityType    `json:"entity_type" msgpack:"entity_type"`
	Status           SyncStatus    `json:"status" msgpack:"status"`
	LastError        string        `json:"last_error,omitempty" msgpack:"last_error,omitempty"`
	// LastSyncedFields is the mapped field set both sides agreed on at the
	// last successful sync; pull compares remote state against it.
	LastSyncedFields Fields `json:"last_synced_fields,omitempty" msgpack:"last_synced_fields,omitempty"`
	// LastSyncedRevision is the local revision observed at the last
	// successful sync.
	LastSyncedRevision int64 `json:"last_synced_revision" msgpack:"last_synced_revision"`
}

// NewSyncRecord creates a PENDING record for an entity that was never synced.
func NewSyncRecord(appID string, entityType EntityType) *SyncRecord {
	return &SyncRecord{
		AppID:      appID,
		EntityType: entityType,
		Status:     SyncStatusPending,
	}
}

// SetRemoteID links the record to its remote record. The id is assigned
// once and never changes afterwards.
func (r *SyncRecord) SetRemoteID(remoteID string) error {
	if r.RemoteID == remoteID {
		return nil
	}
	if r.RemoteID != "" {
		return fmt.Errorf("%w: %s has %s, got %s", ErrRemoteIDImmutable, r.AppID, r.RemoteID, remoteID)
	}
	r.RemoteID = remoteID
	return nil
}

// MarkSynced records a successful sync at the given revision.
func (r *SyncRecord) MarkSynced(fields Fields, revision int64) {
	r.Status = SyncStatusSynced
	r.ConflictData = nil
	r.LastError = ""
	r.LastSyncedFields = fields.Clone()
	r.LastSyncedRevision = revision
}

// MarkPending re-queues the record for the next push.
func (r *SyncRecord) MarkPending() {
	r.Status = SyncStatusPending
	r.ConflictData = nil
}

// MarkError records a failed push or pull for this entity.
func (r *SyncRecord) MarkError(err error) {
	r.Status = SyncStatusError
	if err != nil {
		r.LastError = err.Error()
	}
}

// MarkConflict stores both competing snapshots. A record already in
// conflict keeps its original detection time and sequence.
func (r *SyncRecord) MarkConflict(app, remote Fields, detectedAt, remoteUpdatedAt time.Time, seq int64) {
	if r.Status == SyncStatusConflict && r.ConflictData != nil {
		detectedAt = r.ConflictData.DetectedAt
		seq = r.ConflictData.Sequence
	}
	r.Status = SyncStatusConflict
	r.ConflictData = &ConflictData{
		AppVersion:      app.Clone(),
		RemoteVersion:   remote.Clone(),
		DetectedAt:      detectedAt,
		RemoteUpdatedAt: remoteUpdatedAt,
		Sequence:        seq,
	}
}

// Validate checks the record invariants.
func (r *SyncRecord) Validate() error {
	if r.AppID == "" {
		return fmt.Errorf("%w: empty app id", ErrInvalidSyncRecord)
	}
	if !r.EntityType.Valid() {
		return fmt.Errorf("%w: unknown entity type %q", ErrInvalidSyncRecord, r.EntityType)
	}
	switch r.Status {
	case SyncStatusConflict:
		if r.ConflictData == nil || r.ConflictData.AppVersion == nil || r.ConflictData.RemoteVersion == nil {
			return fmt.Errorf("%w: conflict without both snapshots", ErrInvalidSyncRecord)
		}
	case SyncStatusSynced, SyncStatusPending, SyncStatusError:
		if r.ConflictData != nil {
			return fmt.Errorf("%w: conflict data on %s record", ErrInvalidSyncRecord, r.Status)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSyncRecord, r.Status)
	}
	return nil
}

// Clone returns a deep copy.
func (r *SyncRecord) Clone() *SyncRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.ConflictData = r.ConflictData.Clone()
	out.LastSyncedFields = r.LastSyncedFields.Clone()
	return &out
}
