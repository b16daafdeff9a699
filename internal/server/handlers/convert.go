package handlers

import (
	"fmt"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
	"github.com/Brommah/contentfinal-sub002/pkg/api"
)

// toAPIFields конвертирует поля в API формат
func toAPIFields(fields models.Fields) []api.Field {
	out := make([]api.Field, 0, len(fields))
	for _, f := range fields {
		v := api.FieldValue{
			Kind:   string(f.Value.Kind),
			Str:    f.Value.Str,
			Strs:   f.Value.Strs,
			Number: f.Value.Number,
			Bool:   f.Value.Bool,
		}
		if !f.Value.Time.IsZero() {
			t := f.Value.Time
			v.Time = &t
		}
		out = append(out, api.Field{Name: f.Name, Value: v})
	}
	return out
}

// fromAPIFields validates kinds and builds typed values.
func fromAPIFields(in []api.Field) (models.Fields, error) {
	out := make(models.Fields, 0, len(in))
	for _, f := range in {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field name is required", errInvalidRequest)
		}
		var t time.Time
		if f.Value.Time != nil {
			t = *f.Value.Time
		}

		var v models.Value
		switch models.ValueKind(f.Value.Kind) {
		case models.KindString:
			v = models.StringValue(f.Value.Str)
		case models.KindSelect:
			v = models.SelectValue(f.Value.Str)
		case models.KindURL:
			v = models.URLValue(f.Value.Str)
		case models.KindMultiSelect:
			v = models.TagsValue(f.Value.Strs...)
		case models.KindBool:
			v = models.BoolValue(f.Value.Bool)
		case models.KindNumber:
			v = models.NumberValue(f.Value.Number)
		case models.KindDate:
			v = models.DateValue(t)
		case models.KindTimestamp:
			v = models.TimestampValue(t)
		default:
			return nil, fmt.Errorf("%w: field %s has unknown kind %q", errInvalidRequest, f.Name, f.Value.Kind)
		}
		out = out.Set(f.Name, v)
	}
	return out, nil
}

func toAPIEntity(e *models.Entity, dirty bool) api.Entity {
	return api.Entity{
		ID:             e.ID,
		Type:           string(e.Type),
		Fields:         toAPIFields(e.Fields),
		LocalRevision:  e.LocalRevision,
		LocalUpdatedAt: e.LocalUpdatedAt,
		Dirty:          dirty,
	}
}

func toAPIErrors(in []syncsvc.EntityError) []api.EntityError {
	if len(in) == 0 {
		return nil
	}
	out := make([]api.EntityError, 0, len(in))
	for _, e := range in {
		out = append(out, api.EntityError{EntityID: e.EntityID, Message: e.Message})
	}
	return out
}

func toSyncResponse(r *syncsvc.SyncResult) api.SyncResponse {
	return api.SyncResponse{
		Timestamp:     r.Timestamp,
		Errors:        toAPIErrors(r.Errors),
		SyncedCount:   r.SyncedCount,
		FailedCount:   r.FailedCount,
		SkippedCount:  r.SkippedCount,
		RequeuedCount: r.RequeuedCount,
		DeletedCount:  r.DeletedCount,
		Cancelled:     r.Cancelled,
	}
}

func toPullResponse(r *syncsvc.PullResult) api.PullResponse {
	return api.PullResponse{
		Timestamp: r.Timestamp,
		Errors:    toAPIErrors(r.Errors),
		Total:     r.Total,
		Imported:  r.Imported,
		Updated:   r.Updated,
		Unchanged: r.Unchanged,
		Conflicts: r.Conflicts,
		Pending:   r.Pending,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
		Cancelled: r.Cancelled,
	}
}

func toStatusResponse(r *syncsvc.StatusReport) api.StatusResponse {
	counts := make(map[string]int, len(r.Counts))
	for status, n := range r.Counts {
		counts[string(status)] = n
	}
	resp := api.StatusResponse{
		Counts:           counts,
		DirtyCount:       r.DirtyCount,
		ConflictCount:    r.ConflictCount,
		PendingDeletions: r.PendingDeletions,
		Configured:       r.Configured,
	}
	if !r.LastPush.IsZero() {
		t := r.LastPush
		resp.LastPush = &t
	}
	if !r.LastPull.IsZero() {
		t := r.LastPull
		resp.LastPull = &t
	}
	return resp
}

func toAPIConflict(v syncsvc.ConflictView) api.Conflict {
	diffs := make([]api.FieldDiff, 0, len(v.Diffs))
	for _, d := range v.Diffs {
		diffs = append(diffs, api.FieldDiff{Field: d.Field, App: d.App, Remote: d.Remote, Pretty: d.Pretty()})
	}
	return api.Conflict{
		DetectedAt:    v.DetectedAt,
		AppID:         v.AppID,
		RemoteID:      v.RemoteID,
		EntityType:    string(v.EntityType),
		Title:         v.Title,
		AppVersion:    toAPIFields(v.AppVersion),
		RemoteVersion: toAPIFields(v.RemoteVersion),
		Diffs:         diffs,
		Sequence:      v.Sequence,
	}
}
