// Package mapper converts entities to remote record properties and back.
//
// Every local field has exactly one remote representation described by a
// FieldSpec. Mapping is pure: the only side effect is a log line when a
// value cannot be represented and the field default is used instead.
package mapper

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Brommah/contentfinal-sub002/internal/models"
	"github.com/Brommah/contentfinal-sub002/internal/remote"
)

// AppIDProperty is the hidden rich text property carrying the local id.
const AppIDProperty = "App ID"

var (
	// ErrOptionNotAllowed indicates a select value outside the closed set
	ErrOptionNotAllowed = errors.New("option not allowed")

	// ErrKindMismatch indicates a value of the wrong kind for the field
	ErrKindMismatch = errors.New("value kind mismatch")

	// ErrNotFinite indicates a NaN or infinite number, which JSON cannot carry
	ErrNotFinite = errors.New("number is not finite")

	// ErrPropertyType indicates a remote property of an unexpected type
	ErrPropertyType = errors.New("unexpected property type")

	// ErrUnknownEntityType indicates that no mapper exists for the kind
	ErrUnknownEntityType = errors.New("no mapper for entity type")
)

// FieldSpec describes how one local field is represented remotely.
type FieldSpec struct {
	Default  models.Value
	Field    string
	Property string
	Type     remote.PropertyType
	Options  []string // closed option set for select fields; nil means open
}

// Mapper maps one entity kind.
type Mapper struct {
	logger *slog.Logger
	kind   models.EntityType
	specs  []FieldSpec
}

// New creates a mapper for kind using specs in the given order.
func New(kind models.EntityType, specs []FieldSpec, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		kind:   kind,
		specs:  slices.Clone(specs),
		logger: logger,
	}
}

// Kind returns the entity kind handled by the mapper.
func (m *Mapper) Kind() models.EntityType {
	return m.kind
}

// Specs returns a copy of the field specs.
func (m *Mapper) Specs() []FieldSpec {
	return slices.Clone(m.specs)
}

// Defaults returns every mapped field set to its default.
func (m *Mapper) Defaults() models.Fields {
	out := make(models.Fields, 0, len(m.specs))
	for _, spec := range m.specs {
		out = out.Set(spec.Field, spec.Default)
	}
	return out
}

// Normalize returns the mapped fields as they would look after a
// round trip through the remote store: unmapped fields are dropped,
// missing or invalid fields take their default and long text is truncated.
// Pull compares local state against remote state in this form.
func (m *Mapper) Normalize(fields models.Fields) models.Fields {
	out := make(models.Fields, 0, len(m.specs))
	for _, spec := range m.specs {
		p, err := encode(spec, m.pushValue(spec, fields, ""))
		if err != nil {
			p, _ = encode(spec, spec.Default)
		}
		v, err := decode(spec, p)
		if err != nil {
			v = spec.Default
		}
		out = out.Set(spec.Field, v)
	}
	return out
}

// ToRemote renders the entity as remote properties. Values that cannot be
// represented are logged and replaced by the field default.
func (m *Mapper) ToRemote(e *models.Entity) remote.Properties {
	props := make(remote.Properties, len(m.specs)+1)
	for _, spec := range m.specs {
		v := m.pushValue(spec, e.Fields, e.ID)
		p, err := encode(spec, v)
		if err != nil {
			// Значение по умолчанию всегда кодируется
			p, _ = encode(spec, spec.Default)
		}
		props[spec.Property] = p
	}
	props[AppIDProperty] = remote.RichText(e.ID)
	return props
}

// FromRemote converts remote properties to a partial field set. Absent,
// mistyped or unmappable properties are omitted so that the caller keeps
// its existing value for them.
func (m *Mapper) FromRemote(props remote.Properties) models.Fields {
	out := make(models.Fields, 0, len(m.specs))
	for _, spec := range m.specs {
		p, ok := props[spec.Property]
		if !ok {
			continue
		}
		v, err := decode(spec, p)
		if err != nil {
			m.logger.Warn("Skipping remote property",
				"kind", m.kind,
				"property", spec.Property,
				"error", err)
			continue
		}
		out = out.Set(spec.Field, v)
	}
	return out
}

// AppID returns the local id stored in the hidden property, if any.
func AppID(props remote.Properties) string {
	p, ok := props[AppIDProperty]
	if !ok || p.Type != remote.PropertyRichText {
		return ""
	}
	return p.Text
}

// pushValue returns the value to send for spec, falling back to the default
// when the field is missing or cannot be encoded.
func (m *Mapper) pushValue(spec FieldSpec, fields models.Fields, entityID string) models.Value {
	v, ok := fields.Get(spec.Field)
	if !ok {
		return spec.Default
	}
	if err := check(spec, v); err != nil {
		if entityID != "" {
			m.logger.Warn("Field falls back to default",
				"kind", m.kind,
				"entity_id", entityID,
				"field", spec.Field,
				"error", err)
		}
		return spec.Default
	}
	return v
}

// check validates v against the spec without encoding it.
func check(spec FieldSpec, v models.Value) error {
	want := valueKind(spec)
	if v.Kind != want && !(want == models.KindString && v.Kind == "") {
		return fmt.Errorf("%w: %s wants %s, got %s", ErrKindMismatch, spec.Field, want, v.Kind)
	}
	if spec.Type == remote.PropertySelect && v.Str != "" && spec.Options != nil && !slices.Contains(spec.Options, v.Str) {
		return fmt.Errorf("%w: %s=%q", ErrOptionNotAllowed, spec.Field, v.Str)
	}
	if want == models.KindNumber && (math.IsNaN(v.Number) || math.IsInf(v.Number, 0)) {
		return fmt.Errorf("%w: %s=%v", ErrNotFinite, spec.Field, v.Number)
	}
	return nil
}

// validText replaces each invalid UTF-8 byte with U+FFFD, the same way
// encoding/json does on the way to the remote store.
func validText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

func validTexts(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = validText(s)
	}
	return out
}

// valueKind returns the local value kind stored for spec.
func valueKind(spec FieldSpec) models.ValueKind {
	switch spec.Type {
	case remote.PropertySelect:
		return models.KindSelect
	case remote.PropertyMultiSelect:
		return models.KindMultiSelect
	case remote.PropertyNumber:
		return models.KindNumber
	case remote.PropertyCheckbox:
		return models.KindBool
	case remote.PropertyDate:
		if spec.Default.Kind == models.KindTimestamp {
			return models.KindTimestamp
		}
		return models.KindDate
	case remote.PropertyURL:
		return models.KindURL
	default:
		return models.KindString
	}
}

func encode(spec FieldSpec, v models.Value) (remote.Property, error) {
	if err := check(spec, v); err != nil {
		return remote.Property{}, err
	}
	switch spec.Type {
	case remote.PropertyTitle:
		return remote.Title(Truncate(validText(v.Str))), nil
	case remote.PropertyRichText:
		return remote.RichText(Truncate(validText(v.Str))), nil
	case remote.PropertySelect:
		return remote.Select(validText(v.Str)), nil
	case remote.PropertyMultiSelect:
		return remote.MultiSelect(validTexts(v.Strs)...), nil
	case remote.PropertyNumber:
		return remote.Number(v.Number), nil
	case remote.PropertyCheckbox:
		return remote.Checkbox(v.Bool), nil
	case remote.PropertyDate:
		if v.Time.IsZero() {
			return remote.Date(""), nil
		}
		if v.Kind == models.KindTimestamp {
			return remote.Date(v.Time.UTC().Format(time.RFC3339Nano)), nil
		}
		return remote.Date(v.Time.UTC().Format(time.DateOnly)), nil
	case remote.PropertyURL:
		return remote.URL(validText(v.Str)), nil
	}
	return remote.Property{}, fmt.Errorf("%w: %s", ErrPropertyType, spec.Type)
}

func decode(spec FieldSpec, p remote.Property) (models.Value, error) {
	if p.Type != spec.Type {
		return models.Value{}, fmt.Errorf("%w: %s is %q, want %q", ErrPropertyType, spec.Property, p.Type, spec.Type)
	}
	switch spec.Type {
	case remote.PropertyTitle, remote.PropertyRichText:
		return models.StringValue(p.Text), nil
	case remote.PropertySelect:
		if p.Null || p.Text == "" {
			return models.SelectValue(""), nil
		}
		if spec.Options != nil && !slices.Contains(spec.Options, p.Text) {
			return models.Value{}, fmt.Errorf("%w: %s=%q", ErrOptionNotAllowed, spec.Property, p.Text)
		}
		return models.SelectValue(p.Text), nil
	case remote.PropertyMultiSelect:
		return models.TagsValue(p.MultiSelect...), nil
	case remote.PropertyNumber:
		if p.Null || p.Number == nil {
			return models.NumberValue(0), nil
		}
		return models.NumberValue(*p.Number), nil
	case remote.PropertyCheckbox:
		return models.BoolValue(p.Checkbox), nil
	case remote.PropertyDate:
		return decodeDate(valueKind(spec), p)
	case remote.PropertyURL:
		if p.Null {
			return models.URLValue(""), nil
		}
		return models.URLValue(p.Text), nil
	}
	return models.Value{}, fmt.Errorf("%w: %s", ErrPropertyType, spec.Type)
}

func decodeDate(kind models.ValueKind, p remote.Property) (models.Value, error) {
	wrap := models.DateValue
	if kind == models.KindTimestamp {
		wrap = models.TimestampValue
	}
	if p.Null || p.Text == "" {
		return wrap(time.Time{}), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, p.Text); err == nil {
		return wrap(t), nil
	}
	t, err := time.Parse(time.DateOnly, p.Text)
	if err != nil {
		return models.Value{}, fmt.Errorf("failed to parse date %q: %w", p.Text, err)
	}
	return wrap(t), nil
}

// ForKind returns the mapper for an entity kind.
func ForKind(kind models.EntityType, logger *slog.Logger) (*Mapper, error) {
	switch kind {
	case models.EntityTypeBlock:
		return Block(logger), nil
	case models.EntityTypeRoadmapItem:
		return Roadmap(logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, kind)
}
