package models

import (
	"strconv"
)

// Field is a single named value of an entity.
type Field struct {
	Name  string `json:"name" msgpack:"name"`
	Value Value  `json:"value" msgpack:"value"`
}

// Fields is an ordered mapping of field name to value.
// Names are unique; Set keeps the position of an existing name.
type Fields []Field

// NewFields builds Fields from name/value pairs preserving their order.
func NewFields(pairs ...Field) Fields {
	out := make(Fields, 0, len(pairs))
	for _, p := range pairs {
		out = out.Set(p.Name, p.Value)
	}
	return out
}

// F is shorthand for constructing a Field.
func F(name string, value Value) Field {
	return Field{Name: name, Value: value}
}

// Get returns the value for name.
func (f Fields) Get(name string) (Value, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether name is present.
func (f Fields) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Set returns f with name set to value. The receiver may be modified.
func (f Fields) Set(name string, value Value) Fields {
	for i := range f {
		if f[i].Name == name {
			f[i].Value = value.Clone()
			return f
		}
	}
	return append(f, Field{Name: name, Value: value.Clone()})
}

// Names returns field names in order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for _, field := range f {
		names = append(names, field.Name)
	}
	return names
}

// Clone returns a deep copy.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for i, field := range f {
		out[i] = Field{Name: field.Name, Value: field.Value.Clone()}
	}
	return out
}

// Merge returns a copy of f overlaid with partial. Fields absent from
// partial keep their current value; new names are appended in partial order.
func (f Fields) Merge(partial Fields) Fields {
	out := f.Clone()
	for _, field := range partial {
		out = out.Set(field.Name, field.Value)
	}
	return out
}

// Equal compares two field sets by name and value, ignoring order.
func (f Fields) Equal(other Fields) bool {
	if len(f) != len(other) {
		return false
	}
	for _, field := range f {
		v, ok := other.Get(field.Name)
		if !ok || !field.Value.Equal(v) {
			return false
		}
	}
	return true
}

// ChangedNames returns the names whose values differ between f and other,
// in the order of f followed by names only present in other.
func (f Fields) ChangedNames(other Fields) []string {
	var changed []string
	for _, field := range f {
		v, ok := other.Get(field.Name)
		if !ok || !field.Value.Equal(v) {
			changed = append(changed, field.Name)
		}
	}
	for _, field := range other {
		if !f.Has(field.Name) {
			changed = append(changed, field.Name)
		}
	}
	return changed
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
