package sync

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Brommah/contentfinal-sub002/internal/models"
)

// DiffOp is the kind of a text change.
type DiffOp string

const (
	DiffEqual  DiffOp = "equal"
	DiffInsert DiffOp = "insert"
	DiffDelete DiffOp = "delete"
)

// TextChange is one segment of a text diff from the app version to the
// remote version.
type TextChange struct {
	Op   DiffOp `json:"op"`
	Text string `json:"text"`
}

// FieldDiff describes one field that differs between the two versions of
// a conflicted entity.
type FieldDiff struct {
	Field  string `json:"field"`
	App    string `json:"app"`
	Remote string `json:"remote"`
	// Changes is set only for text fields.
	Changes []TextChange `json:"changes,omitempty"`
}

// Pretty renders the change list with [-deleted-] and {+inserted+} markers.
func (d FieldDiff) Pretty() string {
	if len(d.Changes) == 0 {
		return d.App + " -> " + d.Remote
	}
	var b strings.Builder
	for _, c := range d.Changes {
		switch c.Op {
		case DiffInsert:
			b.WriteString("{+" + c.Text + "+}")
		case DiffDelete:
			b.WriteString("[-" + c.Text + "-]")
		default:
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// DiffFields compares two field sets field by field in the order of app,
// followed by fields present only in remote.
func DiffFields(app, remote models.Fields) []FieldDiff {
	names := app.Names()
	for _, name := range remote.Names() {
		if !app.Has(name) {
			names = append(names, name)
		}
	}

	dmp := diffmatchpatch.New()
	var out []FieldDiff
	for _, name := range names {
		av, _ := app.Get(name)
		rv, _ := remote.Get(name)
		if av.Equal(rv) {
			continue
		}

		d := FieldDiff{Field: name, App: av.String(), Remote: rv.String()}
		if isText(av) || isText(rv) {
			diffs := dmp.DiffMain(d.App, d.Remote, false)
			diffs = dmp.DiffCleanupSemantic(diffs)
			d.Changes = make([]TextChange, 0, len(diffs))
			for _, df := range diffs {
				d.Changes = append(d.Changes, TextChange{Op: diffOp(df.Type), Text: df.Text})
			}
		}
		out = append(out, d)
	}
	return out
}

func isText(v models.Value) bool {
	return v.Kind == models.KindString
}

func diffOp(t diffmatchpatch.Operation) DiffOp {
	switch t {
	case diffmatchpatch.DiffInsert:
		return DiffInsert
	case diffmatchpatch.DiffDelete:
		return DiffDelete
	default:
		return DiffEqual
	}
}
