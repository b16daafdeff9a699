package remote

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PropertyType is the type of a remote record property.
type PropertyType string

const (
	PropertyTitle       PropertyType = "title"
	PropertyRichText    PropertyType = "rich_text"
	PropertySelect      PropertyType = "select"
	PropertyMultiSelect PropertyType = "multi_select"
	PropertyNumber      PropertyType = "number"
	PropertyCheckbox    PropertyType = "checkbox"
	PropertyDate        PropertyType = "date"
	PropertyURL         PropertyType = "url"
)

// MaxRichTextLength is the maximum number of characters accepted for one
// rich text or title property per request.
const MaxRichTextLength = 2000

// Property is one typed property of a remote record. Only the member
// matching Type is meaningful.
type Property struct {
	Number      *float64
	Type        PropertyType
	Text        string   // title, rich_text, url, select name, date start
	MultiSelect []string // multi_select option names
	Checkbox    bool
	// Null is set for select/number/date/url properties explicitly cleared
	// on the remote side.
	Null bool
}

// Properties maps property names to typed values.
type Properties map[string]Property

// Title returns a title property.
func Title(s string) Property { return Property{Type: PropertyTitle, Text: s} }

// RichText returns a rich text property.
func RichText(s string) Property { return Property{Type: PropertyRichText, Text: s} }

// Select returns a single-choice property. An empty name clears it.
func Select(name string) Property {
	return Property{Type: PropertySelect, Text: name, Null: name == ""}
}

// MultiSelect returns a multi-choice property.
func MultiSelect(names ...string) Property {
	return Property{Type: PropertyMultiSelect, MultiSelect: names}
}

// Number returns a numeric property.
func Number(n float64) Property { return Property{Type: PropertyNumber, Number: &n} }

// Checkbox returns a checkbox property.
func Checkbox(b bool) Property { return Property{Type: PropertyCheckbox, Checkbox: b} }

// Date returns a date property with the given ISO-8601 start. An empty
// start clears it.
func Date(start string) Property {
	return Property{Type: PropertyDate, Text: start, Null: start == ""}
}

// URL returns a url property. An empty url clears it.
func URL(u string) Property { return Property{Type: PropertyURL, Text: u, Null: u == ""} }

type textContent struct {
	Content string `json:"content"`
}

type richTextSegment struct {
	Text      *textContent `json:"text,omitempty"`
	Type      string       `json:"type"`
	PlainText string       `json:"plain_text,omitempty"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

// wireProperty is the JSON shape of a property in requests and responses.
type wireProperty struct {
	Select      *selectOption     `json:"select,omitempty"`
	Number      *float64          `json:"number,omitempty"`
	Checkbox    *bool             `json:"checkbox,omitempty"`
	Date        *dateValue        `json:"date,omitempty"`
	URL         *string           `json:"url,omitempty"`
	Type        PropertyType      `json:"type"`
	Title       []richTextSegment `json:"title,omitempty"`
	RichText    []richTextSegment `json:"rich_text,omitempty"`
	MultiSelect []selectOption    `json:"multi_select,omitempty"`
}

// MarshalJSON renders the property in the remote API wire format.
func (p Property) MarshalJSON() ([]byte, error) {
	// Null-значения кодируются явным null, поэтому собираем map вручную
	raw := map[string]any{"type": p.Type}
	switch p.Type {
	case PropertyTitle:
		raw["title"] = segments(p.Text)
	case PropertyRichText:
		raw["rich_text"] = segments(p.Text)
	case PropertySelect:
		if p.Null || p.Text == "" {
			raw["select"] = nil
		} else {
			raw["select"] = selectOption{Name: p.Text}
		}
	case PropertyMultiSelect:
		opts := make([]selectOption, 0, len(p.MultiSelect))
		for _, name := range p.MultiSelect {
			opts = append(opts, selectOption{Name: name})
		}
		raw["multi_select"] = opts
	case PropertyNumber:
		if p.Null || p.Number == nil {
			raw["number"] = nil
		} else {
			raw["number"] = *p.Number
		}
	case PropertyCheckbox:
		raw["checkbox"] = p.Checkbox
	case PropertyDate:
		if p.Null || p.Text == "" {
			raw["date"] = nil
		} else {
			raw["date"] = dateValue{Start: p.Text}
		}
	case PropertyURL:
		if p.Null || p.Text == "" {
			raw["url"] = nil
		} else {
			raw["url"] = p.Text
		}
	default:
		return nil, fmt.Errorf("unsupported property type %q", p.Type)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON parses a property from the remote API wire format.
// Unsupported property types decode with an empty Type and are ignored by
// the mapper.
func (p *Property) UnmarshalJSON(data []byte) error {
	var w wireProperty
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode property: %w", err)
	}

	*p = Property{Type: w.Type}
	switch w.Type {
	case PropertyTitle:
		p.Text = plainText(w.Title)
	case PropertyRichText:
		p.Text = plainText(w.RichText)
	case PropertySelect:
		if w.Select == nil {
			p.Null = true
		} else {
			p.Text = w.Select.Name
		}
	case PropertyMultiSelect:
		p.MultiSelect = make([]string, 0, len(w.MultiSelect))
		for _, opt := range w.MultiSelect {
			p.MultiSelect = append(p.MultiSelect, opt.Name)
		}
	case PropertyNumber:
		p.Number = w.Number
		p.Null = w.Number == nil
	case PropertyCheckbox:
		p.Checkbox = w.Checkbox != nil && *w.Checkbox
	case PropertyDate:
		if w.Date == nil {
			p.Null = true
		} else {
			p.Text = w.Date.Start
		}
	case PropertyURL:
		if w.URL == nil {
			p.Null = true
		} else {
			p.Text = *w.URL
		}
	default:
		p.Type = ""
	}
	return nil
}

func segments(s string) []richTextSegment {
	if s == "" {
		return []richTextSegment{}
	}
	return []richTextSegment{{Type: "text", Text: &textContent{Content: s}}}
}

func plainText(segs []richTextSegment) string {
	var b strings.Builder
	for _, seg := range segs {
		switch {
		case seg.PlainText != "":
			b.WriteString(seg.PlainText)
		case seg.Text != nil:
			b.WriteString(seg.Text.Content)
		}
	}
	return b.String()
}
