package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{
			name: "title",
			prop: Title("Hero"),
			want: `{"title":[{"text":{"content":"Hero"},"type":"text"}],"type":"title"}`,
		},
		{
			name: "empty rich text",
			prop: RichText(""),
			want: `{"rich_text":[],"type":"rich_text"}`,
		},
		{
			name: "select",
			prop: Select("LIVE"),
			want: `{"select":{"name":"LIVE"},"type":"select"}`,
		},
		{
			name: "cleared select",
			prop: Select(""),
			want: `{"select":null,"type":"select"}`,
		},
		{
			name: "multi select",
			prop: MultiSelect("a", "b"),
			want: `{"multi_select":[{"name":"a"},{"name":"b"}],"type":"multi_select"}`,
		},
		{
			name: "number",
			prop: Number(42),
			want: `{"number":42,"type":"number"}`,
		},
		{
			name: "checkbox false",
			prop: Checkbox(false),
			want: `{"checkbox":false,"type":"checkbox"}`,
		},
		{
			name: "date",
			prop: Date("2026-03-01"),
			want: `{"date":{"start":"2026-03-01"},"type":"date"}`,
		},
		{
			name: "cleared url",
			prop: URL(""),
			want: `{"type":"url","url":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.prop)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestProperty_MarshalJSON_UnknownType(t *testing.T) {
	_, err := json.Marshal(Property{Type: "formula"})
	assert.Error(t, err)
}

func TestProperty_UnmarshalJSON(t *testing.T) {
	raw := `{
		"Name": {"type": "title", "title": [{"type": "text", "plain_text": "Hello "}, {"type": "text", "plain_text": "world"}]},
		"Status": {"type": "select", "select": null},
		"Tags": {"type": "multi_select", "multi_select": [{"name": "x"}]},
		"Progress": {"type": "number", "number": 0.5},
		"Published": {"type": "checkbox", "checkbox": true},
		"Due": {"type": "date", "date": {"start": "2026-04-01", "end": null}},
		"Link": {"type": "url", "url": null},
		"Owner": {"type": "people", "people": []}
	}`

	var props Properties
	require.NoError(t, json.Unmarshal([]byte(raw), &props))

	assert.Equal(t, "Hello world", props["Name"].Text)
	assert.True(t, props["Status"].Null)
	assert.Equal(t, []string{"x"}, props["Tags"].MultiSelect)
	require.NotNil(t, props["Progress"].Number)
	assert.InDelta(t, 0.5, *props["Progress"].Number, 1e-9)
	assert.True(t, props["Published"].Checkbox)
	assert.Equal(t, "2026-04-01", props["Due"].Text)
	assert.True(t, props["Link"].Null)
	assert.Equal(t, PropertyType(""), props["Owner"].Type)
}
