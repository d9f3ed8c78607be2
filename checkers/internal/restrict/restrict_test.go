package restrict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeEntries(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  []Entry
	}{
		{
			name:  "nil value",
			value: nil,
			want:  nil,
		},
		{
			name:  "typed entries pass through",
			value: []Entry{{Object: "proc", Property: "pid"}},
			want:  []Entry{{Object: "proc", Property: "pid"}},
		},
		{
			name: "decoded yaml list",
			value: []interface{}{
				map[string]interface{}{
					"object":   "proc",
					"property": "pid",
					"message":  "Use currentPid() instead.",
				},
				map[string]interface{}{"object": "legacy"},
				map[string]interface{}{"property": "__secret"},
			},
			want: []Entry{
				{Object: "proc", Property: "pid", Message: "Use currentPid() instead."},
				{Object: "legacy"},
				{Property: "__secret"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entries, err := DecodeEntries(test.value)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(test.want, entries); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeEntriesErrors(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"not a list", "proc.pid"},
		{"list of non-mappings", []interface{}{"proc.pid"}},
		{"unknown key", []interface{}{map[string]interface{}{"objekt": "proc"}}},
		{"non-string value", []interface{}{map[string]interface{}{"object": 42}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DecodeEntries(test.value); err == nil {
				t.Errorf("expected decode error for %#v", test.value)
			}
		})
	}
}

func TestValidateEntries(t *testing.T) {
	valid := []Entry{
		{Object: "proc", Property: "pid"},
		{Object: "proc"},
		{Property: "pid"},
	}
	if err := ValidateEntries(valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateEntries([]Entry{{Message: "no pattern"}}); err == nil {
		t.Error("entry without object and property must be rejected")
	}

	dup := []Entry{
		{Object: "proc", Property: "pid"},
		{Object: "proc", Property: "pid"},
	}
	if err := ValidateEntries(dup); err == nil {
		t.Error("duplicate entries must be rejected")
	}
}

func TestModelQuery(t *testing.T) {
	model := NewModel([]Entry{
		{Object: "proc", Property: "pid", Message: "Use currentPid() instead."},
		{Object: "legacy"},
		{Property: "__secret", Message: "Secrets may not be read directly."},
		{Property: "pid"},
	})

	tests := []struct {
		name       string
		object     string
		properties []string
		want       []Match
	}{
		{
			name:       "scoped pair",
			object:     "proc",
			properties: []string{"pid"},
			want: []Match{
				{Property: "pid", Message: "Use currentPid() instead.", Kind: ScopedObjectProperty},
			},
		},
		{
			name:       "scoped beats global property",
			object:     "proc",
			properties: []string{"pid", "__secret"},
			want: []Match{
				{Property: "pid", Message: "Use currentPid() instead.", Kind: ScopedObjectProperty},
			},
		},
		{
			name:       "global property on any object",
			object:     "user",
			properties: []string{"pid"},
			want: []Match{
				{Property: "pid", Kind: GlobalProperty},
			},
		},
		{
			name:       "global property matches every accessed property",
			object:     "user",
			properties: []string{"__secret", "name", "pid"},
			want: []Match{
				{Property: "__secret", Message: "Secrets may not be read directly.", Kind: GlobalProperty},
				{Property: "pid", Kind: GlobalProperty},
			},
		},
		{
			name:       "global object is a single match on the first property",
			object:     "legacy",
			properties: []string{"a", "b", "c"},
			want: []Match{
				{Property: "a", Kind: GlobalObject},
			},
		},
		{
			name:       "global property beats global object",
			object:     "legacy",
			properties: []string{"__secret"},
			want: []Match{
				{Property: "__secret", Message: "Secrets may not be read directly.", Kind: GlobalProperty},
			},
		},
		{
			name:       "no restrictions hit",
			object:     "user",
			properties: []string{"name"},
			want:       nil,
		},
		{
			name:       "no properties resolve",
			object:     "legacy",
			properties: nil,
			want:       nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := model.Query(test.object, test.properties)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModelEmpty(t *testing.T) {
	if !NewModel(nil).Empty() {
		t.Error("model without entries must be empty")
	}
	if NewModel([]Entry{{Object: "proc"}}).Empty() {
		t.Error("model with entries must not be empty")
	}
}
