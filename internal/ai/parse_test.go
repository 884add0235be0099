// ABOUTME: Tests for best-effort reply decoding and JSON repair.
// ABOUTME: Covers fenced, chatty, trailing-comma, and bare-key replies.
package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name"`
	Priority string   `json:"priority"`
	Score    float64  `json:"score"`
	Tags     []string `json:"tags"`
	Done     bool     `json:"done"`
}

func TestParse(t *testing.T) {
	fallback := sample{Name: "fallback"}

	tests := []struct {
		name     string
		in       string
		want     sample
		fallback bool
	}{
		{
			name: "plain json",
			in:   `{"name":"a","score":1.5}`,
			want: sample{Name: "a", Score: 1.5},
		},
		{
			name: "json fence",
			in:   "```json\n{\"name\":\"b\"}\n```",
			want: sample{Name: "b"},
		},
		{
			name: "bare fence with prose",
			in:   "Here you go:\n```\n{\"name\":\"c\"}\n```\nEnjoy!",
			want: sample{Name: "c"},
		},
		{
			name: "prose around object",
			in:   `Sure! {"name":"d","tags":["x"]} Let me know.`,
			want: sample{Name: "d", Tags: []string{"x"}},
		},
		{
			name: "trailing commas",
			in:   `{"name":"e","tags":["x","y",],}`,
			want: sample{Name: "e", Tags: []string{"x", "y"}},
		},
		{
			name: "bare keys and word values",
			in:   `{name: "f", priority: high, score: 2e1, done: true}`,
			want: sample{Name: "f", Priority: "high", Score: 20, Done: true},
		},
		{
			name:     "no object",
			in:       "I cannot help with that.",
			want:     fallback,
			fallback: true,
		},
		{
			name:     "unrepairable",
			in:       `{name: Two Words}`,
			want:     fallback,
			fallback: true,
		},
		{
			name:     "empty",
			in:       "",
			want:     fallback,
			fallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in, fallback)
			assert.Equal(t, tt.fallback, got.Fallback)
			assert.Equal(t, tt.want, got.Value)
			if tt.fallback {
				assert.Error(t, got.Err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestRepairLeavesStringsAlone(t *testing.T) {
	in := `{"note": "rest, then go: hard", tags: [a, b,],}`
	out := Repair(in)

	var v struct {
		Note string   `json:"note"`
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "rest, then go: hard", v.Note)
	assert.Equal(t, []string{"a", "b"}, v.Tags)
}

func TestRepairKeepsEscapedQuotes(t *testing.T) {
	in := `{"say": "he said \"hi, there\"", n: -1.5,}`
	out := Repair(in)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, `he said "hi, there"`, v["say"])
	assert.Equal(t, -1.5, v["n"])
}

func TestExtractJSON(t *testing.T) {
	obj, ok := ExtractJSON("noise } before { \"a\": 1 } after")
	require.True(t, ok)
	assert.Equal(t, `{ "a": 1 }`, obj)

	_, ok = ExtractJSON("} {")
	assert.False(t, ok)
}
