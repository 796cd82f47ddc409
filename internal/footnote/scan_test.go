package footnote

import (
	"reflect"
	"testing"
)

func TestMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Marker
	}{
		{
			name: "single marker mid-sentence",
			text: "See ref[^a] here.",
			want: []Marker{{Preceding: "f", Label: "a"}},
		},
		{
			name: "duplicates kept in document order",
			text: "See ref[^a] and also ref[^b] and ref[^a] again.",
			want: []Marker{
				{Preceding: "f", Label: "a"},
				{Preceding: "f", Label: "b"},
				{Preceding: "f", Label: "a"},
			},
		},
		{
			name: "marker at line start is never scanned",
			text: "text\n[^a] starts the line",
			want: nil,
		},
		{
			name: "marker at start of text is never scanned",
			text: "[^a] begins the document",
			want: nil,
		},
		{
			name: "adjacent markers share brackets as preceding chars",
			text: "a[^1][^2]",
			want: []Marker{
				{Preceding: "a", Label: "1"},
				{Preceding: "]", Label: "2"},
			},
		},
		{
			name: "no markers",
			text: "plain text",
			want: nil,
		},
	}

	dialect := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dialect.Markers(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Markers(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Definition
	}{
		{
			name: "consecutive definition lines",
			text: "[^b]: Second note.\n[^a]: First note.",
			want: []Definition{
				{Label: "b", Content: "Second note."},
				{Label: "a", Content: "First note."},
			},
		},
		{
			name: "content spans lines until the next definition",
			text: "[^a]: First line.\n    second line.\n[^b]: Other.",
			want: []Definition{
				{Label: "a", Content: "First line.\n    second line."},
				{Label: "b", Content: "Other."},
			},
		},
		{
			name: "blank line between blocks belongs to the earlier content",
			text: "[^a]: First.\n\n[^b]: Second.",
			want: []Definition{
				{Label: "a", Content: "First.\n"},
				{Label: "b", Content: "Second."},
			},
		},
		{
			name: "trailing prose is swallowed by the last block",
			text: "para one\n\n[^a]: note\n\npara two",
			want: []Definition{
				{Label: "a", Content: "note\n\npara two"},
			},
		},
		{
			name: "duplicate labels are both reported",
			text: "[^a]: old\n[^a]: new",
			want: []Definition{
				{Label: "a", Content: "old"},
				{Label: "a", Content: "new"},
			},
		},
		{
			name: "indented bracket line is not a definition",
			text: "[^a]: note\n  [^b]: still content",
			want: []Definition{
				{Label: "a", Content: "note\n  [^b]: still content"},
			},
		},
		{
			name: "no definitions",
			text: "just prose[^a] here",
			want: []Definition{},
		},
	}

	dialect := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dialect.Definitions(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Definitions(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripDefinitions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "definitions at the end removed",
			text: "Body[^a] text.\n\n[^a]: note",
			want: "Body[^a] text.\n\n",
		},
		{
			name: "separator newline between blocks survives",
			text: "Body.\n\n[^a]: one\n[^b]: two",
			want: "Body.\n\n\n",
		},
		{
			name: "no definitions leaves text untouched",
			text: "nothing to do here",
			want: "nothing to do here",
		},
	}

	dialect := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dialect.StripDefinitions(tt.text)
			if got != tt.want {
				t.Errorf("StripDefinitions(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
