package compose

import (
	"reflect"
	"testing"
)

func TestParseInlineMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "plain",
			in:   "no markup here",
			want: []Segment{{Text: "no markup here"}},
		},
		{
			name: "single emphasis",
			in:   "Built **React** apps",
			want: []Segment{
				{Text: "Built "},
				{Text: "React", Bold: true},
				{Text: " apps"},
			},
		},
		{
			name: "leading emphasis",
			in:   "**Lead** developer",
			want: []Segment{
				{Text: "Lead", Bold: true},
				{Text: " developer"},
			},
		},
		{
			name: "multiple emphasis",
			in:   "**A** and **B**",
			want: []Segment{
				{Text: "A", Bold: true},
				{Text: " and "},
				{Text: "B", Bold: true},
			},
		},
		{
			name: "dangling delimiter emphasizes to end",
			in:   "shipped **fast",
			want: []Segment{
				{Text: "shipped "},
				{Text: "fast", Bold: true},
			},
		},
		{
			name: "empty string",
			in:   "",
			want: []Segment{},
		},
		{
			name: "bare delimiter",
			in:   "**",
			want: []Segment{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInlineMarkup(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseInlineMarkup(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInlineMarkupAlternates(t *testing.T) {
	segs := ParseInlineMarkup("a**b**c**d**e")
	wantBold := []bool{false, true, false, true, false}
	if len(segs) != len(wantBold) {
		t.Fatalf("got %d segments, want %d", len(segs), len(wantBold))
	}
	for i, seg := range segs {
		if seg.Bold != wantBold[i] {
			t.Fatalf("segment %d bold = %v, want %v", i, seg.Bold, wantBold[i])
		}
	}
}
