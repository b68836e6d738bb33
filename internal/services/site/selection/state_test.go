package selection

import "testing"

func TestStateToggle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start State
		click string
		want  State
	}{
		{name: "none expands clicked", start: None(), click: "axis", want: Of("axis")},
		{name: "expanded collapses", start: Of("axis"), click: "axis", want: None()},
		{name: "other replaces", start: Of("axis"), click: "coreops", want: Of("coreops")},
		{name: "unknown id is accepted", start: Of("axis"), click: "missing", want: Of("missing")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.start.Toggle(tc.click)
			if got != tc.want {
				t.Fatalf("Toggle(%q) = %v, want %v", tc.click, got, tc.want)
			}
		})
	}
}

func TestOfEmptyIsNone(t *testing.T) {
	t.Parallel()

	if !Of("").IsNone() {
		t.Fatalf("Of(\"\") should be none")
	}
	if got := None().String(); got != "none" {
		t.Fatalf("None().String() = %q, want %q", got, "none")
	}
	if id, ok := Of("axis").ID(); !ok || id != "axis" {
		t.Fatalf("Of(axis).ID() = %q, %v", id, ok)
	}
}

func TestCardStateOf(t *testing.T) {
	t.Parallel()

	state := Of("k9trainpros")
	if got := CardStateOf(state, "k9trainpros"); got != Expanded {
		t.Fatalf("selected card = %v, want expanded", got)
	}
	if got := CardStateOf(state, "axis"); got != Collapsed {
		t.Fatalf("other card = %v, want collapsed", got)
	}
	if got := CardStateOf(None(), "axis"); got.String() != "collapsed" {
		t.Fatalf("none card = %q, want collapsed", got.String())
	}
}
