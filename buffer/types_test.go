package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{Pos{0, 0}, Pos{0, 0}, 0},
		{Pos{0, 1}, Pos{0, 2}, -1},
		{Pos{1, 0}, Pos{0, 9}, 1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v, %v)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange_SwapsReversed(t *testing.T) {
	r := Range{Start: Pos{1, 0}, End: Pos{0, 3}}
	got := NormalizeRange(r)
	want := Range{Start: Pos{0, 3}, End: Pos{1, 0}}
	if got != want {
		t.Fatalf("normalize=%v, want %v", got, want)
	}
}

func TestClampPos_Bounds(t *testing.T) {
	lineLen := func(row int) int { return 3 }
	if got, want := ClampPos(Pos{-1, -1}, 2, lineLen), (Pos{0, 0}); got != want {
		t.Fatalf("clamp=%v, want %v", got, want)
	}
	if got, want := ClampPos(Pos{9, 9}, 2, lineLen), (Pos{1, 3}); got != want {
		t.Fatalf("clamp=%v, want %v", got, want)
	}
	if got, want := ClampPos(Pos{0, 0}, 0, nil), (Pos{0, 0}); got != want {
		t.Fatalf("clamp=%v, want %v", got, want)
	}
}
