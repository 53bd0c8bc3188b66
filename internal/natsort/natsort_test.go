package natsort

import (
	"sort"
	"strconv"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "a.png", "a.png", 0},
		{"plain lexicographic", "a.png", "b.png", -1},
		{"numeric beats lexicographic", "page2.png", "page10.png", -1},
		{"numeric reversed", "page10.png", "page2.png", 1},
		{"leading zeros are a tie", "page02.png", "page2.png", 0},
		{"leading zeros long", "007.png", "7.png", 0},
		{"different numbers with zeros", "page02.png", "page10.png", -1},
		{"number against letter", "1.png", "a.png", -1},
		{"prefix sorts first", "page", "page2", -1},
		{"segment prefix sorts first", "a", "a/b", -1},
		{"segments compared in order", "ch1/page2.png", "ch1/page10.png", -1},
		{"earlier segment wins", "ch2/page1.png", "ch10/page9.png", -1},
		{"empty segment before non-empty", "a//b", "a/c/b", -1},
		{"empty before anything", "", "a", -1},
		{"huge numbers beyond int64", "99999999999999999998", "99999999999999999999", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if tt.want != 0 {
				if got := Compare(tt.b, tt.a); got != -tt.want {
					t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
				}
			}
		})
	}
}

func TestCompareMatchesNumericOrder(t *testing.T) {
	// For any two numerals m, n: Compare("a"+m, "a"+n) follows int order.
	nums := []int{0, 1, 2, 9, 10, 11, 99, 100, 101, 1000}
	for _, m := range nums {
		for _, n := range nums {
			a := "a" + strconv.Itoa(m)
			b := "a" + strconv.Itoa(n)
			want := 0
			if m < n {
				want = -1
			} else if m > n {
				want = 1
			}
			if got := Compare(a, b); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestSortStableAndIdempotent(t *testing.T) {
	paths := []string{"b.png", "a.png", "c10.png", "c2.png", "c02.png"}

	sort.SliceStable(paths, func(i, j int) bool { return Less(paths[i], paths[j]) })

	want := []string{"a.png", "b.png", "c2.png", "c02.png", "c10.png"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("after sort, paths[%d] = %q, want %q (full: %v)", i, paths[i], want[i], paths)
		}
	}

	// Sorting an already sorted sequence must not reorder the c2/c02 tie.
	again := append([]string(nil), paths...)
	sort.SliceStable(again, func(i, j int) bool { return Less(again[i], again[j]) })
	for i := range paths {
		if again[i] != paths[i] {
			t.Fatalf("sort not idempotent at %d: %q vs %q", i, again[i], paths[i])
		}
	}
}
