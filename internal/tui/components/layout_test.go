package components

import "testing"

func TestLayoutRow(t *testing.T) {
	cases := []struct {
		total, n int
		want     []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{5, 0, nil},
	}
	for _, tc := range cases {
		got := LayoutRow(tc.total, tc.n)
		if len(got) != len(tc.want) {
			t.Errorf("LayoutRow(%d, %d) = %v, want %v", tc.total, tc.n, got, tc.want)
			continue
		}
		sum := 0
		for i, w := range got {
			if w != tc.want[i] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d, want %d", tc.total, tc.n, i, w, tc.want[i])
			}
			sum += w
		}
		if tc.n > 0 && sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('s'); got != 1 {
		t.Errorf("TabIdxByKey('s') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
