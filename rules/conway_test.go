package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"living cell starves alone", true, 0, false},
		{"living cell starves with one", true, 1, false},
		{"living cell survives with two", true, 2, true},
		{"living cell survives with three", true, 3, true},
		{"living cell dies of overcrowding", true, 4, false},
		{"living cell dies in a full neighborhood", true, 8, false},
		{"dead cell stays dead alone", false, 0, false},
		{"dead cell stays dead with two", false, 2, false},
		{"dead cell is born with three", false, 3, true},
		{"dead cell stays dead with four", false, 4, false},
		{"dead cell stays dead in a full neighborhood", false, 8, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyConwayRules(tc.neighbors, tc.alive); got != tc.want {
				t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v",
					tc.neighbors, tc.alive, got, tc.want)
			}
		})
	}
}
