package main

import "testing"

func TestQualityToM(t *testing.T) {
	cases := []struct {
		quality int
		wantM   int
		wantErr bool
	}{
		{1, 1, false},
		{2, 8, false},
		{3, 16, false},
		{4, 32, false},
		{0, 0, true},
		{5, 0, true},
	}
	for _, tc := range cases {
		m, err := qualityToM(tc.quality)
		if tc.wantErr {
			if err == nil {
				t.Errorf("quality %d: expected an error, got m=%d", tc.quality, m)
			}
			continue
		}
		if err != nil {
			t.Errorf("quality %d: unexpected error %v", tc.quality, err)
			continue
		}
		if m != tc.wantM {
			t.Errorf("quality %d: m = %d, want %d", tc.quality, m, tc.wantM)
		}
	}
}
