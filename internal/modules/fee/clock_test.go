package fee

import "testing"

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"17:30", 1050, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"09:0", 0, true},
		{"0900", 0, true},
		{"ab:cd", 0, true},
		{"+9:00", 0, true},
		{"", 0, true},
		{"09:00 ", 0, true},
	}
	for _, tc := range cases {
		got, err := toMinutes(tc.in)
		if tc.wantErr {
			if err != ErrInvalidTime {
				t.Errorf("toMinutes(%q): expected ErrInvalidTime, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("toMinutes(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("toMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
