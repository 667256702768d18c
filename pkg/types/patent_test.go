package types

import "testing"

func TestPatentRecordYear(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		want   int
		wantOK bool
	}{
		{"valid date", "2020-03-15", 2020, true},
		{"first day of year", "1999-01-01", 1999, true},
		{"empty date", "", 0, false},
		{"wrong layout", "15/03/2020", 0, false},
		{"year only", "2020", 0, false},
		{"garbage", "not-a-date", 0, false},
		{"impossible day", "2020-02-30", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PatentRecord{Date: tt.date}
			got, ok := r.Year()
			if ok != tt.wantOK {
				t.Fatalf("Year() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Year() = %d, want %d", got, tt.want)
			}
		})
	}
}
