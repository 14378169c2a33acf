package datemath_test

import (
	"testing"
	"time"

	"clainai/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Riyadh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestFind(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	nineAM := time.Date(2024, 5, 1, datemath.DefaultHour, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		text   string
		want   time.Time
		allDay bool
		found  bool
	}{
		{"tomorrow", "call the bank tomorrow", nineAM.AddDate(0, 0, 1), true, true},
		{"arabic tomorrow", "موعد الطبيب غداً", nineAM.AddDate(0, 0, 1), true, true},
		{"day after tomorrow wins over tomorrow", "بعد غد اجتماع", nineAM.AddDate(0, 0, 2), true, true},
		{"in hours", "stretch in 2 hours", baseTime.Add(2 * time.Hour), false, true},
		{"in an hour", "check the oven in an hour", baseTime.Add(time.Hour), false, true},
		{"arabic in days", "دفع الفاتورة بعد 3 أيام", nineAM.AddDate(0, 0, 3), true, true},
		{"arabic in one hour", "بعد ساعة اتصل بأمي", baseTime.Add(time.Hour), false, true},
		{"next friday", "gym next friday", nineAM.AddDate(0, 0, 2), true, true},
		{"next wednesday skips today", "next wednesday", nineAM.AddDate(0, 0, 7), true, true},
		{"in 1 month", "renew passport in 1 month", nineAM.AddDate(0, 1, 0), true, true},
		{"nothing", "buy milk", time.Time{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Find(tt.text, baseTime)
			if ok != tt.found {
				t.Fatalf("Find(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if !ok {
				return
			}
			if !got.At.Equal(tt.want) {
				t.Errorf("Find(%q) = %v, want %v", tt.text, got.At, tt.want)
			}
			if got.AllDay != tt.allDay {
				t.Errorf("Find(%q) AllDay = %v, want %v", tt.text, got.AllDay, tt.allDay)
			}
		})
	}
}
