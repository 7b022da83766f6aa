package datemath_test

import (
	"errors"
	"testing"
	"time"

	"caretask/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "This afternoon", relative: "This Afternoon", want: startOfBase},
		{name: "Tonight", relative: "tonight", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "Next week", relative: "next week", want: startOfBase.AddDate(0, 0, 7)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", wantErr: true},
		{name: "Bare Friday (from Wed)", relative: "Friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Bare Wednesday is today", relative: "wednesday", want: startOfBase},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "This week has no day", relative: "this week", wantErr: true},
		{name: "Invalid Next Weekday", relative: "next funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Errorf("Parse() error = %v, want ErrUnrecognized", err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		phrase string
		want   time.Time
		allDay bool
		wantOK bool
	}{
		{phrase: "at 9 AM", want: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), wantOK: true},
		{phrase: "2:30pm", want: time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), wantOK: true},
		{phrase: "at 12 AM", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{phrase: "tomorrow", want: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), allDay: true, wantOK: true},
		{phrase: "at 13 PM", wantOK: false},
		{phrase: "this week", wantOK: false},
		{phrase: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := parser.Resolve(tt.phrase, base)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q) ok = %v; want %v", tt.phrase, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if !got.At.Equal(tt.want) || got.AllDay != tt.allDay {
			t.Errorf("Resolve(%q) = %+v; want %v allDay=%v", tt.phrase, got, tt.want, tt.allDay)
		}
	}
}

func TestSameDay(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 2024-05-01 20:00 UTC is already May 2 in UTC+7.
	a := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	if !parser.SameDay(a, b) {
		t.Error("expected same local day")
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
