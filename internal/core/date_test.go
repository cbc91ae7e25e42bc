package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		out Date
		ok  bool
	}{
		{"2024-01-10", Date{2024, time.January, 10}, true},
		{"2024-12-31", Date{2024, time.December, 31}, true},
		{"2024-02-30", Date{}, false},
		{"2024-1-1", Date{}, false},
		{"10/01/2024", Date{}, false},
		{"", Date{}, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q: expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	if got := d.String(); got != "2024-03-05" {
		t.Fatalf("expected zero-padded ISO form, got %q", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.January, 10)
	b := NewDate(2024, time.January, 11)
	c := NewDate(2024, time.February, 1)

	if !a.Before(b) || !b.Before(c) {
		t.Fatal("expected a < b < c")
	}
	if !c.After(a) {
		t.Fatal("expected c after a")
	}
	if a.Before(a) || a.After(a) {
		t.Fatal("a date must not order against itself")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	if got := d.AddDays(-1); got != NewDate(2023, time.December, 31) {
		t.Fatalf("expected year rollover, got %v", got)
	}
	if got := d.AddDays(31); got != NewDate(2024, time.February, 1) {
		t.Fatalf("expected month rollover, got %v", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 7)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-06-07"` {
		t.Fatalf("unexpected wire form %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("round trip changed date: %v != %v", back, d)
	}
}

func TestDateValidate(t *testing.T) {
	if err := (Date{}).Validate(); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate for zero date, got %v", err)
	}
	if err := NewDate(2024, time.May, 1).Validate(); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
}
