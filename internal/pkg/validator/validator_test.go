package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2023-02-29", "15-01-2024", "2024/01/15", "", "today"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"09:00", "00:00", "23:59"}
	invalid := []string{"24:00", "9:99", "09:00:00", "", "noon"}
	for _, c := range valid {
		if _, ok := IsValidClockTime(c); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if _, ok := IsValidClockTime(c); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", c)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, d := range valid {
		if _, ok := IsValidDateTime(d); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDateTime(d); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", d)
		}
	}
}

func TestCoordinateBounds(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || !IsValidLatitude(0) {
		t.Error("boundary latitudes should be valid")
	}
	if IsValidLatitude(-90.01) || IsValidLatitude(90.01) {
		t.Error("out-of-range latitudes should be invalid")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("boundary longitudes should be valid")
	}
	if IsValidLongitude(-180.5) || IsValidLongitude(180.5) {
		t.Error("out-of-range longitudes should be invalid")
	}
}

func TestIsValidTimeZone(t *testing.T) {
	if !IsValidTimeZone("Asia/Jakarta") || !IsValidTimeZone("UTC") {
		t.Error("known zones should be valid")
	}
	if IsValidTimeZone("Mars/Olympus") || IsValidTimeZone("") {
		t.Error("unknown zones should be invalid")
	}
}
