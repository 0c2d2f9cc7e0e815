package subtitle

import "testing"

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		ticks uint64
		want  string
	}{
		{0, "00:00:00.000"},
		{10_000_000, "00:00:01.000"},        // 10M ticks = 1s
		{5_000_00, "00:00:00.050"},          // sub-second precision
		{12_340_000, "00:00:01.234"},        // millisecond field
		{600_000_000, "00:01:00.000"},       // one minute
		{36_000_000_000, "01:00:00.000"},    // one hour
		{45_015_000_000, "01:15:01.500"},    // mixed fields
		{360_000_000_000, "10:00:00.000"},   // two-digit hours
		{35_999_990_000, "00:59:59.999"},    // just under the hour
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.ticks); got != tc.want {
			t.Fatalf("FormatTimestamp(%d) = %q, want %q", tc.ticks, got, tc.want)
		}
	}
}

func TestFormatCueBlockShape(t *testing.T) {
	got := formatCue(3, 0, 10_000_000, "  Hello  ")
	want := "3\n00:00:00.000 --> 00:00:01.000\nHello\n\n"
	if got != want {
		t.Fatalf("formatCue() = %q, want %q", got, want)
	}
}
