package sanitize

import "testing"

func TestScrub(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"phone with dashes",
			"call me at 555-123-4567 tomorrow",
			"call me at [PHONE NUMBER REMOVED] tomorrow",
		},
		{
			"phone with dots",
			"my number is 555.123.4567",
			"my number is [PHONE NUMBER REMOVED]",
		},
		{
			"bare ten digits read as phone first",
			"reach me on 5551234567",
			"reach me on [PHONE NUMBER REMOVED]",
		},
		{
			"email",
			"send results to jane.doe+skin@example.co.uk please",
			"send results to [EMAIL REMOVED] please",
		},
		{
			"ssn",
			"my ssn is 123-45-6789",
			"my ssn is [SSN REMOVED]",
		},
		{
			"phone and email together",
			"call me at 555-123-4567 or a@b.com",
			"call me at [PHONE NUMBER REMOVED] or [EMAIL REMOVED]",
		},
		{
			"clean text passes through",
			"the lesion appeared about 3 months ago",
			"the lesion appeared about 3 months ago",
		},
		{
			"empty string",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scrub(tt.in); got != tt.want {
				t.Errorf("Scrub(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
