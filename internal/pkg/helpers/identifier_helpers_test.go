package helpers

import "testing"

func TestFormatEmployeeID(t *testing.T) {
	tests := []struct {
		firstName string
		lastName  string
		sequence  int64
		want      string
	}{
		{"John", "Smith", 300, "jsmith300"},
		{"jane", "DOE", 1, "jdoe1"},
		{"Mary", "O'Brien", 42, "mobrien42"},
		{"  Anna ", " van Dyke ", 7, "avandyke7"},
	}
	for _, tt := range tests {
		if got := FormatEmployeeID(tt.firstName, tt.lastName, tt.sequence); got != tt.want {
			t.Errorf("FormatEmployeeID(%q, %q, %d) = %q, want %q",
				tt.firstName, tt.lastName, tt.sequence, got, tt.want)
		}
	}
}

func TestFormatEmployeeIDRejectsLetterlessNames(t *testing.T) {
	if got := FormatEmployeeID("123", "Smith", 1); got != "" {
		t.Errorf("letterless first name produced %q, want empty", got)
	}
	if got := FormatEmployeeID("John", "...", 1); got != "" {
		t.Errorf("letterless last name produced %q, want empty", got)
	}
}

func TestFormatStudentID(t *testing.T) {
	tests := []struct {
		firstName     string
		lastName      string
		carpoolNumber int
		want          string
	}{
		{"Jerry", "Jerome", 3, "jjerome3"},
		{"Sue", "Lee-Park", 12, "sleepark12"},
	}
	for _, tt := range tests {
		if got := FormatStudentID(tt.firstName, tt.lastName, tt.carpoolNumber); got != tt.want {
			t.Errorf("FormatStudentID(%q, %q, %d) = %q, want %q",
				tt.firstName, tt.lastName, tt.carpoolNumber, got, tt.want)
		}
	}

	if got := FormatStudentID("", "Jerome", 3); got != "" {
		t.Errorf("empty first name produced %q, want empty", got)
	}
}
