package helpers

import (
	"fmt"
	"strings"
	"unicode"
)

// normalizeNamePart lowercases a name and strips everything that is not
// a letter, so "O'Brien " becomes "obrien".
func normalizeNamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatEmployeeID builds an employee identifier from the employee's
// name and a numeric sequence, e.g. ("John", "Smith", 300) -> "jsmith300".
func FormatEmployeeID(firstName, lastName string, sequence int64) string {
	first := normalizeNamePart(firstName)
	last := normalizeNamePart(lastName)
	if first == "" || last == "" {
		return ""
	}
	return fmt.Sprintf("%c%s%d", first[0], last, sequence)
}

// FormatStudentID builds a student identifier from the student's name
// and carpool number, e.g. ("Jerry", "Jerome", 3) -> "jjerome3". Callers
// append a numeric counter when the identifier is already taken.
func FormatStudentID(firstName, lastName string, carpoolNumber int) string {
	first := normalizeNamePart(firstName)
	last := normalizeNamePart(lastName)
	if first == "" || last == "" {
		return ""
	}
	return fmt.Sprintf("%c%s%d", first[0], last, carpoolNumber)
}
