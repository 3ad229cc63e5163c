package relay_service

import "regexp"

// Chilean mobile number: country code 56, prefix 9, 8 further digits.
// Word boundaries reject runs flanked by more digits, so an 11-digit window
// inside a longer number never matches.
var destinationPattern = regexp.MustCompile(`\b569\d{8}\b`)

// ExtractDestination returns the first valid destination number found in
// the caption, or "" if none is present.
func ExtractDestination(caption string) string {
	return destinationPattern.FindString(caption)
}
