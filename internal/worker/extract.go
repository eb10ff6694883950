package worker

import "regexp"

// Announcement titles are free text; these patterns pull out the model
// strings the classifier understands. EPYC parts, Scalable tier + number,
// and legacy E3/E5 parts with an optional version suffix.
var modelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bEPYC\s+\d{4}[A-Z]*\b`),
	regexp.MustCompile(`(?i)\b(?:XEON\s+)?(?:PLATINUM|GOLD|SILVER|BRONZE)\s+\d{4}[A-Z+]*`),
	regexp.MustCompile(`(?i)\bE[35]-\d{4}(?:\s?V\s?\d)?\b`),
}

// extractModel returns the first recognizable model string in a title, or
// "" when none is found.
func extractModel(title string) string {
	for _, p := range modelPatterns {
		if m := p.FindString(title); m != "" {
			return m
		}
	}
	return ""
}
