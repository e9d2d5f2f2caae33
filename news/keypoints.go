package news

import (
	"regexp"
	"strings"
)

// Pattern extractors for the synthesized key-points section.
var (
	percentRe = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	dollarRe  = regexp.MustCompile(`\$[\d,]+(?:\.\d+)?(?:\s?(?:billion|million|trillion))?`)
	sectorRe  = regexp.MustCompile(`(?i)\b(tech|technology|finance|banking|crypto|energy|healthcare|retail|automotive|aviation)\b`)
	actionRe  = regexp.MustCompile(`(?i)\b(surged?|jump(?:ed)?|fell|rallied|launch(?:ed)?|announced?|acquired?|soar(?:ed)?|plunged?|raised?|beat|grew|dropped?)\b`)
)

// extractKeyPoints pulls headline facts out of free text: percentages, dollar
// amounts, sector mentions, and movement verbs. Results are deduplicated and
// phrased as short bullet lines.
func extractKeyPoints(text string) []string {
	var points []string
	seen := make(map[string]bool)

	add := func(p string) {
		key := strings.ToLower(p)
		if p == "" || seen[key] {
			return
		}
		seen[key] = true
		points = append(points, p)
	}

	for _, m := range percentRe.FindAllString(text, 3) {
		add("Reported change of " + m)
	}
	for _, m := range dollarRe.FindAllString(text, 3) {
		add("Involves " + m)
	}
	for _, m := range sectorRe.FindAllString(text, 2) {
		add("Relates to the " + strings.ToLower(m) + " sector")
	}
	for _, m := range actionRe.FindAllString(text, 2) {
		add("Market action: " + strings.ToLower(m))
	}

	return points
}
