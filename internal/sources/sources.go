// Package sources maps query keywords to canonical authoritative URLs. It
// is a topic-to-authority map, not an evidence citation: it succeeds for
// every query regardless of what retrieval or generation did.
package sources

import "strings"

// DefaultAuthorityURL is attributed when no category matches.
const DefaultAuthorityURL = "https://doj.gov.in"

type category struct {
	keywords []string
	url      string
}

// categories are checked in a fixed order; every matching category
// contributes its URL.
var categories = []category{
	{[]string{"case", "status", "cnr", "ecourt"}, "https://services.ecourts.gov.in"},
	{[]string{"tele-law", "telelaw", "legal advice", "lawyer", "csc"}, "https://www.tele-law.in"},
	{[]string{"challan", "traffic", "fine", "virtual court"}, "https://vcourts.gov.in"},
	{[]string{"legal aid", "free lawyer", "nalsa"}, "https://nalsa.gov.in"},
	{[]string{"judiciary", "statistics", "pending", "data"}, "https://njdg.ecourts.gov.in"},
}

// Resolve returns the authoritative URLs for a query's topics, or the
// default authority when nothing matches.
func Resolve(query string) []string {
	lower := strings.ToLower(query)
	var out []string
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, c.url)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultAuthorityURL)
	}
	return out
}
