// Package intent maps raw query text to one of a fixed set of topic
// categories using ordered pattern rules.
package intent

import (
	"regexp"
	"strings"

	"github.com/nyaya-ai/nyaya/models"
)

type rule struct {
	intent   models.Intent
	patterns []*regexp.Regexp
}

// rules is evaluated in declaration order and the first intent with any
// matching pattern wins. Keywords overlap across intents ("legal advice"
// vs "free legal"), so the order is a tie-break policy, not decoration.
var rules = []rule{
	{models.IntentCaseStatus, compile(
		`case status`, `check case`, `cnr number`, `my case`, `status of case`,
		`case number`, `track case`, `find case`, `case details`, `court case`,
	)},
	{models.IntentTeleLaw, compile(
		`tele-law`, `tele law`, `video lawyer`, `csc lawyer`, `legal advice`,
		`free lawyer`, `lawyer consultation`, `legal help`, `talk to lawyer`,
	)},
	{models.IntentECourts, compile(
		`ecourts`, `e-filing`, `epay`, `traffic challan`, `virtual court`,
		`e-court`, `online filing`, `court fee`, `pay challan`, `traffic fine`,
	)},
	{models.IntentVacancies, compile(
		`vacancy`, `judge strength`, `vacant seat`, `judicial vacancy`,
		`pending cases`, `court statistics`, `njdg`,
	)},
	{models.IntentLegalAid, compile(
		`legal aid`, `nalsa`, `free legal`, `poor lawyer`, `legal assistance`,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Classify returns the intent of a query, or IntentUnknown when no pattern
// matches. A miss is a valid terminal state, not an error.
func Classify(query string) models.Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(q) {
				return r.intent
			}
		}
	}
	return models.IntentUnknown
}
