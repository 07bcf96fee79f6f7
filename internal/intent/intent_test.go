package intent

import (
	"testing"

	"github.com/nyaya-ai/nyaya/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		query string
		want  models.Intent
	}{
		{"How do I check my case status?", models.IntentCaseStatus},
		{"WHERE IS MY CASE STATUS", models.IntentCaseStatus},
		{"what is tele-law", models.IntentTeleLaw},
		{"I want to talk to lawyer", models.IntentTeleLaw},
		{"how to pay traffic challan online", models.IntentECourts},
		{"e-filing of a new suit", models.IntentECourts},
		{"judicial vacancy in high courts", models.IntentVacancies},
		{"show njdg numbers", models.IntentVacancies},
		{"am I eligible for nalsa schemes", models.IntentLegalAid},
		{"", models.IntentUnknown},
		{"xyzzy unrelated text", models.IntentUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.query); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.query, got, c.want)
		}
	}
}

func TestClassifyOrderBreaksOverlaps(t *testing.T) {
	// "free legal advice" matches tele_law ("legal advice") and legal_aid
	// ("free legal"); tele_law is declared earlier and must win.
	if got := Classify("free legal advice"); got != models.IntentTeleLaw {
		t.Errorf("overlap tie-break: got %s, want %s", got, models.IntentTeleLaw)
	}
	// "case status" beats "court statistics" by declaration order too.
	if got := Classify("case status and court statistics"); got != models.IntentCaseStatus {
		t.Errorf("overlap tie-break: got %s, want %s", got, models.IntentCaseStatus)
	}
}

func TestClassifyIgnoresSurroundingText(t *testing.T) {
	if got := Classify("hello, could you please tell me about tele law today?"); got != models.IntentTeleLaw {
		t.Errorf("got %s, want %s", got, models.IntentTeleLaw)
	}
}
