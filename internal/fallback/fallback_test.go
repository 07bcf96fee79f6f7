package fallback

import (
	"testing"

	"github.com/nyaya-ai/nyaya/models"
)

func TestLookupCoveredIntents(t *testing.T) {
	for _, intent := range []models.Intent{
		models.IntentCaseStatus,
		models.IntentTeleLaw,
		models.IntentECourts,
		models.IntentVacancies,
	} {
		e, ok := Lookup(intent)
		if !ok {
			t.Errorf("Lookup(%s): expected entry", intent)
			continue
		}
		if e.Response == "" || len(e.Sources) == 0 {
			t.Errorf("Lookup(%s): entry must carry response and sources", intent)
		}
	}
}

func TestLookupUncoveredIntents(t *testing.T) {
	for _, intent := range []models.Intent{models.IntentLegalAid, models.IntentUnknown} {
		if _, ok := Lookup(intent); ok {
			t.Errorf("Lookup(%s): expected no entry", intent)
		}
	}
}

func TestTeleLawSource(t *testing.T) {
	e, _ := Lookup(models.IntentTeleLaw)
	if len(e.Sources) != 1 || e.Sources[0] != "https://www.tele-law.in" {
		t.Errorf("tele_law sources = %v", e.Sources)
	}
}
