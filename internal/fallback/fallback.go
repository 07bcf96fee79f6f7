// Package fallback holds the static table of pre-approved responses served
// when generation is unavailable or declines to answer.
package fallback

import "github.com/nyaya-ai/nyaya/models"

// Entry is a canned response with its authoritative sources.
type Entry struct {
	Response string
	Sources  []string
}

// entries is keyed by intent and immutable for the process lifetime. Not
// every intent has an entry: legal_aid and unknown fall through to the
// retrieved-document and generic tiers.
var entries = map[models.Intent]Entry{
	models.IntentCaseStatus: {
		Response: `To check your case status online, you can use the eCourts Services portal:

1. Visit services.ecourts.gov.in
2. Select your state and district
3. Search using:
   - CNR Number (14-digit unique case number)
   - Case Number
   - Party Name
   - Advocate Name
   - Filing Number

You can also download the eCourts Services mobile app for Android or iOS.`,
		Sources: []string{"https://services.ecourts.gov.in"},
	},
	models.IntentTeleLaw: {
		Response: `Tele-Law is a free legal consultation service that connects you with lawyers via video call:

**How to Access:**
1. Visit your nearest Common Service Center (CSC)
2. The Village Level Entrepreneur (VLE) will connect you with a panel lawyer
3. Consultation is FREE for eligible citizens

**Also Available:**
- Tele-Law Mobile App (Android/iOS)
- Toll-free number: 1800-1800

**Eligibility:** Priority for marginalized sections including SC/ST, women, differently-abled, and those eligible for free legal aid.`,
		Sources: []string{"https://www.tele-law.in"},
	},
	models.IntentECourts: {
		Response: `eCourts Project offers various digital services:

**Key Services:**
- **Case Status:** Check status of any case in India
- **Cause Lists:** Daily court listings
- **e-Filing:** File cases online
- **e-Payment:** Pay court fees digitally
- **Virtual Courts:** Pay traffic challans online

Visit services.ecourts.gov.in or download the eCourts Services App.`,
		Sources: []string{"https://services.ecourts.gov.in", "https://vcourts.gov.in"},
	},
	models.IntentVacancies: {
		Response: `For information on judicial vacancies and appointments:

- The Department of Justice handles appointments to Supreme Court and High Courts
- Current vacancy data is available on the National Judicial Data Grid (NJDG)
- Visit njdg.ecourts.gov.in for detailed statistics on pending cases and judicial strength

For specific vacancy announcements, check doj.gov.in regularly.`,
		Sources: []string{"https://njdg.ecourts.gov.in", "https://doj.gov.in"},
	},
}

// Lookup returns the canned entry for an intent, if one exists.
func Lookup(intent models.Intent) (Entry, bool) {
	e, ok := entries[intent]
	return e, ok
}
