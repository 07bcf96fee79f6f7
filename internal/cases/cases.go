// Package cases answers CNR lookups. The eCourts portal has no public API,
// so lookups resolve against seed records until scraping the case-status
// pages is viable.
package cases

import (
	"errors"
	"strings"
)

// minCNRLength is the shortest well-formed CNR: state and district codes
// followed by the numeric case identifier and year.
const minCNRLength = 16

var (
	// ErrInvalidCNR marks a malformed CNR, rejected before any lookup.
	ErrInvalidCNR = errors.New("invalid CNR number")
	// ErrNotFound marks a well-formed CNR with no record.
	ErrNotFound = errors.New("case not found")
)

// Case is one court case record.
type Case struct {
	CNR         string   `json:"cnr"`
	CaseType    string   `json:"case_type"`
	CaseNumber  string   `json:"case_number"`
	Petitioner  string   `json:"petitioner"`
	Respondent  string   `json:"respondent"`
	Court       string   `json:"court"`
	Judge       string   `json:"judge"`
	Status      string   `json:"status"`
	FilingDate  string   `json:"filing_date"`
	NextHearing string   `json:"next_hearing"`
	CaseStage   string   `json:"case_stage"`
	Acts        []string `json:"acts"`
}

var records = map[string]Case{
	"DLCT010012345672024": {
		CNR:         "DLCT010012345672024",
		CaseType:    "Civil Suit",
		CaseNumber:  "CS/123/2024",
		Petitioner:  "Ram Kumar",
		Respondent:  "State of Delhi",
		Court:       "District Court, Tis Hazari, Delhi",
		Judge:       "Hon'ble Sh. Justice A.K. Sharma",
		Status:      "Pending",
		FilingDate:  "2024-01-15",
		NextHearing: "2024-02-20",
		CaseStage:   "Arguments",
		Acts:        []string{"Indian Contract Act, 1872"},
	},
	"MHAU030098765432023": {
		CNR:         "MHAU030098765432023",
		CaseType:    "Motor Accident Claim",
		CaseNumber:  "MAC/456/2023",
		Petitioner:  "Sunita Patil",
		Respondent:  "XYZ Insurance Co.",
		Court:       "MACT Court, Aurangabad, Maharashtra",
		Judge:       "Hon'ble Sh. Justice B.K. Deshmukh",
		Status:      "Listed for Orders",
		FilingDate:  "2023-06-10",
		NextHearing: "2024-02-15",
		CaseStage:   "Final Arguments Completed",
		Acts:        []string{"Motor Vehicles Act, 1988"},
	},
}

// Lookup resolves a CNR to its case record. CNRs are matched
// case-insensitively.
func Lookup(cnr string) (Case, error) {
	cnr = strings.ToUpper(strings.TrimSpace(cnr))
	if len(cnr) < minCNRLength {
		return Case{}, ErrInvalidCNR
	}
	c, ok := records[cnr]
	if !ok {
		return Case{}, ErrNotFound
	}
	return c, nil
}
