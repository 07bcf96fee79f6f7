// Package eligibility evaluates free legal aid eligibility under the Legal
// Services Authorities Act, 1987 as administered by NALSA.
package eligibility

import (
	"fmt"
	"strings"
)

// generalIncomeLimit is the annual income ceiling in INR below which anyone
// qualifies, independent of category.
const generalIncomeLimit = 300000

// eligibleCaseTypes have full legal aid coverage; other case types get a
// consult-SLSA note instead of a refusal.
var eligibleCaseTypes = map[string]struct{}{
	"criminal":           {},
	"civil":              {},
	"family_matrimonial": {},
	"labour":             {},
	"consumer":           {},
	"property":           {},
	"constitutional":     {},
}

// Request describes the applicant.
type Request struct {
	AnnualIncome    int    `json:"annual_income"`
	CaseType        string `json:"case_type"`
	State           string `json:"state"`
	IsWoman         bool   `json:"is_woman"`
	IsSCST          bool   `json:"is_sc_st"`
	IsSeniorCitizen bool   `json:"is_senior_citizen"`
	IsSpeciallyAbl  bool   `json:"is_specially_abled"`
	IsInCustody     bool   `json:"is_in_custody"`
}

// Result carries the decision with its statutory reasons and what to do next.
type Result struct {
	Eligible  bool     `json:"eligible"`
	Reasons   []string `json:"reasons"`
	NextSteps []string `json:"next_steps"`
	Reference string   `json:"reference"`
}

// Check applies the priority-category rules first; those qualify regardless
// of income. Income is consulted only when no category applies.
func Check(req Request) Result {
	var eligible bool
	var reasons []string

	if req.IsWoman {
		eligible = true
		reasons = append(reasons, "Women are entitled to free legal aid under Section 12(c) of LSA Act")
	}
	if req.IsSCST {
		eligible = true
		reasons = append(reasons, "SC/ST members are entitled to free legal aid under Section 12(a) of LSA Act")
	}
	if req.IsSeniorCitizen {
		eligible = true
		reasons = append(reasons, "Senior citizens are entitled to free legal aid")
	}
	if req.IsSpeciallyAbl {
		eligible = true
		reasons = append(reasons, "Persons with disabilities are entitled to free legal aid under Section 12(h)")
	}
	if req.IsInCustody {
		eligible = true
		reasons = append(reasons, "Persons in custody are entitled to free legal aid under Section 12(g)")
	}

	if !eligible {
		if req.AnnualIncome <= generalIncomeLimit {
			eligible = true
			reasons = append(reasons, fmt.Sprintf("Annual income (₹%d) is within the eligibility limit (₹%d)", req.AnnualIncome, generalIncomeLimit))
		} else {
			reasons = append(reasons, fmt.Sprintf("Annual income (₹%d) exceeds the eligibility limit (₹%d)", req.AnnualIncome, generalIncomeLimit))
		}
	}

	var steps []string
	if eligible {
		steps = []string{
			"Visit your nearest District Legal Services Authority (DLSA)",
			"Bring income certificate and ID proof",
			"You can also apply online at nalsa.gov.in",
			fmt.Sprintf("Contact %s State Legal Services Authority (SLSA) for assistance", req.State),
		}
	} else {
		steps = []string{
			"You may still consult Tele-Law for free legal advice",
			"Consider approaching Lok Adalat for dispute resolution",
			"Check if your case qualifies under special schemes",
		}
	}
	if _, ok := eligibleCaseTypes[normalizeCaseType(req.CaseType)]; !ok {
		steps = append(steps, fmt.Sprintf("Note: '%s' may have limited legal aid coverage. Consult SLSA for details.", req.CaseType))
	}

	return Result{
		Eligible:  eligible,
		Reasons:   reasons,
		NextSteps: steps,
		Reference: "Legal Services Authorities Act, 1987",
	}
}

func normalizeCaseType(t string) string {
	return strings.ReplaceAll(strings.ToLower(t), " ", "_")
}
