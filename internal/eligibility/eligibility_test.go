package eligibility

import (
	"strings"
	"testing"
)

func TestPriorityCategoryIgnoresIncome(t *testing.T) {
	res := Check(Request{AnnualIncome: 2000000, CaseType: "criminal", State: "Delhi", IsWoman: true})
	if !res.Eligible {
		t.Fatal("women qualify regardless of income")
	}
	if len(res.Reasons) != 1 || !strings.Contains(res.Reasons[0], "Section 12(c)") {
		t.Errorf("reasons = %v", res.Reasons)
	}
}

func TestMultiplePriorityCategories(t *testing.T) {
	res := Check(Request{AnnualIncome: 900000, CaseType: "civil", State: "Bihar", IsSCST: true, IsInCustody: true})
	if !res.Eligible || len(res.Reasons) != 2 {
		t.Errorf("eligible=%v reasons=%v", res.Eligible, res.Reasons)
	}
}

func TestIncomeWithinLimit(t *testing.T) {
	res := Check(Request{AnnualIncome: 300000, CaseType: "labour", State: "Kerala"})
	if !res.Eligible {
		t.Fatal("income at the limit qualifies")
	}
	found := false
	for _, s := range res.NextSteps {
		if strings.Contains(s, "Kerala State Legal Services Authority") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected state SLSA step, got %v", res.NextSteps)
	}
}

func TestIncomeAboveLimit(t *testing.T) {
	res := Check(Request{AnnualIncome: 300001, CaseType: "civil", State: "Goa"})
	if res.Eligible {
		t.Fatal("income above limit with no category must not qualify")
	}
	if len(res.Reasons) != 1 || !strings.Contains(res.Reasons[0], "exceeds") {
		t.Errorf("reasons = %v", res.Reasons)
	}
	if len(res.NextSteps) == 0 || !strings.Contains(res.NextSteps[0], "Tele-Law") {
		t.Errorf("next steps = %v", res.NextSteps)
	}
}

func TestUncoveredCaseTypeGetsNote(t *testing.T) {
	res := Check(Request{AnnualIncome: 100000, CaseType: "Maritime Law", State: "Goa"})
	if !res.Eligible {
		t.Fatal("income qualifies")
	}
	last := res.NextSteps[len(res.NextSteps)-1]
	if !strings.Contains(last, "Maritime Law") || !strings.Contains(last, "limited legal aid coverage") {
		t.Errorf("expected coverage note, got %q", last)
	}
}

func TestCaseTypeNormalization(t *testing.T) {
	res := Check(Request{AnnualIncome: 100000, CaseType: "Family Matrimonial", State: "Punjab"})
	for _, s := range res.NextSteps {
		if strings.Contains(s, "limited legal aid coverage") {
			t.Errorf("covered case type flagged: %v", res.NextSteps)
		}
	}
	if res.Reference != "Legal Services Authorities Act, 1987" {
		t.Errorf("reference = %q", res.Reference)
	}
}
