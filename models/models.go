package models

// Intent is the closed set of topic categories a citizen query can map to.
// The zero-ish value for classification misses is IntentUnknown.
type Intent string

const (
	IntentCaseStatus Intent = "case_status"
	IntentTeleLaw    Intent = "tele_law"
	IntentECourts    Intent = "ecourts"
	IntentVacancies  Intent = "vacancies"
	IntentLegalAid   Intent = "legal_aid"
	IntentUnknown    Intent = "unknown"
)

// DocumentMetadata describes where a knowledge document came from.
type DocumentMetadata struct {
	Type   string `json:"type"` // "scheme" or "faq"
	URL    string `json:"url,omitempty"`
	Intent string `json:"intent,omitempty"`
}

// KnowledgeDocument is one indexed entry of the knowledge corpus. Immutable
// once indexed; retrieval hands out copies.
type KnowledgeDocument struct {
	Content  string           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

// AugmentedContent is the (possibly empty) result of live-data augmentation.
type AugmentedContent struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources"`
}

// Empty reports whether augmentation contributed nothing.
func (a AugmentedContent) Empty() bool {
	return a.Text == "" && len(a.Sources) == 0
}

// ResolvedResponse is the single externally observable output of a
// resolution call. Response is never empty and Sources always carries at
// least one URL.
type ResolvedResponse struct {
	Response    string   `json:"response"`
	Sources     []string `json:"sources"`
	Intent      Intent   `json:"intent"`
	AIGenerated bool     `json:"ai_generated"`
}
