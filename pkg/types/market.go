package types

// Market is the subset of a Gamma API market record the analyzer needs.
// The conditionId is the durable handle used to fetch fills; the slug is the
// human-readable identifier the universe generator produces.
type Market struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Question    string `json:"question"`
	ConditionID string `json:"conditionId"`
	Closed      bool   `json:"closed"`
	Active      bool   `json:"active"`
}
