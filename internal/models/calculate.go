package models

// Remainder policies accepted by the calculate endpoint.
const (
	// PolicyPositional gives the leftover cents of each item to the
	// participants listed first on that item.
	PolicyPositional = "positional"

	// PolicyFair directs each leftover cent to the participant with the
	// lowest running total across the whole request.
	PolicyFair = "fair"
)

// Participant is one person taking part in a split.
type Participant struct {
	// ID is the caller-chosen identifier, unique within one request.
	ID string `json:"id"`

	// Name is a display name. The server never interprets it.
	Name string `json:"name"`
}

// CalculateRequest is the body accepted by POST /api/calculate.
type CalculateRequest struct {
	// Participants lists everyone splitting the bill. Must be non-empty.
	Participants []Participant `json:"participants"`

	// Items lists the bill lines that may be assigned. Prices must be >= 0.
	Items []Item `json:"items"`

	// Assignments maps item id -> participant ids sharing that item.
	// Items without an entry contribute nothing to the totals.
	Assignments map[string][]string `json:"assignments"`

	// Policy selects how leftover cents are distributed: PolicyPositional
	// (the default when empty) or PolicyFair.
	Policy string `json:"policy,omitempty"`
}

// CalculateResponse is the body returned by POST /api/calculate.
type CalculateResponse struct {
	// TotalsByParticipantID holds each declared participant's share in
	// cents, including zero entries for participants who owe nothing.
	TotalsByParticipantID map[string]int64 `json:"totals_by_participant_id"`

	// GrandTotalCents is the sum of all assigned item prices. It always
	// equals the sum of the per-participant totals.
	GrandTotalCents int64 `json:"grand_total_cents"`
}
