package manifold

// User from GET /v0/user/{handle} or GET /v0/me.
type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
}

// Market from GET /v0/market/{id}.
type Market struct {
	ID          string  `json:"id"`
	CreatorID   string  `json:"creatorId"`
	Question    string  `json:"question"`
	URL         string  `json:"url"`
	OutcomeType string  `json:"outcomeType"` // "BINARY", "MULTIPLE_CHOICE", ...
	Prob        float64 `json:"prob"`        // implied YES probability in [0,1]
	IsResolved  bool    `json:"isResolved"`
}

// Bet is the receipt from POST /v0/bet or a sell.
type Bet struct {
	ID         string  `json:"betId"`
	ContractID string  `json:"contractId"`
	Amount     float64 `json:"amount"`
	Shares     float64 `json:"shares"`
	Outcome    string  `json:"outcome"`
	ProbBefore float64 `json:"probBefore"`
	ProbAfter  float64 `json:"probAfter"`
	IsFilled   bool    `json:"isFilled"`
}

// betRequest is the body for POST /v0/bet.
type betRequest struct {
	Amount     float64 `json:"amount"`
	ContractID string  `json:"contractId"`
	Outcome    string  `json:"outcome"`
}

// sellRequest is the body for POST /v0/market/{id}/sell. A nil Shares
// liquidates the entire position on the given outcome.
type sellRequest struct {
	Outcome string   `json:"outcome"`
	Shares  *float64 `json:"shares,omitempty"`
}
