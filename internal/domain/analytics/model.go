package analytics

type CategoryRow struct {
	Category string  `json:"category"`
	TotalJPY float64 `json:"totalJpy"`
	Count    int     `json:"count"`
}

type PayerRow struct {
	PayerID  string  `json:"payerId"`
	TotalJPY float64 `json:"totalJpy"`
	Count    int     `json:"count"`
}

// Summary is a point-in-time view over the full ledger for one user.
// It is recomputed from scratch on every request; keeping incremental
// counters would drift when items are deleted mid-session.
type Summary struct {
	Rate        float64       `json:"rate"`
	SharedJPY   float64       `json:"sharedTotalJpy"`
	SharedTWD   float64       `json:"sharedTotalTwd"`
	PersonalJPY float64       `json:"personalTotalJpy"`
	PersonalTWD float64       `json:"personalTotalTwd"`
	ByCategory  []CategoryRow `json:"byCategory"`
	ByPayer     []PayerRow    `json:"byPayer"`
}
