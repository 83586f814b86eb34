package trip

// User is one trip member. The roster is fixed at startup; members
// are never created or removed at runtime.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}

// PreTripNote is a read-only entry of the pre-trip info manual.
type PreTripNote struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
