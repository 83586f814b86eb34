package expenses

type ExpenseType string

const (
	TypeShared   ExpenseType = "SHARED"
	TypePersonal ExpenseType = "PERSONAL"
)

func (t ExpenseType) Valid() bool {
	return t == TypeShared || t == TypePersonal
}

const (
	CurrencyJPY     = "JPY"
	DefaultCategory = "其他"
)

// Expense is one money event. OwnerID is set if and only if the type is
// PERSONAL. Items are immutable after creation; the only lifecycle
// operation besides creation is deletion.
type Expense struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Amount   float64     `json:"amount"`
	Currency string      `json:"currency"`
	Category string      `json:"category"`
	PayerID  string      `json:"payerId"`
	OwnerID  string      `json:"ownerId,omitempty"`
	Type     ExpenseType `json:"type"`
	Date     string      `json:"date"`
}

// VisibleTo is the ledger's one access-control rule: shared items are
// visible to everyone, personal items only to their owner.
func (e Expense) VisibleTo(userID string) bool {
	return e.Type == TypeShared || (e.Type == TypePersonal && e.OwnerID == userID)
}

type AddExpenseInput struct {
	Title   string
	Amount  float64
	PayerID string
	Type    ExpenseType
}
