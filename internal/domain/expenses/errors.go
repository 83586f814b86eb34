package expenses

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidExpense  = errors.New("invalid expense input")
	ErrUnknownPayer    = errors.New("unknown payer")
)
