package currency

import "errors"

var (
	ErrInvalidRate       = errors.New("exchange rate must be a positive finite number")
	ErrUnknownDirection  = errors.New("unknown conversion direction")
	ErrEmptyExpression   = errors.New("expression is empty")
	ErrInvalidExpression = errors.New("expression is not valid arithmetic")
	ErrDivisionByZero    = errors.New("division by zero")
)
