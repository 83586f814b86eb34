package currency

type Direction string

const (
	JPYToTWD Direction = "JPY_TO_TWD"
	TWDToJPY Direction = "TWD_TO_JPY"
)

// Convert maps an amount across the rate: TWD = JPY·rate, JPY = TWD/rate.
func Convert(amount, rate float64, direction Direction) (float64, error) {
	if !validRate(rate) {
		return 0, ErrInvalidRate
	}
	switch direction {
	case JPYToTWD:
		return amount * rate, nil
	case TWDToJPY:
		return amount / rate, nil
	default:
		return 0, ErrUnknownDirection
	}
}
