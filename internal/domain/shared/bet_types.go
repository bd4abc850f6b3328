package shared

import "errors"

// Variant selects the legal number domain of a bet
type Variant string

const (
	VariantJodi   Variant = "jodi"   // two digits, "01".."99"
	VariantSingle Variant = "single" // one digit, "1".."9"
)

var ErrInvalidVariant = errors.New("invalid bet variant")

// ParseVariant converts a wire string into a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantJodi:
		return VariantJodi, nil
	case VariantSingle:
		return VariantSingle, nil
	default:
		return "", ErrInvalidVariant
	}
}
