package tictactoe

import "strings"

const (
	// PromoAlphabet leaves out I, O, 0 and 1.
	PromoAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	PromoCodeLength = 5
)

func GeneratePromoCode(rnd Rand) string {
	var code strings.Builder
	code.Grow(PromoCodeLength)

	for range PromoCodeLength {
		code.WriteByte(PromoAlphabet[rnd.IntN(len(PromoAlphabet))])
	}

	return code.String()
}

func IsValidPromoCode(code string) bool {
	if len(code) != PromoCodeLength {
		return false
	}

	for _, char := range code {
		if !strings.ContainsRune(PromoAlphabet, char) {
			return false
		}
	}

	return true
}
