package logic

import "math"

// ExtractNumber returns the first run of ASCII digits in value as an int.
// Everything else is ignored: "4.5k" gives 4, "800-1k" gives 800 and
// "700k+" gives 700. A value without digits gives 0. Runs too large for
// an int saturate at math.MaxInt.
func ExtractNumber(value string) int {
	start := -1
	for i := 0; i < len(value); i++ {
		if isDigit(value[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	n := 0
	for i := start; i < len(value) && isDigit(value[i]); i++ {
		d := int(value[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
