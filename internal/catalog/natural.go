package catalog

// naturalLess orders strings the way a human reads labels with embedded
// numbers: digit runs compare by numeric value, so "9W" < "24W" < "100W" <
// "1200W". Non-digit runs compare case-insensitively and digit runs sort
// before letters, which keeps "N/A" after every wattage. Strings that are
// equal under those rules fall back to plain byte order so the relation
// stays a strict weak ordering.
func naturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		aDigit, bDigit := isDigit(ca), isDigit(cb)

		switch {
		case aDigit && bDigit:
			aRun, aNext := digitRun(a, i)
			bRun, bNext := digitRun(b, j)
			if cmp := compareDigitRuns(aRun, bRun); cmp != 0 {
				return cmp < 0
			}
			i, j = aNext, bNext
		case aDigit:
			return true
		case bDigit:
			return false
		default:
			fa, fb := foldByte(ca), foldByte(cb)
			if fa != fb {
				return fa < fb
			}
			i++
			j++
		}
	}
	if len(a)-i != len(b)-j {
		return len(a)-i < len(b)-j
	}
	return a < b
}

// digitRun returns the digit substring starting at position start and the
// index just past it.
func digitRun(s string, start int) (string, int) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[start:end], end
}

// compareDigitRuns compares two digit strings by numeric value without
// converting them, so arbitrarily long runs never overflow.
func compareDigitRuns(a, b string) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
