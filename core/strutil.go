package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Add space for negative sign
	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// ftoa formats a float32 with a fixed number of decimal places, rounding
// half away from zero. Good enough for voltage and duration reporting;
// not a general float formatter.
func ftoa(f float32, decimals int) string {
	negative := f < 0
	if negative {
		f = -f
	}

	scale := int64(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	scaled := int64(float64(f)*float64(scale) + 0.5)
	s := itoa(int(scaled / scale))

	if decimals > 0 {
		frac := itoa(int(scaled % scale))
		for len(frac) < decimals {
			frac = "0" + frac
		}
		s += "." + frac
	}

	if negative {
		s = "-" + s
	}
	return s
}

// atoi parses a non-negative decimal integer. Returns -1 on empty or
// non-digit input, which no valid command argument can produce.
func atoi(s string) int {
	if s == "" {
		return -1
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return -1
		}
	}
	return n
}

// pad right-pads s with spaces to the given width.
func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
