package deck

// Clamp keeps cursor within [0, length-1]. An empty deck always yields 0.
func Clamp(cursor, length int) int {
	if length <= 0 || cursor < 0 {
		return 0
	}
	if cursor > length-1 {
		return length - 1
	}
	return cursor
}

// Next moves the cursor one card forward; at the last card it stays put
func Next(cursor, length int) int {
	return Clamp(cursor+1, length)
}

// Previous moves the cursor one card back; at the first card it stays put
func Previous(cursor, length int) int {
	return Clamp(cursor-1, length)
}
