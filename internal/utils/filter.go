package utils

// IsLetterInput checks whether a rune is acceptable in the letter pool:
// ASCII letters plus the '*' blank tile.
func IsLetterInput(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return r == '*'
}

// IsValidLetters checks whether an entire letters string can go into the
// pool. Empty input is fine (it just clears the query).
func IsValidLetters(s string) bool {
	for _, r := range s {
		if !IsLetterInput(r) {
			return false
		}
	}
	return true
}
