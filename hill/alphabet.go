package hill

import "fmt"

// Modulus is the alphabet size; every residue lives in [0, Modulus).
const Modulus = 26

// Residue is a letter's zero-based position in the alphabet (A=0 … Z=25).
type Residue int

// IsLetter reports whether r is an ASCII Latin letter.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// Encode maps 'A'..'Z' or 'a'..'z' to 0..25.
// Any other rune fails with ErrInvalidCharacter.
func Encode(r rune) (Residue, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Residue(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return Residue(r - 'a'), nil
	}

	return 0, hillErrorf(opEncode, fmt.Errorf("%q: %w", r, ErrInvalidCharacter))
}

// Decode maps a residue to its uppercase letter, reducing mod 26 first so
// unreduced or negative results of modular arithmetic still decode.
func Decode(r Residue) rune {
	v := int(r) % Modulus
	if v < 0 {
		v += Modulus
	}

	return rune('A' + v)
}
