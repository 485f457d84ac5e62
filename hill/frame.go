package hill

import (
	"fmt"
	"strings"
)

// Block is exactly m residues, consumed by Transform as one column vector.
type Block []Residue

// Normalize drops every rune that is not a Latin letter and uppercases the rest.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if IsLetter(r) {
			if r >= 'a' {
				r -= 'a' - 'A'
			}
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Frame normalizes text, right-pads it with the pad letter (default 'X') to a
// multiple of m and slices it into consecutive blocks of m residues.
// Empty normalized input yields zero blocks and no error.
//
// Errors: ErrInvalidDimension when m <= 0.
func Frame(text string, m int, opts ...Option) ([]Block, error) {
	if m <= 0 {
		return nil, hillErrorf(opFrame, fmt.Errorf("m=%d: %w", m, ErrInvalidDimension))
	}
	o := gatherOptions(opts...)
	letters := Normalize(text)
	if rem := len(letters) % m; rem != 0 {
		letters += strings.Repeat(string(o.pad), m-rem)
	}

	blocks, err := slice(letters, m)
	if err != nil {
		return nil, hillErrorf(opFrame, err)
	}

	return blocks, nil
}

// Unframe slices ciphertext into blocks without filtering or padding.
// Lowercase letters are accepted; anything else is rejected.
//
// Errors:
//   - ErrInvalidDimension when m <= 0.
//   - ErrInvalidLength when the rune count is not a multiple of m.
//   - ErrInvalidCharacter for a non-letter rune.
func Unframe(text string, m int) ([]Block, error) {
	if m <= 0 {
		return nil, hillErrorf(opUnframe, fmt.Errorf("m=%d: %w", m, ErrInvalidDimension))
	}
	n := len([]rune(text))
	if n%m != 0 {
		return nil, hillErrorf(opUnframe, fmt.Errorf("length %d, m=%d: %w", n, m, ErrInvalidLength))
	}

	blocks, err := slice(text, m)
	if err != nil {
		return nil, hillErrorf(opUnframe, err)
	}

	return blocks, nil
}

// StripPadding removes every trailing pad letter (default 'X') from the
// whole string. A plaintext that really ends in the pad letter loses it too.
func StripPadding(text string, opts ...Option) string {
	o := gatherOptions(opts...)

	return strings.TrimRight(text, string(o.pad))
}

// slice encodes letters (len divisible by m) into blocks of m residues.
func slice(letters string, m int) ([]Block, error) {
	runes := []rune(letters)
	blocks := make([]Block, 0, len(runes)/m)
	var block Block
	for i, r := range runes {
		if i%m == 0 {
			block = make(Block, 0, m)
		}
		v, err := Encode(r)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		block = append(block, v)
		if len(block) == m {
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}
