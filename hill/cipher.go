// SPDX-License-Identifier: MIT

// Package hill - encrypt/decrypt orchestration.
//
// Pipeline:
//   - Encrypt: BuildKeyMatrix → Frame → Transform per block → Decode → concat.
//   - Decrypt: BuildKeyMatrix → InvertMatrix → Unframe → Transform per block
//     with K⁻¹ → Decode → concat → StripPadding.
//
// Both directions are atomic: on any error the returned string is empty.
package hill

import (
	"strings"

	"github.com/katalvlaran/hill/matrix"
)

// Cipher holds a prepared key and (when it exists) its inverse, so repeated
// calls skip the matrix work. A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	key    *KeyMatrix
	inv    *InverseKeyMatrix // nil when the key is not invertible
	invErr error             // reason inv is nil
	opts   Options
}

// New builds a Cipher for key and block size m.
// A key whose determinant shares a factor with 26 still yields a Cipher:
// it encrypts, and its Decrypt reports ErrNotInvertible.
//
// Errors: ErrInvalidDimension, ErrInvalidKeyLength.
func New(key string, m int, opts ...Option) (*Cipher, error) {
	k, err := BuildKeyMatrix(key, m)
	if err != nil {
		return nil, hillErrorf(opNew, err)
	}
	c := &Cipher{key: k, opts: gatherOptions(opts...)}
	c.inv, c.invErr = InvertMatrix(k)

	return c, nil
}

// Dim returns the block size m.
func (c *Cipher) Dim() int { return c.key.Dim() }

// Key returns the key matrix.
func (c *Cipher) Key() *KeyMatrix { return c.key }

// Inverse returns the inverse key matrix, or ErrNotInvertible.
func (c *Cipher) Inverse() (*InverseKeyMatrix, error) {
	if c.invErr != nil {
		return nil, c.invErr
	}

	return c.inv, nil
}

// Invertible reports whether Decrypt can succeed for this key.
func (c *Cipher) Invertible() bool { return c.invErr == nil }

// Encrypt frames plaintext (letters only, padded) and transforms each block with K.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	blocks, err := Frame(plaintext, c.Dim(), c.optionList()...)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}
	out, err := apply(c.key, blocks)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}

	return out, nil
}

// Decrypt transforms each ciphertext block with K⁻¹ and strips trailing
// padding from the whole result (unless WithStripPadding(false)).
// The inverse is checked before the ciphertext is even framed.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if c.invErr != nil {
		return "", hillErrorf(opDecrypt, c.invErr)
	}
	blocks, err := Unframe(ciphertext, c.Dim())
	if err != nil {
		return "", hillErrorf(opDecrypt, err)
	}
	out, err := apply(c.inv, blocks)
	if err != nil {
		return "", hillErrorf(opDecrypt, err)
	}
	if c.opts.stripPadding {
		out = StripPadding(out, c.optionList()...)
	}

	return out, nil
}

// optionList replays the resolved options for the free functions.
func (c *Cipher) optionList() []Option {
	return []Option{WithPadLetter(c.opts.pad), WithStripPadding(c.opts.stripPadding)}
}

// Encrypt is the one-shot form of New(key, m).Encrypt(plaintext). It never
// inverts the key, so an encrypt-only key works here.
func Encrypt(plaintext, key string, m int, opts ...Option) (string, error) {
	k, err := BuildKeyMatrix(key, m)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}
	blocks, err := Frame(plaintext, m, opts...)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}
	out, err := apply(k, blocks)
	if err != nil {
		return "", hillErrorf(opEncrypt, err)
	}

	return out, nil
}

// Decrypt is the one-shot form of New(key, m).Decrypt(ciphertext).
// Errors: ErrInvalidKeyLength, ErrInvalidDimension, ErrNotInvertible,
// ErrInvalidLength, ErrInvalidCharacter.
func Decrypt(ciphertext, key string, m int, opts ...Option) (string, error) {
	c, err := New(key, m, opts...)
	if err != nil {
		return "", hillErrorf(opDecrypt, err)
	}

	return c.Decrypt(ciphertext)
}

// apply transforms every block and decodes the result into one string.
func apply(mat matrix.Reader, blocks []Block) (string, error) {
	var sb strings.Builder
	if len(blocks) > 0 {
		sb.Grow(len(blocks) * len(blocks[0]))
	}
	for _, b := range blocks {
		out, err := Transform(mat, b)
		if err != nil {
			return "", err
		}
		for _, r := range out {
			sb.WriteRune(Decode(r))
		}
	}

	return sb.String(), nil
}
