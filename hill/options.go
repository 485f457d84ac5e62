// SPDX-License-Identifier: MIT

// Package hill: functional configuration for framing and padding.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package hill

import "unicode"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadLetter fills the final block up to a multiple of m.
	DefaultPadLetter = 'X'

	// DefaultStripPadding removes every trailing pad letter after decryption.
	DefaultStripPadding = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPadLetterInvalid = "hill: WithPadLetter: pad must be a Latin letter"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pad          rune // uppercase Latin letter; DefaultPadLetter
	stripPadding bool // DefaultStripPadding
}

// WithPadLetter sets the letter used to pad the final plaintext block.
// The letter is stored uppercase. Panics with a stable message when r is
// not a Latin letter.
func WithPadLetter(r rune) Option {
	if !IsLetter(r) {
		panic(panicPadLetterInvalid)
	}
	up := unicode.ToUpper(r)

	return func(o *Options) { o.pad = up }
}

// WithStripPadding toggles removal of trailing pad letters after decryption.
// With false, Decrypt returns every recovered letter, padding included,
// which makes the round trip exact for plaintexts ending in the pad letter.
func WithStripPadding(strip bool) Option {
	return func(o *Options) { o.stripPadding = strip }
}

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pad:          DefaultPadLetter,
		stripPadding: DefaultStripPadding,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
