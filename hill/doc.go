// Package hill implements the Hill cipher over the 26-letter Latin alphabet.
//
// The hill package provides:
//
//   - An alphabet codec between letters and residues in [0,26).
//   - A text framer that normalizes input into fixed-length blocks, padding
//     the last block with 'X'.
//   - Key construction from a string of m² letters and its inverse over Z/26,
//     both computed with the exact-integer kernels of the matrix package.
//   - A direction-agnostic block transformer, plus Encrypt/Decrypt and a
//     reusable Cipher value.
//
// The Hill cipher is a teaching artifact. It offers no resistance to
// known-plaintext attacks and must not be used to protect anything.
//
// Decryption removes every trailing pad letter from the whole recovered
// string, so a plaintext that genuinely ends in 'X' loses those letters.
// Use WithStripPadding(false) to keep them.
//
// Everything here is pure: no I/O, no logging, no shared mutable state. A
// *Cipher is immutable after New and safe for concurrent use.
package hill
