// SPDX-License-Identifier: MIT

// Package cli implements the hill command-line driver.
//
// The driver is a thin caller of package hill: it resolves configuration
// (internal/config), reads text from arguments, stdin or files, and prints
// results. All cipher semantics live in the library.
//
// Commands:
//   - encrypt, decrypt: one text from args or stdin.
//   - inspect: key matrix, determinant and inverse over Z/26.
//   - demo: the two classic exercises (JULY/LDIH and ACT/GYBNQURVK).
//   - batch: line-wise processing with a bounded worker pool.
//   - config: the resolved configuration and default file path.
//   - about: a rendered explanation of the cipher and its limits.
package cli
