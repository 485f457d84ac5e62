// SPDX-License-Identifier: MIT

// Command hill encrypts and decrypts text with the Hill cipher.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/hill/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
