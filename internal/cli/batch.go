// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hill/hill"
)

// Batch modes.
const (
	ModeEncrypt = "encrypt"
	ModeDecrypt = "decrypt"
)

// ErrInvalidMode is returned for a --mode other than encrypt or decrypt.
var ErrInvalidMode = errors.New("cli: mode must be encrypt or decrypt")

// newBatchCommand creates `hill batch`.
func newBatchCommand(app *App) *cobra.Command {
	var mode, inPath, outPath string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encrypt or decrypt a file line by line",
		Long: `Process every line of the input independently with one shared key.

Lines are handled concurrently by up to --workers goroutines and written in
input order. If any line fails, nothing is written and the failing line
number is reported.`,
		Example: "  hill batch -k LDIH --in plain.txt --out cipher.txt\n  hill batch -k LDIH --mode decrypt < cipher.txt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classify(runBatch(cmd.Context(), app, mode, inPath, outPath))
		},
	}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", ModeEncrypt, "encrypt or decrypt")
	f.StringVar(&inPath, "in", "-", "input file (- for stdin)")
	f.StringVar(&outPath, "out", "-", "output file (- for stdout)")
	f.Int("workers", 4, "maximum concurrent lines")
	f.Bool("strip-padding", true, "remove trailing pad letters after decryption")

	return cmd
}

func runBatch(ctx context.Context, app *App, mode, inPath, outPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if mode != ModeEncrypt && mode != ModeDecrypt {
		return fmt.Errorf("%q: %w", mode, ErrInvalidMode)
	}
	c, err := app.newCipher()
	if err != nil {
		return err
	}
	if mode == ModeDecrypt && !c.Invertible() {
		_, err = c.Inverse()
		return err
	}

	lines, err := readLines(app, inPath)
	if err != nil {
		return err
	}
	results, err := processLines(ctx, c, mode, lines, app.cfg.Workers)
	if err != nil {
		return err
	}
	app.logger.Debug("batch done", "mode", mode, "lines", len(lines), "workers", app.cfg.Workers)

	return writeLines(app, outPath, results)
}

// processLines transforms lines concurrently; results keep input order.
// The first failure cancels the remaining work.
func processLines(ctx context.Context, c *hill.Cipher, mode string, lines []string, workers int) ([]string, error) {
	results := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				out string
				err error
			)
			if mode == ModeDecrypt {
				out, err = c.Decrypt(strings.TrimSpace(line))
			} else {
				out, err = c.Encrypt(line)
			}
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func readLines(app *App, path string) ([]string, error) {
	var r io.Reader = app.stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return lines, nil
}

// writeLines emits all results in one write, so a failed batch leaves the
// output untouched.
func writeLines(app *App, path string, results []string) error {
	var sb strings.Builder
	for _, s := range results {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	if path == "-" || path == "" {
		_, err := io.WriteString(app.stdout, sb.String())
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
