// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hill/hill"
)

// exercise is one worked example replayed by `hill demo`.
type exercise struct {
	title     string
	plaintext string
	key       string
	dim       int
}

// demoExercises are the two classic textbook exercises.
var demoExercises = []exercise{
	{title: "Exercise 1: encrypt the word JULY (m = 2)", plaintext: "JULY", key: "LDIH", dim: 2},
	{title: "Exercise 2: encrypt and decrypt ACT (m = 3)", plaintext: "ACT", key: "GYBNQURVK", dim: 3},
}

// newDemoCommand creates `hill demo`.
func newDemoCommand(app *App) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the two classic Hill cipher exercises",
		Long: `Walk through two worked exercises, printing the key matrix, its inverse,
the ciphertext and the recovered plaintext.

With --interactive each plaintext and key is read from stdin; an empty
answer keeps the suggested value. A failing exercise is reported and the
demo moves on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classify(runDemo(app, interactive))
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for plaintext and key")

	return cmd
}

func runDemo(app *App, interactive bool) error {
	var in *bufio.Scanner
	if interactive {
		in = bufio.NewScanner(app.stdin)
	}
	w := app.stdout

	if _, err := fmt.Fprintln(w, TitleStyle.Render("Hill cipher demo")); err != nil {
		return err
	}
	for _, ex := range demoExercises {
		if interactive {
			ex.plaintext = prompt(app, in, fmt.Sprintf("Enter plaintext (e.g., %s): ", ex.plaintext), ex.plaintext)
			ex.key = prompt(app, in, fmt.Sprintf("Enter key (%d letters, e.g., %s): ", ex.dim*ex.dim, ex.key), ex.key)
		}
		report := runExercise(app, ex)
		if _, err := fmt.Fprint(w, "\n"+report); err != nil {
			return err
		}
	}

	return nil
}

// prompt writes question and returns the next stdin line, or def when the
// line is empty or input is exhausted.
func prompt(app *App, in *bufio.Scanner, question, def string) string {
	fmt.Fprint(app.stdout, LabelStyle.Render(question))
	if !in.Scan() {
		fmt.Fprintln(app.stdout)
		return def
	}
	if answer := strings.TrimSpace(in.Text()); answer != "" {
		return answer
	}

	return def
}

// runExercise renders one exercise; errors are rendered, not returned.
func runExercise(app *App, ex exercise) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(ex.title) + "\n")

	fail := func(err error) string {
		app.logger.Debug("exercise failed", "key", ex.key, "err", err)
		msg := err.Error()
		if errors.Is(err, hill.ErrNotInvertible) {
			msg = "key matrix is not invertible mod 26"
		}
		sb.WriteString(ErrorStyle.Render("Error: ") + msg + "\n")

		return sb.String()
	}

	c, err := hill.New(ex.key, ex.dim, app.options()...)
	if err != nil {
		return fail(err)
	}
	sb.WriteString(LabelStyle.Render("Key matrix:") + "\n" + renderMatrix(c.Key().String()) + "\n")

	inv, err := c.Inverse()
	if err != nil {
		return fail(err)
	}
	sb.WriteString(LabelStyle.Render("Inverse key matrix:") + "\n" + renderMatrix(inv.String()) + "\n")

	ct, err := c.Encrypt(ex.plaintext)
	if err != nil {
		return fail(err)
	}
	sb.WriteString(label("Plaintext", ex.plaintext) + "\n")
	sb.WriteString(label("Ciphertext", ValueStyle.Render(ct)) + "\n")

	pt, err := c.Decrypt(ct)
	if err != nil {
		return fail(err)
	}
	sb.WriteString(label("Decrypted plaintext", SuccessStyle.Render(pt)) + "\n")

	return sb.String()
}
