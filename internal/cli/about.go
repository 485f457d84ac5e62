// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const aboutMarkdown = `# The Hill cipher

Letters A-Z are mapped to 0..25. The key is m² letters read row by row
into an m×m matrix **K**; each block of m plaintext letters is a column
vector **p** and encrypts to **K·p mod 26**.

Decryption multiplies by **K⁻¹ mod 26**, which exists only when det(K)
is coprime to 26 (odd and not a multiple of 13).

## Text handling

- Encryption drops every non-letter and uppercases the rest.
- The final block is padded with the pad letter (default X).
- Decryption removes *all* trailing pad letters, so a plaintext that
  really ended in X loses it. Use ` + "`--strip-padding=false`" + ` to keep them.

## Warning

This is a classical cipher for teaching. It falls to a known-plaintext
attack with m² letters and must not protect real data.
`

// newAboutCommand creates `hill about`.
func newAboutCommand(app *App) *cobra.Command {
	var plain bool
	var width int
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Explain how the cipher works and its limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := renderAbout(plain, width)
			if err != nil {
				return classify(err)
			}
			_, err = fmt.Fprint(app.stdout, out)

			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "word-wrap width")

	return cmd
}

// renderAbout renders the explanation with glamour unless plain is set.
func renderAbout(plain bool, width int) (string, error) {
	if plain {
		return aboutMarkdown, nil
	}

	var rendererOpts []glamour.TermRendererOption
	rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	if width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}

	return renderer.Render(aboutMarkdown)
}
