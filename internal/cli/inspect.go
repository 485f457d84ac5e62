// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hill/hill"
)

// newInspectCommand creates `hill inspect`.
func newInspectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the key matrix, its determinant and inverse mod 26",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return classify(runInspect(app))
		},
	}
}

func runInspect(app *App) error {
	c, err := app.newCipher()
	if err != nil {
		return err
	}
	det, err := hill.DeterminantMod26(c.Key())
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Key matrix (m=%d)", c.Dim())) + "\n")
	sb.WriteString(renderMatrix(c.Key().String()) + "\n")
	sb.WriteString(label("det mod 26", ValueStyle.Render(fmt.Sprint(det))) + "\n")

	inv, err := c.Inverse()
	if err != nil {
		sb.WriteString(label("det⁻¹ mod 26", WarningStyle.Render("none")) + "\n")
		sb.WriteString(WarningStyle.Render("Key is not invertible: it can encrypt but not decrypt.") + "\n")
	} else {
		detInv, err := hill.ModularInverse(int(det))
		if err != nil {
			return err
		}
		sb.WriteString(label("det⁻¹ mod 26", ValueStyle.Render(fmt.Sprint(detInv))) + "\n")
		sb.WriteString(TitleStyle.Render("Inverse key matrix") + "\n")
		sb.WriteString(renderMatrix(inv.String()) + "\n")
	}

	_, err = fmt.Fprint(app.stdout, sb.String())

	return err
}
