// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEncryptCommand creates `hill encrypt [text...]`.
func newEncryptCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt plaintext (args or stdin)",
		Long: `Encrypt plaintext with the configured key.

Non-letters are dropped, letters are uppercased and the last block is padded
with the pad letter. The key need not be invertible to encrypt.`,
		Example: "  hill encrypt --key LDIH JULY\n  echo 'attack at dawn' | hill encrypt -k GYBNQURVK -m 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			return classify(runEncrypt(app, args))
		},
	}
}

// newDecryptCommand creates `hill decrypt [text...]`.
func newDecryptCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt ciphertext (args or stdin)",
		Long: `Decrypt ciphertext with the inverse of the configured key.

The ciphertext must contain letters only and its length must be a multiple
of the block size. Trailing pad letters are removed from the result unless
--strip-padding=false is given; a plaintext that really ended in the pad
letter loses it.`,
		Example: "  hill decrypt --key LDIH DELW\n  hill decrypt -k GYBNQURVK -m 3 --strip-padding=false PWY",
		RunE: func(cmd *cobra.Command, args []string) error {
			return classify(runDecrypt(app, args))
		},
	}
	cmd.Flags().Bool("strip-padding", true, "remove trailing pad letters after decryption")

	return cmd
}

func runEncrypt(app *App, args []string) error {
	c, err := app.newCipher()
	if err != nil {
		return err
	}
	text, err := app.readText(args)
	if err != nil {
		return err
	}
	out, err := c.Encrypt(text)
	if err != nil {
		return err
	}
	app.logger.Debug("encrypted", "dim", c.Dim(), "letters", len(out))
	_, err = fmt.Fprintln(app.stdout, out)

	return err
}

func runDecrypt(app *App, args []string) error {
	c, err := app.newCipher()
	if err != nil {
		return err
	}
	text, err := app.readText(args)
	if err != nil {
		return err
	}
	out, err := c.Decrypt(text)
	if err != nil {
		return err
	}
	app.logger.Debug("decrypted", "dim", c.Dim(), "letters", len(out))
	_, err = fmt.Fprintln(app.stdout, out)

	return err
}
