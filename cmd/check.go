/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errDenied = errors.New("value is not allowed")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <value>",
		Short: "Check whether a value is on the configured allow-list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, _ := cmd.Flags().GetBool("exit-code")
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			d, err := c.Allowlist.Check(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("check %q: %w", args[0], err)
			}

			if format != outputText {
				if err := writeStructured(cmd.OutOrStdout(), format, d); err != nil {
					return err
				}
			} else {
				verdict := "denied"
				if d.Allowed {
					verdict = "allowed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", verdict, d.Normalized, d.Reason())
			}

			if exitCode && !d.Allowed {
				return errDenied
			}
			return nil
		},
	}

	cmd.Flags().String("strip-prefix", "", "literal prefix removed before comparison")
	cmd.Flags().String("strip-pattern", "", "regular expression removed before comparison")
	cmd.Flags().Bool("global", false, "remove every match of --strip-pattern instead of the first")
	cmd.Flags().String("rule", "", "CEL rule over `entry` admitting values not listed explicitly")
	cmd.Flags().Bool("exit-code", false, "return an error when the value is denied")
	addOutputFlag(cmd)
	return cmd
}
