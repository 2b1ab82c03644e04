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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eslsoft/allowdns/internal/entity"
)

func newDNSSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns-setup",
		Short: "Print the DNS records required to allow a domain",
		Example: `  allowdns dns-setup --domain example.com
  allowdns dns-setup --domain example.com --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, _ := cmd.Flags().GetString("domain")
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			setup, err := c.DNSSetup.Build(cmd.Context(), domain)
			if err != nil {
				return fmt.Errorf("dns setup: %w", err)
			}
			c.Logger.WithField("domain", setup.Domain).Info("rendering dns setup")

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, setup)
			}
			printDNSSetup(cmd.OutOrStdout(), setup)
			return nil
		},
	}

	cmd.Flags().StringP("domain", "d", "", "domain to set up (required)")
	cmd.Flags().String("target", "", "CNAME target (overrides dns.target)")
	cmd.Flags().Int("ttl", 0, "record TTL in seconds (overrides dns.ttl)")
	addOutputFlag(cmd)
	cobra.CheckErr(cmd.MarkFlagRequired("domain"))
	return cmd
}

func printDNSSetup(w io.Writer, setup *entity.DNSSetup) {
	if setup.Display != "" {
		fmt.Fprintf(w, "DNS setup for %s (%s)\n\n", setup.Display, setup.Domain)
	} else {
		fmt.Fprintf(w, "DNS setup for %s\n\n", setup.Domain)
	}
	fmt.Fprintln(w, "Create the following records at your DNS provider:")
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(setup.Records))
	for _, r := range setup.Records {
		rows = append(rows, r.Row())
	}
	writeTable(w, []string{"Type", "Name", "Value", "TTL"}, rows)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Verification token: %s\n", setup.Token)
	fmt.Fprintln(w, "DNS changes can take up to 48 hours to propagate.")
}
