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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/eslsoft/allowdns/internal/adapter/repository"
	"github.com/eslsoft/allowdns/internal/infrastructure/config"
	repo "github.com/eslsoft/allowdns/internal/repository"
	"github.com/eslsoft/allowdns/pkg/allowlist"
)

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [entry...]",
		Short: "Print allow-list entries trimmed, lowercased and with the strip pattern removed",
		Long: `normalize prints one normalized entry per line. Entries come from the
arguments, from --file (use - for stdin), or from allowlist.entries in the config.
Empty entries are dropped; order is preserved.`,
		Example: `  allowdns normalize " Foo" BAR
  allowdns normalize --strip-prefix user- user-Alice user-BOB
  allowdns normalize --strip-pattern '\.' --global -f hosts.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			unique, _ := cmd.Flags().GetBool("unique")
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			c, err := loadContainer(cmd)
			if err != nil {
				return err
			}

			source := entrySource(args, file, c.Config)
			raw, err := source.List(cmd.Context())
			if err != nil {
				return err
			}

			entries := c.Allowlist.Normalize(cmd.Context(), raw)
			if unique {
				entries = lo.Uniq(entries)
			}
			c.Logger.WithField("in", len(raw)).WithField("out", len(entries)).Debug("normalized entries")

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, entries)
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "read entries from file, one per line (- for stdin)")
	cmd.Flags().String("strip-prefix", "", "literal prefix removed from each entry")
	cmd.Flags().String("strip-pattern", "", "regular expression removed from each entry (overrides --strip-prefix)")
	cmd.Flags().Bool("global", false, "remove every match of --strip-pattern instead of the first")
	cmd.Flags().Bool("unique", false, "drop duplicate entries after normalization")
	addOutputFlag(cmd)
	return cmd
}

// entrySource picks where raw entries come from: arguments, then --file, then config.
func entrySource(args []string, file string, cfg *config.Config) repo.AllowlistRepository {
	switch {
	case len(args) > 0:
		return repository.NewStaticAllowlistRepository(allowlist.Strings(args))
	case file != "":
		return repository.NewFileAllowlistRepository(file)
	default:
		return repository.NewConfigAllowlistRepository(cfg)
	}
}
