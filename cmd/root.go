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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/allowdns/internal/app"
)

// NewRootCommand builds the allowdns command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "allowdns",
		Short: "Normalize allow-lists and print DNS setup instructions",
		Long: `allowdns keeps allow-list entries comparable (trimmed, lowercased, optional
prefix removal) and prints the DNS records a domain owner has to create.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./allowdns.yaml or ./config/allowdns.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	rootCmd.AddCommand(
		newDNSSetupCmd(),
		newNormalizeCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// flagKeys maps flag names to the viper keys they override.
var flagKeys = map[string]string{
	"config":        "config",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"strip-prefix":  "allowlist.strip_prefix",
	"strip-pattern": "allowlist.strip_pattern",
	"global":        "allowlist.strip_global",
	"rule":          "allowlist.rule",
	"target":        "dns.target",
	"ttl":           "dns.ttl",
}

func bindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func loadContainer(cmd *cobra.Command) (*app.Container, error) {
	c, err := app.Initialize()
	if err != nil {
		return nil, err
	}
	c.Logger.WithField("command", cmd.CommandPath()).Debug("container ready")
	return c, nil
}
