// Package commands defines the pathdo command line.
package commands

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:     "pathdo",
		Short:   "Semi-automatic CSV to Ledger conversion",
		Long:    "pathdo turns CSV bank exports into Ledger journal entries,\nprompting interactively for the account of each transaction with\nhierarchical completion and history.",
		Version: version,
	}
	root.AddCommand(convertCmd())
	root.AddCommand(accountsCmd())
	root.AddCommand(pickCmd())
	return root
}
