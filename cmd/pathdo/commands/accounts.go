package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/georgek/pathdo/internal/ledger"
)

func accountsCmd() *cobra.Command {
	var (
		accountName string
		maxAgeDays  int
	)

	cmd := &cobra.Command{
		Use:   "accounts <ledger-file>",
		Short: "List the account names a journal would contribute to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var begin time.Time
			if maxAgeDays > 0 {
				begin = time.Now().AddDate(0, 0, -maxAgeDays)
			}
			accounts, pairs, err := ledger.ParseFile(f, accountName, begin)
			if err != nil {
				return err
			}
			for _, account := range accounts {
				fmt.Println(account)
			}
			color.New(color.Faint).Fprintf(cmd.ErrOrStderr(),
				"%d accounts, %d payee pairs\n", len(accounts), len(pairs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountName, "account", "a", "",
		"account to exclude (the journal's own account)")
	cmd.Flags().IntVarP(&maxAgeDays, "max-age", "m", 0,
		"maximum age, in days, of journal entries to consider")
	return cmd
}
