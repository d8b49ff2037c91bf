package commands

import (
	"github.com/spf13/cobra"

	"github.com/georgek/pathdo/internal/app"
)

func convertCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "convert <csv-file> <account-name> <ledger-output>",
		Short: "Convert a CSV bank export into Ledger entries",
		Long: "Reads date, payee, and amount from the CSV file and prompts for\n" +
			"the balancing account of each transaction. With a training journal\n" +
			"(-t) the known account names drive completion and the most likely\n" +
			"account is pre-filled.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.CSVPath = args[0]
			opts.AccountName = args[1]
			opts.OutputPath = args[2]
			return app.New(opts).Run()
		},
	}

	cmd.Flags().StringVarP(&opts.TrainingPath, "training-data", "t", "",
		"Ledger file to use for account names and suggestions")
	cmd.Flags().StringVarP(&opts.Currency, "currency", "c", "",
		"currency symbol to use (default from config)")
	cmd.Flags().IntVarP(&opts.MaxAgeDays, "max-age", "m", 0,
		"maximum age, in days, of journal entries to use (default from config)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	return cmd
}
