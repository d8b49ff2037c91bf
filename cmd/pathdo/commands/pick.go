package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgek/pathdo/internal/config"
	"github.com/georgek/pathdo/internal/editor"
	"github.com/georgek/pathdo/internal/hierarchy"
	"github.com/georgek/pathdo/internal/logger"
	"github.com/georgek/pathdo/internal/prompt"
)

// pickCmd is the prompt over a directory tree instead of account names.
// Mostly useful for trying the completion interactively; prints the picked
// path.
func pickCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "pick [root]",
		Short: "Interactively pick a file under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logger.Init(debug); err != nil {
				return err
			}
			defer logger.Close()

			picked, ok, err := prompt.Run(hierarchy.NewDir(root), prompt.Options{
				Prompt:       root + "> ",
				History:      editor.NewHistory(cfg.Prompt.HistorySize),
				KillRingSize: cfg.Prompt.KillRingSize,
				Keymap:       cfg.Keymap,
			})
			if err != nil {
				return err
			}
			if ok {
				fmt.Println(picked)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}
