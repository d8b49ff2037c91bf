// Package app wires configuration, logging, the training-journal parser, the
// completion hierarchy, and the interactive prompt into the conversion run.
package app

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/manifoldco/promptui"

	"github.com/georgek/pathdo/internal/config"
	"github.com/georgek/pathdo/internal/csvsource"
	"github.com/georgek/pathdo/internal/editor"
	"github.com/georgek/pathdo/internal/hierarchy"
	"github.com/georgek/pathdo/internal/ledger"
	"github.com/georgek/pathdo/internal/logger"
	"github.com/georgek/pathdo/internal/prompt"
)

// Options come from the command line; zero values fall back to config.
type Options struct {
	CSVPath      string
	AccountName  string
	OutputPath   string
	TrainingPath string
	Currency     string
	MaxAgeDays   int
	Debug        bool
}

// App is the top-level runtime for one conversion.
type App struct {
	opts Options
}

func New(opts Options) *App {
	return &App{opts: opts}
}

var dim = color.New(color.Faint)

func (a *App) Run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(a.opts.Debug); err != nil {
		return err
	}
	defer logger.Close()

	currency := a.opts.Currency
	if currency == "" {
		currency = cfg.Ledger.Currency
	}
	maxAgeDays := a.opts.MaxAgeDays
	if maxAgeDays <= 0 {
		maxAgeDays = cfg.Ledger.MaxAgeDays
	}

	csvFile, err := os.Open(a.opts.CSVPath)
	if err != nil {
		return err
	}
	out, err := a.createOutput()
	if err != nil {
		csvFile.Close()
		return err
	}
	defer func() {
		result := multierror.Append(nil, err)
		result = multierror.Append(result, out.Close())
		result = multierror.Append(result, csvFile.Close())
		err = result.ErrorOrNil()
	}()

	accounts, suggester, err := a.loadTraining(maxAgeDays)
	if err != nil {
		return err
	}
	logger.Info("training loaded", "accounts", len(accounts))

	tree := hierarchy.NewSet(accounts, cfg.Prompt.Separator)
	history := editor.NewHistory(cfg.Prompt.HistorySize)

	w := bufio.NewWriter(out)
	reader := csvsource.NewReader(csvFile)
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}

	written := 0
	for _, rec := range records {
		initial := ""
		if suggester != nil {
			initial = suggester.Suggest(rec.Payee)
		}
		typed, ok, err := prompt.Run(tree, prompt.Options{
			Prompt:       fmt.Sprintf("[%s] %s (%s): ", rec.Date, rec.Payee, rec.Amount),
			Initial:      initial,
			Forbidden:    cfg.Prompt.Forbidden,
			History:      history,
			KillRingSize: cfg.Prompt.KillRingSize,
			Keymap:       cfg.Keymap,
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		history.Add(typed)
		tree.Add(typed)

		entry, err := ledger.FormatTransaction(rec.Date, rec.Payee, typed,
			a.opts.AccountName, rec.Amount, currency)
		if err != nil {
			return fmt.Errorf("record %q: %w", rec.Payee, err)
		}
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return err
		}
		written++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info("conversion finished", "written", written, "total", len(records))
	dim.Printf("Wrote %d of %d entries to %s\n", written, len(records), a.opts.OutputPath)
	fmt.Println("Bye.")
	return nil
}

// createOutput opens the output file, asking before clobbering an existing
// one.
func (a *App) createOutput() (*os.File, error) {
	if _, err := os.Stat(a.opts.OutputPath); err == nil {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("%s exists, overwrite", a.opts.OutputPath),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			return nil, fmt.Errorf("not overwriting %s", a.opts.OutputPath)
		}
	}
	return os.Create(a.opts.OutputPath)
}

// loadTraining parses the training journal, if one was given, into the
// account set for completion and the payee suggestion table.
func (a *App) loadTraining(maxAgeDays int) ([]string, *ledger.Suggester, error) {
	if a.opts.TrainingPath == "" {
		return nil, nil, nil
	}
	f, err := os.Open(a.opts.TrainingPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	begin := time.Now().AddDate(0, 0, -maxAgeDays)
	accounts, pairs, err := ledger.ParseFile(f, a.opts.AccountName, begin)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", a.opts.TrainingPath, err)
	}
	return accounts, ledger.NewSuggester(pairs), nil
}
