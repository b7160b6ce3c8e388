package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/teller-in-go/pkg/config"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store/flatfile"
)

var rootCmd = &cobra.Command{
	Use:   "tellerctl",
	Short: "Flat-file bank teller",
	Long:  `An interactive teller for named, password-protected accounts kept in a flat-file ledger.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote: true,
	})

	Execute()
}

// loadConfig loads and validates the configuration and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	return cfg, nil
}

// openStore opens the ledger named by the configuration and loads it into a
// registry. A missing ledger file is informational only; the registry starts
// empty and every operation stays available.
func openStore(cfg *config.Config, out io.Writer) (*flatfile.Store, error) {
	accounts := flatfile.New(cfg.LedgerPath)
	if err := accounts.Load(); err != nil {
		if errors.Is(err, store.ErrNoStore) {
			fmt.Fprintln(out, "No existing account data found!")
			return accounts, nil
		}
		return nil, err
	}
	return accounts, nil
}
