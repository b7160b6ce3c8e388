package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the ledger file and reload it when it changes",
	Long: `Watch the ledger file and reload the registry when another process
rewrites it. Each reload prints the number of accounts read.

Example:
  tellerctl watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchLedger(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch ledger: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchLedger() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := openStore(cfg, os.Stdout)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Saves replace the ledger by renaming a temp file over it, which
	// retires the old inode. Watch the directory and filter by name instead
	// of watching the file itself.
	dir := filepath.Dir(accounts.Path())
	base := filepath.Base(accounts.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Printf("Watching %s for ledger changes\n", accounts.Path())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			fmt.Printf("[%s] Ledger modified, reloading...\n", time.Now().Format(time.RFC3339))
			if err := accounts.Load(); err != nil {
				if errors.Is(err, store.ErrNoStore) {
					fmt.Println("Ledger removed; registry now empty")
					continue
				}
				fmt.Fprintf(os.Stderr, "Error reloading ledger: %v\n", err)
				continue
			}
			fmt.Printf("Ledger reloaded: %d account(s)\n", len(accounts.List()))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
