package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountListCmd represents the account list command
var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long: `List account numbers and holder names in ledger order.

Passwords and balances are never printed.

Example:
  tellerctl account list`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listAccounts(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list accounts: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	accountCmd.AddCommand(accountListCmd)
}

func listAccounts() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := openStore(cfg, os.Stdout)
	if err != nil {
		return err
	}

	all := accounts.List()
	if len(all) == 0 {
		fmt.Println("No accounts")
		return nil
	}

	fmt.Printf("%-12s %s\n", "NUMBER", "NAME")
	for _, a := range all {
		fmt.Printf("%-12d %s\n", a.Number, a.Name)
	}
	return nil
}
