package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// accountCreateCmd represents the account create command
var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Create an account without entering the interactive menu.

The full ledger is rewritten immediately after the account is added. The
account number must not already be in use.

Example:
  tellerctl account create --number 1001 --name Ann --password pw1 --balance 500`,
	Run: func(cmd *cobra.Command, args []string) {
		number, _ := cmd.Flags().GetInt("number")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		balance, _ := cmd.Flags().GetFloat64("balance")

		if err := createAccount(number, name, password, balance); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create account: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created account %d for '%s'\n", number, name)
	},
}

func init() {
	accountCmd.AddCommand(accountCreateCmd)
	accountCreateCmd.Flags().IntP("number", "N", 0, "Account number")
	accountCreateCmd.Flags().StringP("name", "n", "", "Account holder name")
	accountCreateCmd.Flags().StringP("password", "p", "", "Account password")
	accountCreateCmd.Flags().Float64P("balance", "b", 0, "Initial balance")
	_ = accountCreateCmd.MarkFlagRequired("number")
	_ = accountCreateCmd.MarkFlagRequired("name")
	_ = accountCreateCmd.MarkFlagRequired("password")
}

func createAccount(number int, name, password string, balance float64) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := openStore(cfg, os.Stdout)
	if err != nil {
		return err
	}

	_, err = accounts.Create(number, name, password, balance)
	return err
}
