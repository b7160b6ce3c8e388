package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/teller-in-go/pkg/authenticator/authn"
	"github.com/doodlesbykumbi/teller-in-go/pkg/session"
	"github.com/doodlesbykumbi/teller-in-go/pkg/store"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive teller menu",
	Long: `Run the interactive teller menu.

The ledger is loaded on startup and saved after every account creation and
once on exit. Logging in opens an authenticated session with deposit,
withdraw, show-info and logout operations.

Example:
  tellerctl menu`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMenu(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Teller failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(in io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := openStore(cfg, out)
	if err != nil {
		return err
	}

	controller := session.NewController(accounts, authn.New(accounts))
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "\n--- Main Menu ---\n1. Create Account\n2. Login\n3. Exit\nEnter your choice: ")
		choice, ok := readLine(sc)
		if !ok {
			// EOF on stdin behaves like Exit
			break
		}

		switch choice {
		case "1":
			createInteractive(sc, out, accounts)
		case "2":
			loginInteractive(sc, out, controller)
		case "3":
			if err := accounts.Save(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option!")
		}
	}

	if err := accounts.Save(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye!")
	return nil
}

func createInteractive(sc *bufio.Scanner, out io.Writer, accounts store.AccountsStore) {
	fmt.Fprint(out, "Enter your name: ")
	name, ok := readLine(sc)
	if !ok {
		return
	}

	number, ok := promptInt(sc, out, "Enter account number: ")
	if !ok {
		return
	}

	fmt.Fprint(out, "Set your password: ")
	password, ok := readLine(sc)
	if !ok {
		return
	}

	balance, ok := promptFloat(sc, out, "Enter initial balance: ")
	if !ok {
		return
	}

	if _, err := accounts.Create(number, name, password, balance); err != nil {
		if errors.Is(err, store.ErrDuplicateAccount) {
			fmt.Fprintln(out, "Account number already in use!")
			return
		}
		fmt.Fprintf(out, "Failed to create account: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Account created successfully!")
}

func loginInteractive(sc *bufio.Scanner, out io.Writer, controller *session.Controller) {
	number, ok := promptInt(sc, out, "Enter account number: ")
	if !ok {
		return
	}

	fmt.Fprint(out, "Enter password: ")
	password, ok := readLine(sc)
	if !ok {
		return
	}

	if err := controller.Login(context.Background(), number, password); err != nil {
		fmt.Fprintln(out, "Login failed. Check credentials!")
		return
	}
	fmt.Fprintln(out, "Login successful!")

	sessionLoop(sc, out, controller)
}

// sessionLoop drives the authenticated sub-menu until logout or EOF.
func sessionLoop(sc *bufio.Scanner, out io.Writer, controller *session.Controller) {
	defer func() {
		if controller.State() == session.StateAuthenticated {
			_ = controller.Logout()
		}
	}()

	for {
		fmt.Fprint(out, "\n1. Deposit\n2. Withdraw\n3. Show Info\n4. Logout\nEnter your choice: ")
		choice, ok := readLine(sc)
		if !ok {
			return
		}

		switch choice {
		case "1":
			amount, ok := promptFloat(sc, out, "Enter amount to deposit: ")
			if !ok {
				return
			}
			if _, err := controller.Deposit(amount); err != nil {
				fmt.Fprintf(out, "Deposit failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Deposited: $%g\n", amount)
		case "2":
			amount, ok := promptFloat(sc, out, "Enter amount to withdraw: ")
			if !ok {
				return
			}
			if _, err := controller.Withdraw(amount); err != nil {
				if errors.Is(err, store.ErrInsufficientFunds) {
					fmt.Fprintln(out, "Insufficient balance!")
					continue
				}
				fmt.Fprintf(out, "Withdrawal failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Withdrawn: $%g\n", amount)
		case "3":
			account, err := controller.ShowInfo()
			if err != nil {
				fmt.Fprintf(out, "Failed to show account: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "\nAccount Holder: %s\n", account.Name)
			fmt.Fprintf(out, "Account Number: %d\n", account.Number)
			fmt.Fprintf(out, "Balance: $%g\n", account.Balance)
		case "4":
			_ = controller.Logout()
			fmt.Fprintln(out, "Logged out.")
			return
		default:
			fmt.Fprintln(out, "Invalid choice!")
		}
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func promptInt(sc *bufio.Scanner, out io.Writer, prompt string) (int, bool) {
	for {
		fmt.Fprint(out, prompt)
		line, ok := readLine(sc)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid number!")
			continue
		}
		return n, true
	}
}

func promptFloat(sc *bufio.Scanner, out io.Writer, prompt string) (float64, bool) {
	for {
		fmt.Fprint(out, prompt)
		line, ok := readLine(sc)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(out, "Invalid amount!")
			continue
		}
		return f, true
	}
}
