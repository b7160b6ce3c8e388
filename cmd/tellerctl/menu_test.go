package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/teller-in-go/pkg/store/flatfile"
)

func setupMenuEnv(t *testing.T) string {
	t.Helper()

	ledger := filepath.Join(t.TempDir(), "accounts.dat")
	t.Setenv("TELLER_CONFIG_PATH", t.TempDir())
	t.Setenv("TELLER_LEDGER_PATH", ledger)
	return ledger
}

// script joins menu inputs into the line-per-prompt form runMenu reads.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRunMenu_CreateLoginOperateExit(t *testing.T) {
	ledger := setupMenuEnv(t)

	in := strings.NewReader(script(
		"1", // Create Account
		"Ann",
		"1001",
		"pw1",
		"500",
		"2", // Login
		"1001",
		"pw1",
		"1", // Deposit
		"250",
		"2", // Withdraw
		"900", // more than the balance
		"2",
		"100",
		"3", // Show Info
		"4", // Logout
		"3", // Exit
	))
	var out bytes.Buffer

	require.NoError(t, runMenu(in, &out))

	output := out.String()
	assert.Contains(t, output, "No existing account data found!")
	assert.Contains(t, output, "Account created successfully!")
	assert.Contains(t, output, "Login successful!")
	assert.Contains(t, output, "Deposited: $250")
	assert.Contains(t, output, "Insufficient balance!")
	assert.Contains(t, output, "Withdrawn: $100")
	assert.Contains(t, output, "Account Holder: Ann")
	assert.Contains(t, output, "Account Number: 1001")
	assert.Contains(t, output, "Balance: $650")
	assert.Contains(t, output, "Logged out.")
	assert.Contains(t, output, "Goodbye!")

	// The exit saved the deposit and withdrawal
	accounts := flatfile.New(ledger)
	require.NoError(t, accounts.Load())
	account, err := accounts.Find(1001)
	require.NoError(t, err)
	assert.Equal(t, 650.0, account.Balance)
}

func TestRunMenu_LoginFailed(t *testing.T) {
	ledger := setupMenuEnv(t)

	seed := flatfile.New(ledger)
	_, err := seed.Create(1001, "Ann", "pw1", 500.0)
	require.NoError(t, err)

	in := strings.NewReader(script(
		"2", // Login with the wrong password
		"1001",
		"wrong",
		"2", // Login with the right one
		"1001",
		"pw1",
		"4",
		"3",
	))
	var out bytes.Buffer

	require.NoError(t, runMenu(in, &out))

	output := out.String()
	assert.Contains(t, output, "Login failed. Check credentials!")
	assert.Contains(t, output, "Login successful!")
	assert.NotContains(t, output, "No existing account data found!")
}

func TestRunMenu_DuplicateAccountNumber(t *testing.T) {
	setupMenuEnv(t)

	in := strings.NewReader(script(
		"1",
		"Bo",
		"2002",
		"pw2",
		"10",
		"1",
		"Bo2",
		"2002",
		"pw3",
		"20",
		"3",
	))
	var out bytes.Buffer

	require.NoError(t, runMenu(in, &out))
	assert.Contains(t, out.String(), "Account number already in use!")
}

func TestRunMenu_InvalidChoicesAndEOF(t *testing.T) {
	setupMenuEnv(t)

	// Unknown menu option, then the stream ends without an explicit Exit;
	// the teller still saves and says goodbye.
	in := strings.NewReader(script("9"))
	var out bytes.Buffer

	require.NoError(t, runMenu(in, &out))
	assert.Contains(t, out.String(), "Invalid option!")
	assert.Contains(t, out.String(), "Goodbye!")
}
