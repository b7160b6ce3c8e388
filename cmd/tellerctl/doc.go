// Package main provides tellerctl, an interactive flat-file bank teller.
//
// The teller keeps named, password-protected accounts in a plain text ledger
// file, loaded at startup and rewritten on every account creation and on
// exit. A user authenticates against one account and performs deposits,
// withdrawals and balance inspection inside that session.
//
// # Architecture
//
// The program is organized into several packages:
//
//   - pkg/store: the account registry contract
//   - pkg/store/flatfile: registry implementation and ledger file round-trip
//   - pkg/session: the anonymous/authenticated session state machine
//   - pkg/authenticator: password authentication against the registry
//   - pkg/model: domain records
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run the interactive menu
//	tellerctl menu
//
//	# Create an account without entering the menu
//	tellerctl account create --number 1001 --name Ann --password pw1 --balance 500
//
//	# Watch the ledger file for external rewrites
//	tellerctl watch
//
// # Environment Variables
//
//   - TELLER_CONFIG_PATH: Directory holding teller.yml (default: /etc/teller)
//   - TELLER_LEDGER_PATH: Path of the ledger file (default: accounts.dat)
//   - TELLER_LOG_LEVEL: Log level (debug, info, warn, error)
package main
