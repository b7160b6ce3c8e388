package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/doodlesbykumbi/teller-in-go/pkg/model"
)

// fieldsPerRecord is the fixed shape of a ledger record:
// number, name, password, balance.
const fieldsPerRecord = 4

// encode writes all accounts to w, one record per line.
//
// Names are written as-is. A name with interior whitespace therefore spans
// several tokens on disk and comes back truncated to its first token on the
// next load. Lossy, but it is the ledger format's documented behavior.
func encode(w io.Writer, accounts []model.Account) error {
	for _, a := range accounts {
		balance := strconv.FormatFloat(a.Balance, 'g', -1, 64)
		if _, err := fmt.Fprintf(w, "%d %s %s %s\n", a.Number, a.Name, a.Password, balance); err != nil {
			return fmt.Errorf("failed to write ledger record for account %d: %w", a.Number, err)
		}
	}
	return nil
}

// decode reads records from r until the stream ends or a record fails to
// parse. A malformed or partial trailing record is dropped, not reported;
// everything read before it is kept.
func decode(r io.Reader) []model.Account {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var accounts []model.Account
	for {
		fields := make([]string, 0, fieldsPerRecord)
		for len(fields) < fieldsPerRecord && sc.Scan() {
			fields = append(fields, sc.Text())
		}
		if len(fields) < fieldsPerRecord {
			return accounts
		}

		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return accounts
		}
		balance, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return accounts
		}

		accounts = append(accounts, model.Account{
			Number:   number,
			Name:     fields[1],
			Password: fields[2],
			Balance:  balance,
		})
	}
}
