package model

// Account represents a numbered, password-gated balance record.
//
// The password is stored and compared in clear text. That mirrors the ledger
// file format, which carries credentials unencrypted; it is a known gap, not
// something callers should rely on staying this way.
type Account struct {
	Number   int     `yaml:"number" json:"number"`
	Name     string  `yaml:"name" json:"name"`
	Password string  `yaml:"-" json:"-"`
	Balance  float64 `yaml:"balance" json:"balance"`
}

// PasswordMatches reports whether the supplied password equals the stored one
// exactly.
func (a Account) PasswordMatches(password string) bool {
	return a.Password == password
}
