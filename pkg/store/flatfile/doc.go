// Package flatfile implements store.AccountsStore on top of a plain text
// ledger file.
//
// The ledger is a sequence of whitespace-delimited records, one account per
// record:
//
//	<number> <name> <password> <balance>
//
// The file is read once at startup and rewritten in full on every save. A
// missing file means "no existing data". Saves go through a temp file and a
// rename so a crash mid-write cannot corrupt the ledger.
package flatfile
