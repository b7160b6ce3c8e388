// Package model defines the domain records shared across the teller packages.
//
// The only record today is Account: a numbered, named, password-gated
// balance. Accounts are owned by the registry in pkg/store; everything else
// passes copies around and refers to an account by its number.
package model
