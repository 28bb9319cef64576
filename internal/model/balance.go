package model

// BalanceResult represents the output of the check-balance operation
type BalanceResult struct {
	Address    string
	SOL        string // integer-exact decimal string
	USD        string // optional, empty when the rate lookup failed
	Airdropped bool   // whether an airdrop was requested during this check
}
