package domain

// TransferResult is the outcome of a completed transfer: both account
// snapshots and the matching debit and credit transactions.
type TransferResult struct {
	FromAccount     AccountInfo `json:"from_account"`
	ToAccount       AccountInfo `json:"to_account"`
	FromTransaction Transaction `json:"from_transaction"`
	ToTransaction   Transaction `json:"to_transaction"`
}
