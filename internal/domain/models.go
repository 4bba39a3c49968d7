package domain

// Models lists every persisted model in migration order
func Models() []any {
	return []any{&Wallet{}, &Merchant{}, &Transaction{}, &Item{}}
}
