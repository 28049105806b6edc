package store

// Consumed deposits are bookkeeping of the gateway, not charged as ledger storage.
const prefixDepositConsumed = "GATEWAY:DEPOSIT:"

func (l *Ledger) ReadDeposit(id string) (bool, error) {
	val, err := l.get([]byte(prefixDepositConsumed + id))
	return val != nil, err
}

func (l *Ledger) WriteDeposit(id string) error {
	return l.txn.Set([]byte(prefixDepositConsumed+id), []byte{1})
}
