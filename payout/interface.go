package payout

import (
	"context"

	"github.com/fox-one/mixin-sdk-go"
)

type Store interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)

	WriteTransaction(tx *Transaction) error
	ReadTransaction(traceId string) (*Transaction, error)
	ListTransactions(state int, limit int) ([]*Transaction, error)
}

// Transferer is the part of the Mixin client the group pays refunds with.
type Transferer interface {
	Transfer(ctx context.Context, input *mixin.TransferInput, pin string) (*mixin.Snapshot, error)
}
