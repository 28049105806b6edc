package payout

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionStateInitial = 10
	TransactionStateDone    = 11
	TransactionStateFailed  = 12

	MinimumAmount = "0.00000001"
)

type Transaction struct {
	TraceId    string
	State      int
	AssetId    string
	Receiver   string
	Amount     string
	Memo       string
	SnapshotId string
	UpdatedAt  time.Time
}

// NewTransaction validates a refund before it is queued. The trace id must be
// unique per refund so that a retried transfer is never paid twice.
func NewTransaction(traceId, receiver, assetId string, amount decimal.Decimal, memo string, ts time.Time) (*Transaction, error) {
	if id, _ := uuid.FromString(traceId); id == uuid.Nil {
		return nil, fmt.Errorf("invalid trace id %s", traceId)
	}
	if id, _ := uuid.FromString(assetId); id == uuid.Nil {
		return nil, fmt.Errorf("invalid asset id %s", assetId)
	}
	if amount.LessThan(decimal.RequireFromString(MinimumAmount)) {
		return nil, fmt.Errorf("invalid amount %s", amount)
	}
	if receiver == "" {
		return nil, fmt.Errorf("invalid receiver %s", receiver)
	}
	return &Transaction{
		TraceId:   traceId,
		State:     TransactionStateInitial,
		AssetId:   assetId,
		Receiver:  receiver,
		Amount:    amount.String(),
		Memo:      memo,
		UpdatedAt: ts,
	}, nil
}

func (tx *Transaction) StateName() string {
	switch tx.State {
	case TransactionStateInitial:
		return "initial"
	case TransactionStateDone:
		return "done"
	case TransactionStateFailed:
		return "failed"
	}
	panic(tx.State)
}
