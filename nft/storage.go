package nft

import (
	"github.com/MixinNetwork/mixin/logger"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Measure runs fn and returns the storage bytes it added to the ledger.
func Measure(l Ledger, fn func() error) (int64, error) {
	before := l.StorageUsage()
	err := fn()
	if err != nil {
		return 0, err
	}
	return int64(l.StorageUsage()) - int64(before), nil
}

// StorageCost converts a byte count into the deposit it requires.
func StorageCost(bytes int64) decimal.Decimal {
	if bytes < 0 {
		bytes = 0
	}
	price := decimal.RequireFromString(StorageBytePrice)
	return price.Mul(decimal.NewFromInt(bytes))
}

// settle fails the call when the attached amount does not cover the storage
// bytes, otherwise it queues the excess back to the caller.
func settle(l Ledger, call *Call, bytes int64) error {
	required := StorageCost(bytes)
	if call.Attached.LessThan(required) {
		return xerrors.Errorf("%w: must attach %s to cover %d bytes, got %s",
			ErrInsufficientDeposit, required, bytes, call.Attached)
	}
	refund := call.Attached.Sub(required).Truncate(AmountPrecision)
	logger.Verbosef("Contract.settle(%s, %d) refund %s to %s\n", call.Id, bytes, refund, call.Caller)
	return writeRefund(l, call, refund)
}

// writeRefund queues amount back to the caller in the asset it was paid in.
// Each call owes at most one refund, so the trace id derives from the call.
func writeRefund(l Ledger, call *Call, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	traceId := mixin.UniqueConversationID(call.Id, "refund")
	return l.WriteRefund(traceId, call.Caller, call.AssetId, amount, "REFUND#"+call.Id)
}
