package nft

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

const (
	MinimumAttachment   = "0.00000001"
	StorageBytePrice    = "0.00001"
	MinterAddMinimumGas = uint64(20_000_000_000_000)

	// amounts carry at most this many decimal places, the precision of a transfer
	AmountPrecision = 8
)

// Call carries what the environment supplies to one contract invocation.
// Id is the snapshot of the deposit paying for the call, Caller its sender,
// and Attached the amount received in AssetId.
type Call struct {
	Id       string
	Caller   string
	AssetId  string
	Attached decimal.Decimal
	Gas      uint64
}

func NewCall(id, caller, assetId string, attached decimal.Decimal, gas uint64) (*Call, error) {
	if uid, _ := uuid.FromString(id); uid == uuid.Nil {
		return nil, xerrors.Errorf("%w: invalid deposit id %s", ErrInvalidDeposit, id)
	}
	if uid, _ := uuid.FromString(caller); uid == uuid.Nil {
		return nil, xerrors.Errorf("%w: invalid caller %s", ErrInvalidDeposit, caller)
	}
	if uid, _ := uuid.FromString(assetId); uid == uuid.Nil {
		return nil, xerrors.Errorf("%w: invalid asset %s", ErrInvalidDeposit, assetId)
	}
	if attached.IsNegative() || !attached.Equal(attached.Truncate(AmountPrecision)) {
		return nil, xerrors.Errorf("%w: invalid amount %s", ErrInvalidDeposit, attached)
	}
	return &Call{
		Id:       id,
		Caller:   caller,
		AssetId:  assetId,
		Attached: attached,
		Gas:      gas,
	}, nil
}

func minimumAttachment() decimal.Decimal {
	return decimal.RequireFromString(MinimumAttachment)
}

// assertOneUnit requires exactly the minimum unit, used by calls that
// must not swallow a real payment.
func assertOneUnit(call *Call) error {
	if !call.Attached.Equal(minimumAttachment()) {
		return xerrors.Errorf("%w: requires attached deposit of exactly %s, got %s",
			ErrInsufficientAttachment, MinimumAttachment, call.Attached)
	}
	return nil
}

func assertAtLeastOneUnit(call *Call) error {
	if call.Attached.LessThan(minimumAttachment()) {
		return xerrors.Errorf("%w: requires attached deposit of at least %s, got %s",
			ErrInsufficientAttachment, MinimumAttachment, call.Attached)
	}
	return nil
}

func assertGas(call *Call, min uint64) error {
	if call.Gas < min {
		return xerrors.Errorf("%w: require at least %d, got %d", ErrInsufficientGas, min, call.Gas)
	}
	return nil
}
