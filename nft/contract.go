package nft

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nftledger/metrics"
	"github.com/gofrs/uuid"
	"golang.org/x/xerrors"
)

const (
	DefaultCollectionName   = "Paramunz - Collectibles"
	DefaultCollectionSymbol = "CBL"
	DefaultPayoutAssetId    = "c94ac88f-4671-3976-b60a-09064f1811e8"
)

type Contract struct {
	sync.Mutex
	store   Store
	assetId string
	minter  string
}

// NewContract binds the contract to its store. Deposits and refunds are in
// assetId, and minter is the well-known principal seeded by Initialize.
func NewContract(store Store, assetId, minter string) (*Contract, error) {
	if assetId == "" {
		assetId = DefaultPayoutAssetId
	}
	if id, _ := uuid.FromString(assetId); id == uuid.Nil {
		return nil, xerrors.Errorf("invalid asset id %s", assetId)
	}
	if id, _ := uuid.FromString(minter); id == uuid.Nil {
		return nil, xerrors.Errorf("invalid minter %s", minter)
	}
	return &Contract{
		store:   store,
		assetId: assetId,
		minter:  minter,
	}, nil
}

func DefaultContractMetadata() *ContractMetadata {
	return &ContractMetadata{
		Spec:   MetadataSpec,
		Name:   DefaultCollectionName,
		Symbol: DefaultCollectionSymbol,
		Icon:   DefaultCollectionIcon,
	}
}

// Initialize writes the contract root once. A nil meta stands for the
// default collection metadata.
func (c *Contract) Initialize(ctx context.Context, ownerId string, meta *ContractMetadata) error {
	c.Lock()
	defer c.Unlock()

	if meta == nil {
		meta = DefaultContractMetadata()
	}
	err := c.store.Call(ctx, func(l Ledger) error {
		old, err := l.ReadState()
		if err != nil {
			return err
		} else if old != nil {
			return xerrors.Errorf("%w: owner %s", ErrAlreadyInitialized, old.OwnerId)
		}
		err = l.WriteState(&State{OwnerId: ownerId, CreatedAt: time.Now()})
		if err != nil {
			return err
		}
		err = l.WriteContractMetadata(meta)
		if err != nil {
			return err
		}
		return l.WriteMinter(c.minter)
	})
	metrics.ObserveCall("new", ErrorKind(err))
	if err != nil {
		return err
	}
	logger.Printf("Contract.Initialize(%s) minter %s\n", ownerId, c.minter)
	return nil
}

func (c *Contract) InitializeDefault(ctx context.Context, ownerId string) error {
	return c.Initialize(ctx, ownerId, DefaultContractMetadata())
}

// call runs one mutating method paid by the deposit of call. The deposit is
// consumed in the same transaction, so a replayed deposit never runs twice.
// The events returned by fn are appended to the event log in the same
// transaction and printed only after it commits. When the call fails for a
// reason other than storage, the whole deposit is refunded.
func (c *Contract) call(ctx context.Context, method string, call *Call, fn func(Ledger) ([]*EventLog, error)) error {
	c.Lock()
	defer c.Unlock()

	var events []*EventLog
	err := c.store.Call(ctx, func(l Ledger) error {
		err := consumeDeposit(l, call)
		if err != nil {
			return err
		}
		st, err := l.ReadState()
		if err != nil {
			return err
		} else if st == nil {
			return ErrNotInitialized
		}
		if call.AssetId != c.assetId {
			return xerrors.Errorf("%w: asset %s not accepted", ErrInvalidDeposit, call.AssetId)
		}
		events, err = fn(l)
		if err != nil {
			return err
		}
		for _, e := range events {
			err = l.WriteEvent(e.String())
			if err != nil {
				return err
			}
		}
		return nil
	})
	metrics.ObserveCall(method, ErrorKind(err))
	if err != nil {
		logger.Verbosef("Contract.%s(%s) => %v\n", method, call.Id, err)
		return c.reject(ctx, call, err)
	}
	for _, e := range events {
		logger.Printf("%s\n", e)
	}
	return nil
}

// Reject refunds the whole deposit of a call that could not be dispatched.
func (c *Contract) Reject(ctx context.Context, call *Call, reason error) error {
	c.Lock()
	defer c.Unlock()

	metrics.ObserveCall("reject", ErrorKind(reason))
	return c.reject(ctx, call, reason)
}

// reject returns reason unless the refund itself fails. Storage failures and
// replays leave the deposit untouched.
func (c *Contract) reject(ctx context.Context, call *Call, reason error) error {
	kind := ErrorKind(reason)
	if kind == "internal" || kind == "DepositConsumed" {
		return reason
	}
	err := c.store.Call(ctx, func(l Ledger) error {
		err := consumeDeposit(l, call)
		if err != nil {
			return err
		}
		return writeRefund(l, call, call.Attached.Truncate(AmountPrecision))
	})
	if errors.Is(err, ErrDepositConsumed) {
		return reason
	} else if err != nil {
		return err
	}
	logger.Verbosef("Contract.reject(%s) refund %s to %s\n", call.Id, call.Attached, call.Caller)
	return reason
}

func consumeDeposit(l Ledger, call *Call) error {
	consumed, err := l.ReadDeposit(call.Id)
	if err != nil {
		return err
	} else if consumed {
		return xerrors.Errorf("%w: %s", ErrDepositConsumed, call.Id)
	}
	return l.WriteDeposit(call.Id)
}

func (c *Contract) view(ctx context.Context, fn func(Ledger) error) error {
	return c.store.View(ctx, func(l Ledger) error {
		st, err := l.ReadState()
		if err != nil {
			return err
		} else if st == nil {
			return ErrNotInitialized
		}
		return fn(l)
	})
}

func (c *Contract) ContractMetadata(ctx context.Context) (*ContractMetadata, error) {
	var meta *ContractMetadata
	err := c.view(ctx, func(l Ledger) error {
		var err error
		meta, err = l.ReadContractMetadata()
		return err
	})
	return meta, err
}

func (c *Contract) Token(ctx context.Context, id string) (*JsonToken, error) {
	var token *JsonToken
	err := c.view(ctx, func(l Ledger) error {
		t, err := l.ReadToken(id)
		if err != nil {
			return err
		} else if t == nil {
			return xerrors.Errorf("%w: %s", ErrTokenNotFound, id)
		}
		meta, err := l.ReadTokenMetadata(id)
		if err != nil {
			return err
		}
		token = &JsonToken{
			TokenId:            t.TokenId,
			OwnerId:            t.OwnerId,
			Metadata:           meta,
			ApprovedAccountIds: t.ApprovedAccountIds,
		}
		return nil
	})
	return token, err
}

func (c *Contract) TokensForOwner(ctx context.Context, owner string) ([]string, error) {
	var ids []string
	err := c.view(ctx, func(l Ledger) error {
		var err error
		ids, err = l.ListOwnerTokens(owner)
		return err
	})
	return ids, err
}

func (c *Contract) Events(ctx context.Context, offset uint64, limit int) ([]string, error) {
	var logs []string
	err := c.view(ctx, func(l Ledger) error {
		var err error
		logs, err = l.ListEvents(offset, limit)
		return err
	})
	return logs, err
}
