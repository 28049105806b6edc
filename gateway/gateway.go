package gateway

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nftledger/nft"
	"github.com/fox-one/mixin-sdk-go"
	"golang.org/x/xerrors"
)

const checkpointPropertyKey = "GATEWAY:SNAPSHOT:CHECKPOINT"

type Store interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)
}

// SnapshotReader is the part of the Mixin client the gateway reads deposits with.
type SnapshotReader interface {
	ReadSnapshots(ctx context.Context, assetID string, offset time.Time, order string, limit int) ([]*mixin.Snapshot, error)
}

// Gateway turns the transfers received by the bot into contract calls. The
// sender of a transfer is the caller, and its amount the attached deposit.
type Gateway struct {
	client   SnapshotReader
	store    Store
	contract *nft.Contract
}

func NewGateway(store Store, client SnapshotReader, contract *nft.Contract) *Gateway {
	return &Gateway{
		client:   client,
		store:    store,
		contract: contract,
	}
}

func (gw *Gateway) Run(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := gw.processSnapshots(ctx, 100)
		if err != nil {
			logger.Printf("Gateway.processSnapshots() => %v\n", err)
		}
		if err == nil && n > 0 {
			continue
		}
		select {
		case <-ctx.Done():
		case <-time.After(3 * time.Second):
		}
	}
}

// processSnapshots handles one page from the checkpoint on and returns how
// many snapshots were newer than it. Snapshots at the checkpoint itself are
// read again, and their consumed deposits make them no-ops.
func (gw *Gateway) processSnapshots(ctx context.Context, limit int) (int, error) {
	checkpoint, err := gw.readCheckpoint()
	if err != nil {
		return 0, err
	}
	snapshots, err := gw.client.ReadSnapshots(ctx, "", checkpoint, "ASC", limit)
	if err != nil {
		return 0, err
	}
	var fresh int
	for _, s := range snapshots {
		err = gw.processSnapshot(ctx, s)
		if err != nil {
			return fresh, err
		}
		if !s.CreatedAt.After(checkpoint) {
			continue
		}
		checkpoint = s.CreatedAt
		err = gw.writeCheckpoint(checkpoint)
		if err != nil {
			return fresh, err
		}
		fresh += 1
	}
	return fresh, nil
}

func (gw *Gateway) processSnapshot(ctx context.Context, s *mixin.Snapshot) error {
	if !s.Amount.IsPositive() || s.OpponentID == "" {
		return nil
	}
	call, err := nft.NewCall(s.SnapshotID, s.OpponentID, s.AssetID, s.Amount, 0)
	if err != nil {
		logger.Printf("Gateway.processSnapshot(%s) => %v\n", s.SnapshotID, err)
		return nil
	}

	action, err := DecodeAction(s.Memo)
	if err != nil {
		err = xerrors.Errorf("%w: memo %v", nft.ErrInvalidDeposit, err)
		return ignoreCallError(gw.contract.Reject(ctx, call, err))
	}
	call.Gas = action.Gas
	logger.Verbosef("Gateway.processSnapshot(%s) %s %v by %s\n", s.SnapshotID, action.Method, action.Args, call.Caller)

	switch action.Method {
	case MethodMint:
		meta := &nft.TokenMetadata{
			Title:  action.arg(2),
			Media:  action.arg(3),
			Copies: 1,
		}
		err = gw.contract.Mint(ctx, call, action.arg(0), meta, action.arg(1))
	case MethodBurn:
		err = gw.contract.Burn(ctx, call, action.arg(0))
	case MethodMinterAdd:
		err = gw.contract.AddMinter(ctx, call, action.arg(0))
	case MethodMinterRemove:
		err = gw.contract.RemoveMinter(ctx, call, action.arg(0))
	}
	return ignoreCallError(err)
}

// ignoreCallError drops the failures that end a call for good. They are
// already refunded, only storage failures are retried.
func ignoreCallError(err error) error {
	if nft.ErrorKind(err) == "internal" {
		return err
	}
	return nil
}

func (gw *Gateway) readCheckpoint() (time.Time, error) {
	val, err := gw.store.ReadProperty([]byte(checkpointPropertyKey))
	if err != nil || len(val) != 8 {
		return time.Time{}, err
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(val))), nil
}

func (gw *Gateway) writeCheckpoint(ts time.Time) error {
	val := binary.BigEndian.AppendUint64(nil, uint64(ts.UnixNano()))
	return gw.store.WriteProperty([]byte(checkpointPropertyKey), val)
}
