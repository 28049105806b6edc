package payout

import (
	"context"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nftledger/metrics"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Group pays out the refunds queued by contract calls, one transfer per
// transaction, and records the resulting snapshot.
type Group struct {
	client Transferer
	store  Store
	clock  *Clock
	pin    string
}

func NewMixinClient(ctx context.Context, ks *mixin.Keystore, pin string) (*mixin.Client, error) {
	client, err := mixin.NewFromKeystore(ks)
	if err != nil {
		return nil, err
	}
	err = client.VerifyPin(ctx, pin)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewGroup(store Store, client Transferer, pin string) (*Group, error) {
	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	return &Group{
		client: client,
		store:  store,
		clock:  clock,
		pin:    pin,
	}, nil
}

func (grp *Group) Run(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := grp.transferTransactions(ctx, 16)
		if err != nil {
			logger.Printf("Group.transferTransactions() => %v\n", err)
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

func (grp *Group) transferTransactions(ctx context.Context, limit int) (int, error) {
	txs, err := grp.store.ListTransactions(TransactionStateInitial, limit)
	if err != nil || len(txs) == 0 {
		return 0, err
	}
	for _, tx := range txs {
		err = grp.transferTransaction(ctx, tx)
		if err != nil {
			return 0, err
		}
	}
	return len(txs), nil
}

func (grp *Group) transferTransaction(ctx context.Context, tx *Transaction) error {
	if id, _ := uuid.FromString(tx.Receiver); id == uuid.Nil {
		logger.Printf("Group.transferTransaction(%s) invalid receiver %s\n", tx.TraceId, tx.Receiver)
		tx.State = TransactionStateFailed
		tx.UpdatedAt = grp.clock.Now()
		metrics.ObservePayout(tx.StateName())
		return grp.store.WriteTransaction(tx)
	}

	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return err
	}
	snapshot, err := grp.client.Transfer(ctx, &mixin.TransferInput{
		AssetID:    tx.AssetId,
		OpponentID: tx.Receiver,
		Amount:     amount,
		TraceID:    tx.TraceId,
		Memo:       tx.Memo,
	}, grp.pin)
	if err != nil {
		return err
	}
	tx.State = TransactionStateDone
	tx.SnapshotId = snapshot.SnapshotID
	tx.UpdatedAt = grp.clock.Now()
	logger.Verbosef("Group.transferTransaction(%s, %s) => %s\n", tx.TraceId, tx.Amount, tx.SnapshotId)
	metrics.ObservePayout(tx.StateName())
	return grp.store.WriteTransaction(tx)
}
