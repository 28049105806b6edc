package store

import (
	"encoding/binary"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/nftledger/payout"
	"github.com/dgraph-io/badger/v3"
	"github.com/shopspring/decimal"
)

const (
	prefixTransactionPayload = "PAYOUT:TRANSACTION:PAYLOAD:"
	prefixTransactionState   = "PAYOUT:TRANSACTION:STATE:"
)

// WriteRefund queues the refund inside the call transaction, so a refund
// exists if and only if the call that owes it committed.
func (l *Ledger) WriteRefund(traceId, receiver, assetId string, amount decimal.Decimal, memo string) error {
	tx, err := payout.NewTransaction(traceId, receiver, assetId, amount, memo, time.Now())
	if err != nil {
		return err
	}
	return l.bs.writeTransaction(l.txn, tx)
}

func (bs *BadgerStore) WriteTransaction(tx *payout.Transaction) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return bs.writeTransaction(txn, tx)
	})
}

func (bs *BadgerStore) ReadTransaction(traceId string) (*payout.Transaction, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readTransaction(txn, traceId)
}

func (bs *BadgerStore) ListTransactions(state int, limit int) ([]*payout.Transaction, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(transactionStatePrefix(state))
	it := txn.NewIterator(opts)
	defer it.Close()

	var txs []*payout.Transaction
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		id := string(key[len(opts.Prefix)+8:])
		tx, err := bs.readTransaction(txn, id)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
		if len(txs) == limit {
			break
		}
	}
	return txs, nil
}

func (bs *BadgerStore) writeTransaction(txn *badger.Txn, tx *payout.Transaction) error {
	old, err := bs.readTransaction(txn, tx.TraceId)
	if err != nil {
		return err
	}
	if old != nil && old.State >= tx.State {
		return nil
	}
	if old != nil {
		err = txn.Delete(buildTransactionTimedKey(old))
		if err != nil {
			return err
		}
	}

	key := []byte(prefixTransactionPayload + tx.TraceId)
	val := common.MsgpackMarshalPanic(tx)
	err = txn.Set(key, val)
	if err != nil {
		return err
	}

	key = buildTransactionTimedKey(tx)
	return txn.Set(key, []byte{1})
}

func (bs *BadgerStore) readTransaction(txn *badger.Txn, traceId string) (*payout.Transaction, error) {
	key := []byte(prefixTransactionPayload + traceId)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var tx payout.Transaction
	err = common.MsgpackUnmarshal(val, &tx)
	return &tx, err
}

func buildTransactionTimedKey(tx *payout.Transaction) []byte {
	buf := tsToBytes(tx.UpdatedAt)
	prefix := transactionStatePrefix(tx.State)
	key := append([]byte(prefix), buf...)
	return append(key, []byte(tx.TraceId)...)
}

func transactionStatePrefix(state int) string {
	prefix := prefixTransactionState
	switch state {
	case payout.TransactionStateInitial:
		return prefix + "initial"
	case payout.TransactionStateDone:
		return prefix + "doneeee"
	case payout.TransactionStateFailed:
		return prefix + "failedd"
	}
	panic(state)
}

func tsToBytes(ts time.Time) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(ts.UnixNano()))
}
