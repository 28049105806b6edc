package store

import (
	"context"
	"encoding/binary"

	"github.com/MixinNetwork/nftledger/nft"
	"github.com/dgraph-io/badger/v3"
)

const (
	keyStorageUsage = "LEDGER:STORAGE:USAGE"

	// each persisted record is charged for its key and value plus this overhead
	recordOverhead = 40
)

// Ledger is the view of one call transaction. Writes to ledger state go
// through set and delete so the storage usage follows every record change.
type Ledger struct {
	bs    *BadgerStore
	txn   *badger.Txn
	usage uint64
	delta int64
	sizes map[string]int64
}

func (bs *BadgerStore) Call(ctx context.Context, fn func(nft.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return bs.db.Update(func(txn *badger.Txn) error {
		l, err := bs.newLedger(txn)
		if err != nil {
			return err
		}
		err = fn(l)
		if err != nil {
			return err
		}
		return l.flushUsage()
	})
}

func (bs *BadgerStore) View(ctx context.Context, fn func(nft.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return bs.db.View(func(txn *badger.Txn) error {
		l, err := bs.newLedger(txn)
		if err != nil {
			return err
		}
		return fn(l)
	})
}

func (bs *BadgerStore) newLedger(txn *badger.Txn) (*Ledger, error) {
	l := &Ledger{
		bs:    bs,
		txn:   txn,
		sizes: make(map[string]int64),
	}
	val, err := l.get([]byte(keyStorageUsage))
	if err != nil {
		return nil, err
	}
	if len(val) == 8 {
		l.usage = binary.BigEndian.Uint64(val)
	}
	return l, nil
}

func (l *Ledger) StorageUsage() uint64 {
	usage := int64(l.usage) + l.delta
	if usage < 0 {
		panic(usage)
	}
	return uint64(usage)
}

func (l *Ledger) flushUsage() error {
	if l.delta == 0 {
		return nil
	}
	val := binary.BigEndian.AppendUint64(nil, l.StorageUsage())
	return l.txn.Set([]byte(keyStorageUsage), val)
}

func (l *Ledger) get(key []byte) ([]byte, error) {
	item, err := l.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (l *Ledger) set(key, val []byte) error {
	old, err := l.recordSize(key)
	if err != nil {
		return err
	}
	size := int64(len(key) + len(val) + recordOverhead)
	l.delta += size - old
	l.sizes[string(key)] = size
	return l.txn.Set(key, val)
}

func (l *Ledger) delete(key []byte) error {
	old, err := l.recordSize(key)
	if err != nil {
		return err
	}
	l.delta -= old
	l.sizes[string(key)] = 0
	return l.txn.Delete(key)
}

func (l *Ledger) recordSize(key []byte) (int64, error) {
	if size, found := l.sizes[string(key)]; found {
		return size, nil
	}
	item, err := l.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return int64(len(key)) + item.ValueSize() + recordOverhead, nil
}
