package store

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v3"
)

// The event log is append only and is not charged as ledger storage.
const (
	prefixEventLog   = "EVENT:LOG:"
	keyEventSequence = "EVENT:SEQUENCE"

	MaxEventsLimit = 500
)

func (l *Ledger) WriteEvent(log string) error {
	val, err := l.get([]byte(keyEventSequence))
	if err != nil {
		return err
	}
	var seq uint64
	if len(val) == 8 {
		seq = binary.BigEndian.Uint64(val)
	}
	key := append([]byte(prefixEventLog), binary.BigEndian.AppendUint64(nil, seq)...)
	err = l.txn.Set(key, []byte(log))
	if err != nil {
		return err
	}
	return l.txn.Set([]byte(keyEventSequence), binary.BigEndian.AppendUint64(nil, seq+1))
}

func (l *Ledger) ListEvents(offset uint64, limit int) ([]string, error) {
	if limit <= 0 || limit > MaxEventsLimit {
		limit = MaxEventsLimit
	}
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefixEventLog)
	it := l.txn.NewIterator(opts)
	defer it.Close()

	start := append([]byte(prefixEventLog), binary.BigEndian.AppendUint64(nil, offset)...)
	var logs []string
	for it.Seek(start); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		logs = append(logs, string(val))
		if len(logs) == limit {
			break
		}
	}
	return logs, nil
}
