package payout

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAssetId = "c94ac88f-4671-3976-b60a-09064f1811e8"

type memoryStore struct {
	sync.Mutex
	props map[string][]byte
	txs   map[string]*Transaction
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		props: make(map[string][]byte),
		txs:   make(map[string]*Transaction),
	}
}

func (s *memoryStore) WriteProperty(key, val []byte) error {
	s.Lock()
	defer s.Unlock()
	s.props[string(key)] = val
	return nil
}

func (s *memoryStore) ReadProperty(key []byte) ([]byte, error) {
	s.Lock()
	defer s.Unlock()
	return s.props[string(key)], nil
}

func (s *memoryStore) WriteTransaction(tx *Transaction) error {
	s.Lock()
	defer s.Unlock()
	old := s.txs[tx.TraceId]
	if old != nil && old.State >= tx.State {
		return nil
	}
	cp := *tx
	s.txs[tx.TraceId] = &cp
	return nil
}

func (s *memoryStore) ReadTransaction(traceId string) (*Transaction, error) {
	s.Lock()
	defer s.Unlock()
	tx := s.txs[traceId]
	if tx == nil {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (s *memoryStore) ListTransactions(state int, limit int) ([]*Transaction, error) {
	s.Lock()
	defer s.Unlock()
	var txs []*Transaction
	for _, tx := range s.txs {
		if tx.State == state {
			cp := *tx
			txs = append(txs, &cp)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].UpdatedAt.Before(txs[j].UpdatedAt) })
	if len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

type testTransferer struct {
	inputs []*mixin.TransferInput
	fail   bool
}

func (tt *testTransferer) Transfer(ctx context.Context, input *mixin.TransferInput, pin string) (*mixin.Snapshot, error) {
	if tt.fail {
		return nil, fmt.Errorf("transfer %s unavailable", input.TraceID)
	}
	tt.inputs = append(tt.inputs, input)
	return &mixin.Snapshot{
		SnapshotID: mixin.UniqueConversationID(input.TraceID, "snapshot"),
		TraceID:    input.TraceID,
	}, nil
}

func queueRefund(t *testing.T, store Store, receiver, amount string, ts time.Time) *Transaction {
	traceId := uuid.Must(uuid.NewV4()).String()
	tx, err := NewTransaction(traceId, receiver, testAssetId, decimal.RequireFromString(amount), "REFUND#"+traceId, ts)
	require.NoError(t, err)
	require.NoError(t, store.WriteTransaction(tx))
	return tx
}

func TestNewTransaction(t *testing.T) {
	require := require.New(t)
	traceId := uuid.Must(uuid.NewV4()).String()
	one := decimal.RequireFromString("1")
	now := time.Now()

	_, err := NewTransaction("refund", "alice", testAssetId, one, "", now)
	require.Error(err)
	_, err = NewTransaction(traceId, "alice", "CNB", one, "", now)
	require.Error(err)
	_, err = NewTransaction(traceId, "", testAssetId, one, "", now)
	require.Error(err)
	_, err = NewTransaction(traceId, "alice", testAssetId, decimal.RequireFromString("0.000000001"), "", now)
	require.Error(err)

	tx, err := NewTransaction(traceId, "alice", testAssetId, decimal.RequireFromString("0.00105"), "", now)
	require.NoError(err)
	require.Equal("0.00105", tx.Amount)
	require.Equal(TransactionStateInitial, tx.State)
	require.Equal("initial", tx.StateName())
}

func TestGroupTransfer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := newMemoryStore()
	client := &testTransferer{}

	grp, err := NewGroup(store, client, "123456")
	require.NoError(err)

	now := time.Now()
	receiver := uuid.Must(uuid.NewV4()).String()
	valid := queueRefund(t, store, receiver, "0.99895", now)
	invalid := queueRefund(t, store, "alice.testnet", "0.5", now.Add(time.Millisecond))

	n, err := grp.transferTransactions(ctx, 16)
	require.NoError(err)
	require.Equal(2, n)

	require.Len(client.inputs, 1)
	input := client.inputs[0]
	require.Equal(valid.TraceId, input.TraceID)
	require.Equal(receiver, input.OpponentID)
	require.Equal(testAssetId, input.AssetID)
	require.Equal("0.99895", input.Amount.String())
	require.Equal(valid.Memo, input.Memo)

	tx, err := store.ReadTransaction(valid.TraceId)
	require.NoError(err)
	require.Equal(TransactionStateDone, tx.State)
	require.Equal(mixin.UniqueConversationID(valid.TraceId, "snapshot"), tx.SnapshotId)
	require.True(tx.UpdatedAt.After(valid.UpdatedAt))

	tx, err = store.ReadTransaction(invalid.TraceId)
	require.NoError(err)
	require.Equal(TransactionStateFailed, tx.State)
	require.Equal("failed", tx.StateName())

	n, err = grp.transferTransactions(ctx, 16)
	require.NoError(err)
	require.Equal(0, n)
	require.Len(client.inputs, 1)
}

func TestGroupTransferError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := newMemoryStore()
	client := &testTransferer{fail: true}

	grp, err := NewGroup(store, client, "123456")
	require.NoError(err)
	tx := queueRefund(t, store, uuid.Must(uuid.NewV4()).String(), "1", time.Now())

	_, err = grp.transferTransactions(ctx, 16)
	require.Error(err)
	old, err := store.ReadTransaction(tx.TraceId)
	require.NoError(err)
	require.Equal(TransactionStateInitial, old.State)

	client.fail = false
	n, err := grp.transferTransactions(ctx, 16)
	require.NoError(err)
	require.Equal(1, n)
	require.Len(client.inputs, 1)
}

func TestClock(t *testing.T) {
	require := require.New(t)
	store := newMemoryStore()

	future := time.Now().Add(time.Hour)
	val := binary.BigEndian.AppendUint64(nil, uint64(future.UnixNano()))
	require.NoError(store.WriteProperty([]byte(clockStorePropertyKey), val))

	clock, err := NewClock(store)
	require.NoError(err)
	require.Equal(future.UnixNano(), clock.now.UnixNano())

	empty, err := NewClock(newMemoryStore())
	require.NoError(err)
	a := empty.Now()
	b := empty.Now()
	require.True(b.After(a))
	stored, err := empty.store.ReadProperty([]byte(clockStorePropertyKey))
	require.NoError(err)
	require.Len(stored, 8)
}
