package store

import (
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/nftledger/nft"
	"github.com/dgraph-io/badger/v3"
	"golang.org/x/xerrors"
)

// The owner index is a two level arena. A set header lives under the digest
// of the owner, and every member token under the digest followed by its id.
// The header is removed together with the last member.
const (
	prefixOwnerSet   = "LEDGER:OWNER:SET:"
	prefixOwnerToken = "LEDGER:OWNER:TOKEN:"
)

type ownerSet struct {
	OwnerId string
	Count   uint64
}

func (l *Ledger) AddOwnerToken(owner, id string) error {
	set, err := l.readOwnerSet(owner)
	if err != nil {
		return err
	}
	if set == nil {
		set = &ownerSet{OwnerId: owner}
	}

	key := ownerTokenKey(owner, id)
	val, err := l.get(key)
	if err != nil || val != nil {
		return err
	}
	set.Count += 1

	err = l.set(ownerSetKey(owner), common.MsgpackMarshalPanic(set))
	if err != nil {
		return err
	}
	return l.set(key, []byte{1})
}

func (l *Ledger) RemoveOwnerToken(owner, id string) error {
	set, err := l.readOwnerSet(owner)
	if err != nil {
		return err
	}
	key := ownerTokenKey(owner, id)
	val, err := l.get(key)
	if err != nil {
		return err
	}
	if set == nil || val == nil || set.Count == 0 {
		return xerrors.Errorf("%w: token %s not held by %s", nft.ErrInconsistentIndex, id, owner)
	}

	err = l.delete(key)
	if err != nil {
		return err
	}
	set.Count -= 1
	if set.Count == 0 {
		return l.delete(ownerSetKey(owner))
	}
	return l.set(ownerSetKey(owner), common.MsgpackMarshalPanic(set))
}

func (l *Ledger) ListOwnerTokens(owner string) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = ownerTokenPrefix(owner)
	it := l.txn.NewIterator(opts)
	defer it.Close()

	var ids []string
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		ids = append(ids, string(key[len(opts.Prefix):]))
	}
	return ids, nil
}

func (l *Ledger) readOwnerSet(owner string) (*ownerSet, error) {
	val, err := l.get(ownerSetKey(owner))
	if err != nil || val == nil {
		return nil, err
	}
	var set ownerSet
	err = common.MsgpackUnmarshal(val, &set)
	return &set, err
}

func ownerSetKey(owner string) []byte {
	h := nft.CollectionKey(owner)
	return append([]byte(prefixOwnerSet), h[:]...)
}

func ownerTokenPrefix(owner string) []byte {
	h := nft.CollectionKey(owner)
	return append([]byte(prefixOwnerToken), h[:]...)
}

func ownerTokenKey(owner, id string) []byte {
	return append(ownerTokenPrefix(owner), id...)
}
