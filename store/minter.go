package store

import (
	"encoding/binary"

	"github.com/MixinNetwork/nftledger/nft"
)

const (
	prefixMinterMember = "LEDGER:MINTER:MEMBER:"
	prefixMinterCount  = "LEDGER:MINTER:COUNT:"
)

func (l *Ledger) ReadMinter(id string) (bool, error) {
	val, err := l.get(minterMemberKey(id))
	return val != nil, err
}

func (l *Ledger) WriteMinter(id string) error {
	exist, err := l.ReadMinter(id)
	if err != nil || exist {
		return err
	}
	count, err := l.CountMinters()
	if err != nil {
		return err
	}
	err = l.set(minterMemberKey(id), []byte{1})
	if err != nil {
		return err
	}
	return l.set(minterCountKey(), binary.BigEndian.AppendUint64(nil, count+1))
}

func (l *Ledger) DeleteMinter(id string) error {
	exist, err := l.ReadMinter(id)
	if err != nil || !exist {
		return err
	}
	count, err := l.CountMinters()
	if err != nil {
		return err
	}
	if count == 0 {
		panic(id)
	}
	err = l.delete(minterMemberKey(id))
	if err != nil {
		return err
	}
	if count == 1 {
		return l.delete(minterCountKey())
	}
	return l.set(minterCountKey(), binary.BigEndian.AppendUint64(nil, count-1))
}

func (l *Ledger) CountMinters() (uint64, error) {
	val, err := l.get(minterCountKey())
	if err != nil || len(val) != 8 {
		return 0, err
	}
	return binary.BigEndian.Uint64(val), nil
}

func minterMemberKey(id string) []byte {
	h := nft.CollectionKey(nft.MinterSetName)
	key := append([]byte(prefixMinterMember), h[:]...)
	return append(key, id...)
}

func minterCountKey() []byte {
	h := nft.CollectionKey(nft.MinterSetName)
	return append([]byte(prefixMinterCount), h[:]...)
}
