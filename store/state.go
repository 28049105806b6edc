package store

import (
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/nftledger/nft"
)

const (
	keyLedgerState            = "LEDGER:STATE"
	keyLedgerContractMetadata = "LEDGER:CONTRACT:METADATA"
)

func (l *Ledger) ReadState() (*nft.State, error) {
	val, err := l.get([]byte(keyLedgerState))
	if err != nil || val == nil {
		return nil, err
	}
	var st nft.State
	err = common.MsgpackUnmarshal(val, &st)
	return &st, err
}

func (l *Ledger) WriteState(st *nft.State) error {
	return l.set([]byte(keyLedgerState), common.MsgpackMarshalPanic(st))
}

// ReadContractMetadata is kept apart from the state so that calls never
// decode the icon and other large fields unless they ask for them.
func (l *Ledger) ReadContractMetadata() (*nft.ContractMetadata, error) {
	val, err := l.get([]byte(keyLedgerContractMetadata))
	if err != nil || val == nil {
		return nil, err
	}
	var meta nft.ContractMetadata
	err = common.MsgpackUnmarshal(val, &meta)
	return &meta, err
}

func (l *Ledger) WriteContractMetadata(meta *nft.ContractMetadata) error {
	return l.set([]byte(keyLedgerContractMetadata), common.MsgpackMarshalPanic(meta))
}
