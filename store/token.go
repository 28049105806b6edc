package store

import (
	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/nftledger/nft"
)

const (
	prefixTokenPayload  = "LEDGER:TOKEN:PAYLOAD:"
	prefixTokenMetadata = "LEDGER:TOKEN:METADATA:"
)

func (l *Ledger) ReadToken(id string) (*nft.Token, error) {
	val, err := l.get([]byte(prefixTokenPayload + id))
	if err != nil || val == nil {
		return nil, err
	}
	var token nft.Token
	err = common.MsgpackUnmarshal(val, &token)
	return &token, err
}

func (l *Ledger) WriteToken(token *nft.Token) error {
	key := []byte(prefixTokenPayload + token.TokenId)
	return l.set(key, common.MsgpackMarshalPanic(token))
}

func (l *Ledger) DeleteToken(id string) error {
	return l.delete([]byte(prefixTokenPayload + id))
}

func (l *Ledger) ReadTokenMetadata(id string) (*nft.TokenMetadata, error) {
	val, err := l.get([]byte(prefixTokenMetadata + id))
	if err != nil || val == nil {
		return nil, err
	}
	var meta nft.TokenMetadata
	err = common.MsgpackUnmarshal(val, &meta)
	return &meta, err
}

func (l *Ledger) WriteTokenMetadata(id string, meta *nft.TokenMetadata) error {
	key := []byte(prefixTokenMetadata + id)
	return l.set(key, common.MsgpackMarshalPanic(meta))
}

func (l *Ledger) DeleteTokenMetadata(id string) error {
	return l.delete([]byte(prefixTokenMetadata + id))
}
