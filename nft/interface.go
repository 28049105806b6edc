package nft

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store runs every contract call inside a single storage transaction.
// An error returned by fn discards all writes made through the Ledger.
type Store interface {
	Call(ctx context.Context, fn func(Ledger) error) error
	View(ctx context.Context, fn func(Ledger) error) error
}

type Ledger interface {
	ReadState() (*State, error)
	WriteState(st *State) error
	ReadContractMetadata() (*ContractMetadata, error)
	WriteContractMetadata(meta *ContractMetadata) error

	ReadToken(id string) (*Token, error)
	WriteToken(token *Token) error
	DeleteToken(id string) error
	ReadTokenMetadata(id string) (*TokenMetadata, error)
	WriteTokenMetadata(id string, meta *TokenMetadata) error
	DeleteTokenMetadata(id string) error

	AddOwnerToken(owner, id string) error
	RemoveOwnerToken(owner, id string) error
	ListOwnerTokens(owner string) ([]string, error)

	ReadMinter(id string) (bool, error)
	WriteMinter(id string) error
	DeleteMinter(id string) error
	CountMinters() (uint64, error)

	StorageUsage() uint64

	ReadDeposit(id string) (bool, error)
	WriteDeposit(id string) error

	WriteEvent(log string) error
	ListEvents(offset uint64, limit int) ([]string, error)
	WriteRefund(traceId, receiver, assetId string, amount decimal.Decimal, memo string) error
}
