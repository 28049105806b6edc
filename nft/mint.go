package nft

import (
	"context"

	"golang.org/x/xerrors"
)

// Mint creates token id for receiver. Only minters can mint, and the attached
// amount pays for the bytes the token, its metadata and the index entry take.
func (c *Contract) Mint(ctx context.Context, call *Call, id string, meta *TokenMetadata, receiver string) error {
	return c.call(ctx, "nft_mint", call, func(l Ledger) ([]*EventLog, error) {
		err := assertAtLeastOneUnit(call)
		if err != nil {
			return nil, err
		}
		err = c.assertMinter(l, call.Caller)
		if err != nil {
			return nil, err
		}

		old, err := l.ReadToken(id)
		if err != nil {
			return nil, err
		} else if old != nil {
			return nil, xerrors.Errorf("%w: %s", ErrTokenExists, id)
		}
		if meta == nil {
			meta = &TokenMetadata{}
		}

		bytes, err := Measure(l, func() error {
			err := l.WriteToken(&Token{
				TokenId:            id,
				OwnerId:            receiver,
				ApprovedAccountIds: map[string]uint64{},
			})
			if err != nil {
				return err
			}
			err = l.WriteTokenMetadata(id, meta)
			if err != nil {
				return err
			}
			return l.AddOwnerToken(receiver, id)
		})
		if err != nil {
			return nil, err
		}
		err = settle(l, call, bytes)
		if err != nil {
			return nil, err
		}

		return []*EventLog{NewEventLog(NftMint{{
			OwnerId:  receiver,
			TokenIds: []string{id},
		}})}, nil
	})
}
