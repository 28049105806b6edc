package nft

import (
	"context"

	"golang.org/x/xerrors"
)

// Burn destroys a token owned by the caller. The owner index entry, the
// metadata and the token record are removed in one transaction.
func (c *Contract) Burn(ctx context.Context, call *Call, tokenId string) error {
	return c.call(ctx, "nft_burn", call, func(l Ledger) ([]*EventLog, error) {
		err := assertOneUnit(call)
		if err != nil {
			return nil, err
		}

		token, err := l.ReadToken(tokenId)
		if err != nil {
			return nil, err
		} else if token == nil {
			return nil, xerrors.Errorf("%w: %s", ErrTokenNotFound, tokenId)
		}
		if token.OwnerId != call.Caller {
			return nil, xerrors.Errorf("%w: %s owned by %s", ErrNotOwner, tokenId, token.OwnerId)
		}

		err = l.RemoveOwnerToken(token.OwnerId, tokenId)
		if err != nil {
			return nil, err
		}
		err = l.DeleteTokenMetadata(tokenId)
		if err != nil {
			return nil, err
		}
		err = l.DeleteToken(tokenId)
		if err != nil {
			return nil, err
		}

		return []*EventLog{NewEventLog(NftBurn{{
			OwnerId:  token.OwnerId,
			TokenIds: []string{tokenId},
		}})}, nil
	})
}
