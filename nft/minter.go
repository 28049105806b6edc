package nft

import (
	"context"
	"math/big"

	"github.com/MixinNetwork/mixin/logger"
	"golang.org/x/xerrors"
)

// AddMinter grants minting to account. The caller must be a minter and must
// attach enough to cover the storage the new membership takes.
func (c *Contract) AddMinter(ctx context.Context, call *Call, account string) error {
	return c.call(ctx, "minter_add", call, func(l Ledger) ([]*EventLog, error) {
		err := assertGas(call, MinterAddMinimumGas)
		if err != nil {
			return nil, err
		}
		err = assertAtLeastOneUnit(call)
		if err != nil {
			return nil, err
		}
		err = c.assertMinter(l, call.Caller)
		if err != nil {
			return nil, err
		}

		exist, err := l.ReadMinter(account)
		if err != nil {
			return nil, err
		} else if exist {
			return nil, xerrors.Errorf("%w: %s", ErrAlreadyMinter, account)
		}

		bytes, err := Measure(l, func() error {
			return l.WriteMinter(account)
		})
		if err != nil {
			return nil, err
		}
		err = settle(l, call, bytes)
		if err != nil {
			return nil, err
		}

		logger.Printf("Contract.AddMinter(%s) by %s with %d bytes\n", account, call.Caller, bytes)
		return nil, nil
	})
}

// RemoveMinter revokes minting from account. A minter never removes itself,
// so the set can not be emptied by its last member.
func (c *Contract) RemoveMinter(ctx context.Context, call *Call, account string) error {
	return c.call(ctx, "minter_remove", call, func(l Ledger) ([]*EventLog, error) {
		err := assertOneUnit(call)
		if err != nil {
			return nil, err
		}
		err = c.assertMinter(l, call.Caller)
		if err != nil {
			return nil, err
		}

		exist, err := l.ReadMinter(account)
		if err != nil {
			return nil, err
		} else if !exist {
			return nil, xerrors.Errorf("%w: %s", ErrNotMinter, account)
		}
		if account == call.Caller {
			return nil, xerrors.Errorf("%w: %s", ErrSelfRemovalForbidden, account)
		}

		err = l.DeleteMinter(account)
		if err != nil {
			return nil, err
		}
		logger.Printf("Contract.RemoveMinter(%s) by %s\n", account, call.Caller)
		return nil, nil
	})
}

func (c *Contract) MinterAmount(ctx context.Context) (*big.Int, error) {
	var count uint64
	err := c.view(ctx, func(l Ledger) error {
		var err error
		count, err = l.CountMinters()
		return err
	})
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(count), nil
}

func (c *Contract) IsMinter(ctx context.Context, account string) (bool, error) {
	var exist bool
	err := c.view(ctx, func(l Ledger) error {
		var err error
		exist, err = l.ReadMinter(account)
		return err
	})
	return exist, err
}

func (c *Contract) assertMinter(l Ledger, account string) error {
	exist, err := l.ReadMinter(account)
	if err != nil {
		return err
	} else if !exist {
		return xerrors.Errorf("%w: %s", ErrNotAuthorized, account)
	}
	return nil
}
