package nft_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MixinNetwork/nftledger/nft"
	"github.com/MixinNetwork/nftledger/payout"
	"github.com/MixinNetwork/nftledger/store"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const mintDeposit = "0.1"

var (
	testOwner = newId()
	minter    = newId()
	alice     = newId()
	bob       = newId()
	carol     = newId()
)

func newId() string {
	return uuid.Must(uuid.NewV4()).String()
}

func setup(t *testing.T) (context.Context, *nft.Contract, *store.BadgerStore) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	db, err := store.OpenMemory(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c, err := nft.NewContract(db, nft.DefaultPayoutAssetId, minter)
	require.NoError(t, err)
	require.NoError(t, c.InitializeDefault(ctx, testOwner))
	return ctx, c, db
}

func newCall(t *testing.T, caller, amount string, gas uint64) *nft.Call {
	call, err := nft.NewCall(newId(), caller, nft.DefaultPayoutAssetId, decimal.RequireFromString(amount), gas)
	require.NoError(t, err)
	return call
}

func oneUnitCall(t *testing.T, caller string) *nft.Call {
	return newCall(t, caller, nft.MinimumAttachment, 0)
}

func depositCall(t *testing.T, caller, amount string) *nft.Call {
	return newCall(t, caller, amount, nft.MinterAddMinimumGas)
}

func readRefund(t *testing.T, db *store.BadgerStore, call *nft.Call) *payout.Transaction {
	tx, err := db.ReadTransaction(mixin.UniqueConversationID(call.Id, "refund"))
	require.NoError(t, err)
	return tx
}

func mint(t *testing.T, ctx context.Context, c *nft.Contract, id, receiver string) {
	call := depositCall(t, minter, mintDeposit)
	err := c.Mint(ctx, call, id, &nft.TokenMetadata{Title: "Olympus Mons", Copies: 1}, receiver)
	require.NoError(t, err)
}

func TestNewContract(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db, err := store.OpenMemory(ctx)
	require.NoError(err)
	defer db.Close()

	_, err = nft.NewContract(db, nft.DefaultPayoutAssetId, "paramunz.testnet")
	require.Error(err)
	_, err = nft.NewContract(db, "XIN", minter)
	require.Error(err)
	c, err := nft.NewContract(db, "", minter)
	require.NoError(err)
	require.NotNil(c)
}

func TestNewCall(t *testing.T) {
	require := require.New(t)
	one := decimal.RequireFromString("1")

	_, err := nft.NewCall(newId(), "alice.testnet", nft.DefaultPayoutAssetId, one, 0)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	_, err = nft.NewCall("deposit", alice, nft.DefaultPayoutAssetId, one, 0)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	_, err = nft.NewCall(newId(), alice, "XIN", one, 0)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	_, err = nft.NewCall(newId(), alice, nft.DefaultPayoutAssetId, one.Neg(), 0)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	_, err = nft.NewCall(newId(), alice, nft.DefaultPayoutAssetId, decimal.RequireFromString("0.001050005"), 0)
	require.ErrorIs(err, nft.ErrInvalidDeposit)

	call, err := nft.NewCall(newId(), alice, nft.DefaultPayoutAssetId, decimal.RequireFromString("0.00105001"), 7)
	require.NoError(err)
	require.Equal(alice, call.Caller)
	require.Equal(uint64(7), call.Gas)
}

func TestInitialize(t *testing.T) {
	require := require.New(t)
	ctx, c, _ := setup(t)

	amount, err := c.MinterAmount(ctx)
	require.NoError(err)
	require.Equal("1", amount.String())

	exist, err := c.IsMinter(ctx, minter)
	require.NoError(err)
	require.True(exist)

	meta, err := c.ContractMetadata(ctx)
	require.NoError(err)
	require.Equal(nft.DefaultCollectionName, meta.Name)
	require.Equal(nft.DefaultCollectionSymbol, meta.Symbol)
	require.Equal(nft.MetadataSpec, meta.Spec)
	require.True(strings.HasPrefix(meta.Icon, "data:image/png;base64,"))

	err = c.InitializeDefault(ctx, alice)
	require.ErrorIs(err, nft.ErrAlreadyInitialized)
	amount, err = c.MinterAmount(ctx)
	require.NoError(err)
	require.Equal("1", amount.String())
}

func TestInitializeNilMetadata(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db, err := store.OpenMemory(ctx)
	require.NoError(err)
	defer db.Close()

	c, err := nft.NewContract(db, "", minter)
	require.NoError(err)
	require.NoError(c.Initialize(ctx, testOwner, nil))

	meta, err := c.ContractMetadata(ctx)
	require.NoError(err)
	require.Equal(nft.DefaultContractMetadata(), meta)
}

func TestNotInitialized(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db, err := store.OpenMemory(ctx)
	require.NoError(err)
	defer db.Close()

	c, err := nft.NewContract(db, "", minter)
	require.NoError(err)
	call := oneUnitCall(t, alice)
	err = c.Burn(ctx, call, "0")
	require.ErrorIs(err, nft.ErrNotInitialized)
	require.Equal(nft.MinimumAttachment, readRefund(t, db, call).Amount)

	_, err = c.MinterAmount(ctx)
	require.ErrorIs(err, nft.ErrNotInitialized)
}

func TestBurn(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	mint(t, ctx, c, "0", alice)
	ids, err := c.TokensForOwner(ctx, alice)
	require.NoError(err)
	require.Equal([]string{"0"}, ids)
	events, err := c.Events(ctx, 0, 100)
	require.NoError(err)
	require.Len(events, 1)

	call := oneUnitCall(t, bob)
	err = c.Burn(ctx, call, "0")
	require.ErrorIs(err, nft.ErrNotOwner)
	require.Equal(nft.MinimumAttachment, readRefund(t, db, call).Amount)
	token, err := c.Token(ctx, "0")
	require.NoError(err)
	require.Equal(alice, token.OwnerId)
	require.Equal("Olympus Mons", token.Metadata.Title)

	err = c.Burn(ctx, newCall(t, alice, "0", 0), "0")
	require.ErrorIs(err, nft.ErrInsufficientAttachment)
	call = newCall(t, alice, "0.5", 0)
	err = c.Burn(ctx, call, "0")
	require.ErrorIs(err, nft.ErrInsufficientAttachment)
	require.Equal("0.5", readRefund(t, db, call).Amount)

	call = oneUnitCall(t, alice)
	err = c.Burn(ctx, call, "0")
	require.NoError(err)
	require.Nil(readRefund(t, db, call))

	_, err = c.Token(ctx, "0")
	require.ErrorIs(err, nft.ErrTokenNotFound)
	ids, err = c.TokensForOwner(ctx, alice)
	require.NoError(err)
	require.Len(ids, 0)

	events, err = c.Events(ctx, 0, 100)
	require.NoError(err)
	require.Len(events, 2)
	require.Equal(`EVENT_JSON:{"standard":"nep171","version":"2.0.0","event":"nft_burn","data":[{"owner_id":"`+alice+`","token_ids":["0"]}]}`, events[1])

	err = c.Burn(ctx, oneUnitCall(t, alice), "0")
	require.ErrorIs(err, nft.ErrTokenNotFound)
	events, err = c.Events(ctx, 0, 100)
	require.NoError(err)
	require.Len(events, 2)
}

func TestBurnNonexistentToken(t *testing.T) {
	ctx, c, _ := setup(t)

	err := c.Burn(ctx, oneUnitCall(t, alice), "missing")
	require.ErrorIs(t, err, nft.ErrTokenNotFound)
	require.Equal(t, "NotFound", nft.ErrorKind(err))
	events, err := c.Events(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 0)
}

func TestMintBurnRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx, c, _ := setup(t)

	mint(t, ctx, c, "a", alice)
	mint(t, ctx, c, "b", alice)
	mint(t, ctx, c, "x", bob)
	before, err := c.TokensForOwner(ctx, alice)
	require.NoError(err)

	mint(t, ctx, c, "c", alice)
	ids, err := c.TokensForOwner(ctx, alice)
	require.NoError(err)
	require.ElementsMatch([]string{"a", "b", "c"}, ids)

	require.NoError(c.Burn(ctx, oneUnitCall(t, alice), "c"))
	after, err := c.TokensForOwner(ctx, alice)
	require.NoError(err)
	require.ElementsMatch(before, after)

	ids, err = c.TokensForOwner(ctx, bob)
	require.NoError(err)
	require.Equal([]string{"x"}, ids)
}

func TestMint(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	call := depositCall(t, alice, mintDeposit)
	err := c.Mint(ctx, call, "0", nil, alice)
	require.ErrorIs(err, nft.ErrNotAuthorized)
	require.Equal(mintDeposit, readRefund(t, db, call).Amount)

	call = depositCall(t, minter, "0.00000001")
	err = c.Mint(ctx, call, "0", nil, alice)
	require.ErrorIs(err, nft.ErrInsufficientDeposit)
	require.Equal("0.00000001", readRefund(t, db, call).Amount)
	_, err = c.Token(ctx, "0")
	require.ErrorIs(err, nft.ErrTokenNotFound)

	call = depositCall(t, minter, mintDeposit)
	err = c.Mint(ctx, call, "0", nil, alice)
	require.NoError(err)
	tx := readRefund(t, db, call)
	require.Equal(minter, tx.Receiver)
	require.Equal(nft.DefaultPayoutAssetId, tx.AssetId)
	refund := decimal.RequireFromString(tx.Amount)
	require.True(refund.IsPositive())
	require.True(refund.LessThan(decimal.RequireFromString(mintDeposit)))

	err = c.Mint(ctx, depositCall(t, minter, mintDeposit), "0", nil, bob)
	require.ErrorIs(err, nft.ErrTokenExists)
}

func TestAddMinter(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	err := c.AddMinter(ctx, depositCall(t, alice, "1"), bob)
	require.ErrorIs(err, nft.ErrNotAuthorized)

	low := newCall(t, minter, "1", nft.MinterAddMinimumGas-1)
	err = c.AddMinter(ctx, low, bob)
	require.ErrorIs(err, nft.ErrInsufficientGas)
	require.Contains(err.Error(), "20000000000000")

	err = c.AddMinter(ctx, depositCall(t, minter, "0"), bob)
	require.ErrorIs(err, nft.ErrInsufficientAttachment)

	err = c.AddMinter(ctx, depositCall(t, minter, "1"), minter)
	require.ErrorIs(err, nft.ErrAlreadyMinter)

	call := depositCall(t, minter, "1")
	err = c.AddMinter(ctx, call, bob)
	require.NoError(err)
	exist, err := c.IsMinter(ctx, bob)
	require.NoError(err)
	require.True(exist)
	amount, err := c.MinterAmount(ctx)
	require.NoError(err)
	require.Equal("2", amount.String())

	// member key (21 + 32 + 36) + value 1 + record overhead 40
	cost := nft.StorageCost(130)
	require.Equal("0.0013", cost.String())
	tx := readRefund(t, db, call)
	require.Equal(minter, tx.Receiver)
	require.Equal("0.9987", tx.Amount)

	err = c.AddMinter(ctx, depositCall(t, bob, "1"), bob)
	require.ErrorIs(err, nft.ErrAlreadyMinter)
}

func TestAddMinterDeposit(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	cost := nft.StorageCost(130)
	short := cost.Sub(decimal.RequireFromString(nft.MinimumAttachment))
	call := depositCall(t, minter, short.String())
	err := c.AddMinter(ctx, call, bob)
	require.ErrorIs(err, nft.ErrInsufficientDeposit)
	require.Equal(short.String(), readRefund(t, db, call).Amount)
	exist, err := c.IsMinter(ctx, bob)
	require.NoError(err)
	require.False(exist)
	amount, err := c.MinterAmount(ctx)
	require.NoError(err)
	require.Equal("1", amount.String())

	call = depositCall(t, minter, cost.String())
	require.NoError(c.AddMinter(ctx, call, bob))
	require.Nil(readRefund(t, db, call))
}

func TestAddMinterSubUnitExcess(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	call := &nft.Call{
		Id:       newId(),
		Caller:   minter,
		AssetId:  nft.DefaultPayoutAssetId,
		Attached: decimal.RequireFromString("0.001300005"),
		Gas:      nft.MinterAddMinimumGas,
	}
	require.NoError(c.AddMinter(ctx, call, bob))
	exist, err := c.IsMinter(ctx, bob)
	require.NoError(err)
	require.True(exist)
	require.Nil(readRefund(t, db, call))

	call.Id = newId()
	call.Attached = decimal.RequireFromString("0.001300015")
	require.NoError(c.AddMinter(ctx, call, carol))
	require.Equal("0.00000001", readRefund(t, db, call).Amount)
}

func TestDepositReplay(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	call := depositCall(t, minter, mintDeposit)
	require.NoError(c.Mint(ctx, call, "0", nil, alice))
	refund := readRefund(t, db, call)

	err := c.Mint(ctx, call, "1", nil, alice)
	require.ErrorIs(err, nft.ErrDepositConsumed)
	_, err = c.Token(ctx, "1")
	require.ErrorIs(err, nft.ErrTokenNotFound)
	require.Equal(refund.Amount, readRefund(t, db, call).Amount)

	failed := depositCall(t, alice, "1")
	err = c.AddMinter(ctx, failed, bob)
	require.ErrorIs(err, nft.ErrNotAuthorized)
	err = c.AddMinter(ctx, failed, bob)
	require.ErrorIs(err, nft.ErrDepositConsumed)
	require.Equal("1", readRefund(t, db, failed).Amount)

	txs, err := db.ListTransactions(payout.TransactionStateInitial, 10)
	require.NoError(err)
	require.Len(txs, 2)
}

func TestForeignAssetDeposit(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	cnb := "965e5c6e-434c-3fa9-b780-c50f43cd955c"
	call, err := nft.NewCall(newId(), minter, cnb, decimal.RequireFromString("100"), nft.MinterAddMinimumGas)
	require.NoError(err)
	err = c.AddMinter(ctx, call, bob)
	require.ErrorIs(err, nft.ErrInvalidDeposit)

	tx := readRefund(t, db, call)
	require.Equal(cnb, tx.AssetId)
	require.Equal("100", tx.Amount)
	exist, err := c.IsMinter(ctx, bob)
	require.NoError(err)
	require.False(exist)
}

func TestReject(t *testing.T) {
	require := require.New(t)
	ctx, c, db := setup(t)

	call := depositCall(t, alice, "2")
	err := c.Reject(ctx, call, nft.ErrInvalidDeposit)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	require.Equal("2", readRefund(t, db, call).Amount)

	err = c.Reject(ctx, call, nft.ErrInvalidDeposit)
	require.ErrorIs(err, nft.ErrInvalidDeposit)
	err = c.Mint(ctx, call, "0", nil, alice)
	require.ErrorIs(err, nft.ErrDepositConsumed)
	txs, err := db.ListTransactions(payout.TransactionStateInitial, 10)
	require.NoError(err)
	require.Len(txs, 1)
}

func TestRemoveMinter(t *testing.T) {
	require := require.New(t)
	ctx, c, _ := setup(t)

	err := c.RemoveMinter(ctx, oneUnitCall(t, minter), minter)
	require.ErrorIs(err, nft.ErrSelfRemovalForbidden)

	require.NoError(c.AddMinter(ctx, depositCall(t, minter, "1"), bob))
	require.NoError(c.AddMinter(ctx, depositCall(t, minter, "1"), carol))

	for _, m := range []string{minter, bob, carol} {
		err = c.RemoveMinter(ctx, oneUnitCall(t, m), m)
		require.ErrorIs(err, nft.ErrSelfRemovalForbidden)
	}

	err = c.RemoveMinter(ctx, oneUnitCall(t, alice), bob)
	require.ErrorIs(err, nft.ErrNotAuthorized)
	err = c.RemoveMinter(ctx, oneUnitCall(t, bob), alice)
	require.ErrorIs(err, nft.ErrNotMinter)
	err = c.RemoveMinter(ctx, newCall(t, bob, "0", 0), carol)
	require.ErrorIs(err, nft.ErrInsufficientAttachment)

	require.NoError(c.RemoveMinter(ctx, oneUnitCall(t, bob), carol))
	require.NoError(c.RemoveMinter(ctx, oneUnitCall(t, bob), minter))
	amount, err := c.MinterAmount(ctx)
	require.NoError(err)
	require.Equal("1", amount.String())
	exist, err := c.IsMinter(ctx, minter)
	require.NoError(err)
	require.False(exist)
}
