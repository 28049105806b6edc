package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MixinNetwork/nftledger/nft"
	"github.com/MixinNetwork/nftledger/store"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type response struct {
	Data  json.RawMessage   `json:"data"`
	Error map[string]string `json:"error"`
}

func get(t *testing.T, h http.Handler, path string) (int, *response) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, &resp
}

func TestRouter(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db, err := store.OpenMemory(ctx)
	require.NoError(err)
	defer db.Close()

	minter := uuid.Must(uuid.NewV4()).String()
	alice := uuid.Must(uuid.NewV4()).String()
	contract, err := nft.NewContract(db, "", minter)
	require.NoError(err)
	h := NewRouter(contract)

	code, resp := get(t, h, "/minters")
	require.Equal(http.StatusServiceUnavailable, code)
	require.Equal("NotInitialized", resp.Error["kind"])

	require.NoError(contract.InitializeDefault(ctx, minter))
	call, err := nft.NewCall(uuid.Must(uuid.NewV4()).String(), minter, nft.DefaultPayoutAssetId, decimal.RequireFromString("0.1"), 0)
	require.NoError(err)
	require.NoError(contract.Mint(ctx, call, "0", &nft.TokenMetadata{Title: "Olympus Mons"}, alice))

	code, resp = get(t, h, "/minters")
	require.Equal(http.StatusOK, code)
	require.JSONEq(`{"amount":"1"}`, string(resp.Data))

	code, resp = get(t, h, "/minters/"+minter)
	require.Equal(http.StatusOK, code)
	require.JSONEq(`{"minter":true}`, string(resp.Data))
	_, resp = get(t, h, "/minters/"+alice)
	require.JSONEq(`{"minter":false}`, string(resp.Data))

	code, resp = get(t, h, "/tokens/0")
	require.Equal(http.StatusOK, code)
	var token nft.JsonToken
	require.NoError(json.Unmarshal(resp.Data, &token))
	require.Equal(alice, token.OwnerId)
	require.Equal("Olympus Mons", token.Metadata.Title)

	code, resp = get(t, h, "/tokens/1")
	require.Equal(http.StatusNotFound, code)
	require.Equal("NotFound", resp.Error["kind"])

	_, resp = get(t, h, "/owners/"+alice+"/tokens")
	require.JSONEq(`["0"]`, string(resp.Data))
	_, resp = get(t, h, "/owners/"+minter+"/tokens")
	require.JSONEq(`[]`, string(resp.Data))

	_, resp = get(t, h, "/events?offset=0&limit=10")
	var logs []string
	require.NoError(json.Unmarshal(resp.Data, &logs))
	require.Len(logs, 1)
	require.Contains(logs[0], `"event":"nft_mint"`)

	_, resp = get(t, h, "/contract")
	var meta nft.ContractMetadata
	require.NoError(json.Unmarshal(resp.Data, &meta))
	require.Equal(nft.DefaultCollectionSymbol, meta.Symbol)
}
