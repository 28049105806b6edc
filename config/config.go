package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/nftledger/nft"
	"github.com/gofrs/uuid"
	"github.com/pelletier/go-toml"
)

type AppConfig struct {
	ClientId   string `toml:"client-id"`
	SessionId  string `toml:"session-id"`
	PrivateKey string `toml:"private-key"`
	PinToken   string `toml:"pin-token"`
	PIN        string `toml:"pin"`
}

type LedgerConfig struct {
	OwnerId       string `toml:"owner-id"`
	DefaultMinter string `toml:"default-minter"`
	AssetId       string `toml:"asset-id"`
	Name          string `toml:"name"`
	Symbol        string `toml:"symbol"`
	Icon          string `toml:"icon"`
}

type APIConfig struct {
	Listen string `toml:"listen"`
}

type LogConfig struct {
	Level int `toml:"level"`
}

type Configuration struct {
	App    AppConfig    `toml:"app"`
	Ledger LedgerConfig `toml:"ledger"`
	API    APIConfig    `toml:"api"`
	Log    LogConfig    `toml:"log"`
}

func Setup(path string) (*Configuration, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

func Parse(data []byte) (*Configuration, error) {
	var conf Configuration
	err := toml.Unmarshal(data, &conf)
	if err != nil {
		return nil, err
	}
	if conf.Ledger.AssetId == "" {
		conf.Ledger.AssetId = nft.DefaultPayoutAssetId
	}
	if conf.Ledger.Name == "" {
		conf.Ledger.Name = nft.DefaultCollectionName
	}
	if conf.Ledger.Symbol == "" {
		conf.Ledger.Symbol = nft.DefaultCollectionSymbol
	}
	if conf.Ledger.Icon == "" {
		conf.Ledger.Icon = nft.DefaultCollectionIcon
	}
	if conf.API.Listen == "" {
		conf.API.Listen = "127.0.0.1:7031"
	}
	if conf.Log.Level == 0 {
		conf.Log.Level = 2
	}
	if conf.Ledger.OwnerId == "" {
		return nil, fmt.Errorf("ledger owner-id required")
	}
	if id, _ := uuid.FromString(conf.Ledger.DefaultMinter); id == uuid.Nil {
		return nil, fmt.Errorf("ledger default-minter must be a user id, got %q", conf.Ledger.DefaultMinter)
	}
	if id, _ := uuid.FromString(conf.Ledger.AssetId); id == uuid.Nil {
		return nil, fmt.Errorf("ledger asset-id must be an asset id, got %q", conf.Ledger.AssetId)
	}
	return &conf, nil
}

func (c *Configuration) ContractMetadata() *nft.ContractMetadata {
	return &nft.ContractMetadata{
		Spec:   nft.MetadataSpec,
		Name:   c.Ledger.Name,
		Symbol: c.Ledger.Symbol,
		Icon:   c.Ledger.Icon,
	}
}
