package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nftledger/api"
	"github.com/MixinNetwork/nftledger/config"
	"github.com/MixinNetwork/nftledger/gateway"
	"github.com/MixinNetwork/nftledger/nft"
	"github.com/MixinNetwork/nftledger/payout"
	"github.com/MixinNetwork/nftledger/store"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/urfave/cli/v2"
)

type node struct {
	conf     *config.Configuration
	store    *store.BadgerStore
	contract *nft.Contract
}

func main() {
	app := &cli.App{
		Name:  "nftledger",
		Usage: "persistent non fungible token ledger with minter permissions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Value: "~/.mixin/nftledger/data", Usage: "database directory path"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "~/.mixin/nftledger/config.toml", Usage: "configuration file path"},
		},
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "initialize the contract with the configured owner and metadata",
				Action: withNode(initCmd),
			},
			{
				Name:   "serve",
				Usage:  "run the deposit gateway, the refund payout and the read api",
				Action: withNode(serveCmd),
			},
			{
				Name:      "memo",
				Usage:     "encode the transfer memo that calls METHOD",
				ArgsUsage: "METHOD ARGS...",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "gas", Value: nft.MinterAddMinimumGas, Usage: "prepaid gas"},
				},
				Action: memoCmd,
			},
			{
				Name:  "minter",
				Usage: "inspect the minter set",
				Subcommands: []*cli.Command{
					{
						Name:   "amount",
						Action: withNode(minterAmountCmd),
					},
					{
						Name:      "is",
						ArgsUsage: "ACCOUNT_ID",
						Action:    withNode(isMinterCmd),
					},
				},
			},
			{
				Name:      "token",
				ArgsUsage: "TOKEN_ID",
				Action:    withNode(tokenCmd),
			},
			{
				Name:      "tokens",
				ArgsUsage: "OWNER_ID",
				Action:    withNode(tokensCmd),
			},
			{
				Name: "events",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "offset"},
					&cli.IntFlag{Name: "limit", Value: 100},
				},
				Action: withNode(eventsCmd),
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withNode opens the store for one command. Badger locks its directory, so
// the offline commands only run while serve is stopped; use the api instead.
func withNode(fn func(*cli.Context, *node) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		conf, err := config.Setup(expandHome(c.String("config")))
		if err != nil {
			return err
		}
		logger.SetLevel(conf.Log.Level)

		db, err := store.OpenBadger(c.Context, expandHome(c.String("dir")))
		if err != nil {
			return err
		}
		defer db.Close()

		contract, err := nft.NewContract(db, conf.Ledger.AssetId, conf.Ledger.DefaultMinter)
		if err != nil {
			return err
		}
		n := &node{
			conf:     conf,
			store:    db,
			contract: contract,
		}
		return fn(c, n)
	}
}

func initCmd(c *cli.Context, n *node) error {
	return n.contract.Initialize(c.Context, n.conf.Ledger.OwnerId, n.conf.ContractMetadata())
}

// serveCmd owns the store for as long as it runs. Calls arrive as transfers
// to the bot, refunds leave through the payout group, and reads go through
// the api.
func serveCmd(c *cli.Context, n *node) error {
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	ac := n.conf.App
	client, err := payout.NewMixinClient(ctx, &mixin.Keystore{
		ClientID:   ac.ClientId,
		SessionID:  ac.SessionId,
		PrivateKey: ac.PrivateKey,
		PinToken:   ac.PinToken,
	}, ac.PIN)
	if err != nil {
		return err
	}
	grp, err := payout.NewGroup(n.store, client, ac.PIN)
	if err != nil {
		return err
	}
	go grp.Run(ctx)
	go gateway.NewGateway(n.store, client, n.contract).Run(ctx)

	server := &http.Server{Addr: n.conf.API.Listen, Handler: api.NewRouter(n.contract)}
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	logger.Printf("serve api on %s\n", n.conf.API.Listen)
	err = server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func memoCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: memo METHOD ARGS...")
	}
	action := &gateway.Action{
		Method: c.Args().First(),
		Args:   c.Args().Tail(),
		Gas:    c.Uint64("gas"),
	}
	memo := action.Encode()
	_, err := gateway.DecodeAction(memo)
	if err != nil {
		return err
	}
	fmt.Println(memo)
	return nil
}

func minterAmountCmd(c *cli.Context, n *node) error {
	amount, err := n.contract.MinterAmount(c.Context)
	if err != nil {
		return err
	}
	fmt.Println(amount.String())
	return nil
}

func isMinterCmd(c *cli.Context, n *node) error {
	exist, err := n.contract.IsMinter(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(exist)
	return nil
}

func tokenCmd(c *cli.Context, n *node) error {
	token, err := n.contract.Token(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func tokensCmd(c *cli.Context, n *node) error {
	ids, err := n.contract.TokensForOwner(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func eventsCmd(c *cli.Context, n *node) error {
	logs, err := n.contract.Events(c.Context, c.Uint64("offset"), c.Int("limit"))
	if err != nil {
		return err
	}
	for _, l := range logs {
		fmt.Println(l)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, _ := user.Current()
	return filepath.Join(usr.HomeDir, path[2:])
}
