package gateway

import (
	"encoding/base64"
	"fmt"

	"github.com/MixinNetwork/mixin/common"
)

const (
	MethodMint         = "nft_mint"
	MethodBurn         = "nft_burn"
	MethodMinterAdd    = "minter_add"
	MethodMinterRemove = "minter_remove"
)

// Action is the call a deposit pays for, carried in the transfer memo. The
// memo is short, so the fields use single letter keys.
type Action struct {
	Method string   `msgpack:"M"`
	Args   []string `msgpack:"A"`
	Gas    uint64   `msgpack:"G"`
}

func (a *Action) Encode() string {
	return base64.RawURLEncoding.EncodeToString(common.MsgpackMarshalPanic(a))
}

func DecodeAction(memo string) (*Action, error) {
	b, err := base64.RawURLEncoding.DecodeString(memo)
	if err != nil {
		return nil, err
	}
	var a Action
	err = common.MsgpackUnmarshal(b, &a)
	if err != nil {
		return nil, err
	}
	return &a, a.validate()
}

func (a *Action) validate() error {
	var min, max int
	switch a.Method {
	case MethodMint:
		min, max = 2, 4
	case MethodBurn, MethodMinterAdd, MethodMinterRemove:
		min, max = 1, 1
	default:
		return fmt.Errorf("unknown method %q", a.Method)
	}
	if len(a.Args) < min || len(a.Args) > max {
		return fmt.Errorf("%s takes %d to %d arguments, got %d", a.Method, min, max, len(a.Args))
	}
	for _, arg := range a.Args[:min] {
		if arg == "" {
			return fmt.Errorf("%s empty argument", a.Method)
		}
	}
	return nil
}

func (a *Action) arg(i int) string {
	if i < len(a.Args) {
		return a.Args[i]
	}
	return ""
}
