package nft

import (
	"encoding/json"
)

const (
	StandardName = "nep171"
	MetadataSpec = "2.0.0"

	eventLogPrefix = "EVENT_JSON:"
)

// EventLogVariant is one of NftMint, NftTransfer or NftBurn.
type EventLogVariant interface {
	Event() string
}

type NftMintLog struct {
	OwnerId  string   `json:"owner_id"`
	TokenIds []string `json:"token_ids"`
	Memo     *string  `json:"memo,omitempty"`
}

type NftTransferLog struct {
	AuthorizedId string   `json:"authorized_id,omitempty"`
	OldOwnerId   string   `json:"old_owner_id"`
	NewOwnerId   string   `json:"new_owner_id"`
	TokenIds     []string `json:"token_ids"`
	Memo         *string  `json:"memo,omitempty"`
}

type NftBurnLog struct {
	OwnerId  string   `json:"owner_id"`
	TokenIds []string `json:"token_ids"`
	Memo     *string  `json:"memo,omitempty"`
}

type NftMint []NftMintLog
type NftTransfer []NftTransferLog
type NftBurn []NftBurnLog

func (NftMint) Event() string     { return "nft_mint" }
func (NftTransfer) Event() string { return "nft_transfer" }
func (NftBurn) Event() string     { return "nft_burn" }

type EventLog struct {
	Standard string
	Version  string
	Event    EventLogVariant
}

func NewEventLog(event EventLogVariant) *EventLog {
	return &EventLog{
		Standard: StandardName,
		Version:  MetadataSpec,
		Event:    event,
	}
}

func (e *EventLog) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Standard string          `json:"standard"`
		Version  string          `json:"version"`
		Event    string          `json:"event"`
		Data     EventLogVariant `json:"data"`
	}{
		Standard: e.Standard,
		Version:  e.Version,
		Event:    e.Event.Event(),
		Data:     e.Event,
	})
}

// String renders the log line exactly as it is appended to the event log.
func (e *EventLog) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return eventLogPrefix + string(b)
}
