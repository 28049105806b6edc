package nft

import "time"

// State is the contract root. It is written once by Initialize.
type State struct {
	OwnerId   string
	CreatedAt time.Time
}

type Token struct {
	TokenId            string
	OwnerId            string
	ApprovedAccountIds map[string]uint64
	NextApprovalId     uint64
}

type TokenMetadata struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Media         string `json:"media,omitempty"`
	MediaHash     string `json:"media_hash,omitempty"`
	Copies        uint64 `json:"copies,omitempty"`
	IssuedAt      uint64 `json:"issued_at,omitempty"`
	ExpiresAt     uint64 `json:"expires_at,omitempty"`
	StartsAt      uint64 `json:"starts_at,omitempty"`
	UpdatedAt     uint64 `json:"updated_at,omitempty"`
	Extra         string `json:"extra,omitempty"`
	Reference     string `json:"reference,omitempty"`
	ReferenceHash string `json:"reference_hash,omitempty"`
}

type ContractMetadata struct {
	Spec          string `json:"spec"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Icon          string `json:"icon,omitempty"`
	BaseUri       string `json:"base_uri,omitempty"`
	Reference     string `json:"reference,omitempty"`
	ReferenceHash string `json:"reference_hash,omitempty"`
}

// JsonToken is the view returned to clients, the token record joined with its metadata.
type JsonToken struct {
	TokenId            string            `json:"token_id"`
	OwnerId            string            `json:"owner_id"`
	Metadata           *TokenMetadata    `json:"metadata"`
	ApprovedAccountIds map[string]uint64 `json:"approved_account_ids"`
}
