package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the name of module.
	ModuleName = "vault"

	// StoreKey is the store key string for the module.
	StoreKey = ModuleName

	// RouterKey is the message route for the module.
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the module.
	QuerierRoute = ModuleName
)

// Collection prefixes
var (
	ParamsKey        = collections.NewPrefix(0)
	VaultSequenceKey = collections.NewPrefix(1)
	VaultsKey        = collections.NewPrefix(2)
	PrincipalsKey    = collections.NewPrefix(3)
	ClaimablesKey    = collections.NewPrefix(4)
)

// Event types
const (
	EventTypeVaultCreated   = "vault_created"
	EventTypeDeposit        = "vault_deposit"
	EventTypeWithdraw       = "vault_withdraw"
	EventTypeWinnerSelected = "winner_selected"
	EventTypeVaultDeleted   = "vault_deleted"
	EventTypeAdminChanged   = "admin_changed"
	EventTypeReserveFunded  = "reserve_funded"
)

// Event attribute keys
const (
	AttributeKeyVaultID       = "vault_id"
	AttributeKeyName          = "name"
	AttributeKeyDenom         = "denom"
	AttributeKeyDuration      = "duration"
	AttributeKeyInterestBps   = "interest_rate_bps"
	AttributeKeyDepositor     = "depositor"
	AttributeKeyAmount        = "amount"
	AttributeKeyWinner        = "winner"
	AttributeKeyTotalInterest = "total_interest"
	AttributeKeyOldAdmin      = "old_admin"
	AttributeKeyNewAdmin      = "new_admin"
	AttributeKeyFunder        = "funder"
)
