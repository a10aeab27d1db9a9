package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter bounds.
const (
	DefaultMinVaultDuration = int64(60 * 60)                // 1 hour
	DefaultMaxVaultDuration = int64(4 * 365 * 24 * 60 * 60) // 4 years
	DefaultMaxNameLength    = uint32(64)
)

// Params holds the module parameters. The administrator address is part of
// params so the module authority (the owner role) can reassign it through
// governance.
type Params struct {
	Admin            string `protobuf:"bytes,1,opt,name=admin,proto3"                                           json:"admin,omitempty"`
	MinVaultDuration int64  `protobuf:"varint,2,opt,name=min_vault_duration,json=minVaultDuration,proto3"       json:"min_vault_duration,omitempty"`
	MaxVaultDuration int64  `protobuf:"varint,3,opt,name=max_vault_duration,json=maxVaultDuration,proto3"       json:"max_vault_duration,omitempty"`
	MaxNameLength    uint32 `protobuf:"varint,4,opt,name=max_name_length,json=maxNameLength,proto3"             json:"max_name_length,omitempty"`
}

// ProtoMessage implements proto.Message
func (Params) ProtoMessage() {}

// Reset implements proto.Message
func (p *Params) Reset() { *p = Params{} }

// Stringer method for Params.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// XXX_MessageName returns the fully qualified proto name.
func (Params) XXX_MessageName() string { return "vaultquest.vault.v1.Params" }

// NewParams constructs Params with explicit values.
func NewParams(admin string, minDuration, maxDuration int64, maxNameLength uint32) Params {
	return Params{
		Admin:            admin,
		MinVaultDuration: minDuration,
		MaxVaultDuration: maxDuration,
		MaxNameLength:    maxNameLength,
	}
}

// DefaultParams returns default module parameters. The admin is left unset;
// genesis or a MsgUpdateAdmin from the authority must assign it before any
// privileged call succeeds.
func DefaultParams() Params {
	return NewParams("", DefaultMinVaultDuration, DefaultMaxVaultDuration, DefaultMaxNameLength)
}

// Validate does the sanity check on the params.
func (p Params) Validate() error {
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return fmt.Errorf("invalid admin address: %w", err)
		}
	}

	if p.MinVaultDuration <= 0 {
		return fmt.Errorf("min_vault_duration must be positive, got %d", p.MinVaultDuration)
	}

	if p.MaxVaultDuration < p.MinVaultDuration {
		return fmt.Errorf(
			"max_vault_duration must be >= min_vault_duration, got %d < %d",
			p.MaxVaultDuration, p.MinVaultDuration,
		)
	}

	if p.MaxNameLength == 0 || p.MaxNameLength > 256 {
		return fmt.Errorf("max_name_length must be between 1 and 256, got %d", p.MaxNameLength)
	}

	return nil
}
