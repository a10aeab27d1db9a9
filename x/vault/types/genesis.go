package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DepositRecord is one (vault, address) principal entry in genesis state.
type DepositRecord struct {
	VaultId   uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Address   string `protobuf:"bytes,2,opt,name=address,proto3"                json:"address,omitempty"`
	Principal string `protobuf:"bytes,3,opt,name=principal,proto3"              json:"principal,omitempty"`
}

// ProtoMessage implements proto.Message
func (DepositRecord) ProtoMessage() {}

// Reset implements proto.Message
func (m *DepositRecord) Reset() { *m = DepositRecord{} }

// String implements proto.Message
func (m *DepositRecord) String() string {
	bz, err := json.Marshal(m)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// XXX_MessageName returns the fully qualified proto name.
func (DepositRecord) XXX_MessageName() string { return "vaultquest.vault.v1.DepositRecord" }

// ClaimRecord is one (vault, address) settled-claimable entry in genesis state.
type ClaimRecord struct {
	VaultId uint64 `protobuf:"varint,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3"                json:"address,omitempty"`
	Amount  string `protobuf:"bytes,3,opt,name=amount,proto3"                 json:"amount,omitempty"`
}

// ProtoMessage implements proto.Message
func (ClaimRecord) ProtoMessage() {}

// Reset implements proto.Message
func (m *ClaimRecord) Reset() { *m = ClaimRecord{} }

// String implements proto.Message
func (m *ClaimRecord) String() string {
	bz, err := json.Marshal(m)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// XXX_MessageName returns the fully qualified proto name.
func (ClaimRecord) XXX_MessageName() string { return "vaultquest.vault.v1.ClaimRecord" }

// GenesisState holds the full module state.
type GenesisState struct {
	Params   Params          `protobuf:"bytes,1,opt,name=params,proto3"   json:"params"`
	Vaults   []Vault         `protobuf:"bytes,2,rep,name=vaults,proto3"   json:"vaults"`
	Deposits []DepositRecord `protobuf:"bytes,3,rep,name=deposits,proto3" json:"deposits"`
	Claims   []ClaimRecord   `protobuf:"bytes,4,rep,name=claims,proto3"   json:"claims"`
}

// ProtoMessage implements proto.Message
func (GenesisState) ProtoMessage() {}

// Reset implements proto.Message
func (m *GenesisState) Reset() { *m = GenesisState{} }

// String implements proto.Message
func (m *GenesisState) String() string {
	bz, err := json.Marshal(m)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// XXX_MessageName returns the fully qualified proto name.
func (GenesisState) XXX_MessageName() string { return "vaultquest.vault.v1.GenesisState" }

// NewGenesisState constructs a genesis state with the given params and no vaults.
func NewGenesisState(params Params) *GenesisState {
	return &GenesisState{
		Params:   params,
		Vaults:   []Vault{},
		Deposits: []DepositRecord{},
		Claims:   []ClaimRecord{},
	}
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams())
}

// Validate performs basic genesis state validation returning an error upon
// any failure. The vault invariants from the state machine are checked here
// so an imported state starts out consistent.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	vaults := make(map[uint64]*Vault, len(gs.Vaults))
	for i := range gs.Vaults {
		v := &gs.Vaults[i]
		if v.Id == 0 {
			return fmt.Errorf("vault at index %d has zero id", i)
		}
		if _, ok := vaults[v.Id]; ok {
			return fmt.Errorf("duplicate vault id %d", v.Id)
		}
		if v.InterestRateBps == 0 {
			return fmt.Errorf("vault %d has zero interest rate", v.Id)
		}
		if v.Duration <= 0 {
			return fmt.Errorf("vault %d has non-positive duration", v.Id)
		}
		if err := sdk.ValidateDenom(v.Denom); err != nil {
			return fmt.Errorf("vault %d has invalid denom: %w", v.Id, err)
		}
		if v.TotalPrincipal != "" {
			tp, ok := math.NewIntFromString(v.TotalPrincipal)
			if !ok || tp.IsNegative() {
				return fmt.Errorf("vault %d has invalid total principal %q", v.Id, v.TotalPrincipal)
			}
		}
		seen := make(map[string]bool, len(v.Depositors))
		for _, d := range v.Depositors {
			if _, err := sdk.AccAddressFromBech32(d); err != nil {
				return fmt.Errorf("vault %d depositor %q: %w", v.Id, d, err)
			}
			if seen[d] {
				return fmt.Errorf("vault %d has duplicate depositor %s", v.Id, d)
			}
			seen[d] = true
		}
		if v.WinnerSelected {
			if v.Winner == "" {
				return fmt.Errorf("vault %d settled without a winner", v.Id)
			}
		} else if v.Winner != "" {
			return fmt.Errorf("vault %d has a winner but is not settled", v.Id)
		}
		vaults[v.Id] = v
	}

	// Per-vault principal sums must match the recorded totals, and every
	// deposit must belong to a listed depositor.
	sums := make(map[uint64]math.Int, len(vaults))
	seenDeposits := make(map[string]bool, len(gs.Deposits))
	for _, d := range gs.Deposits {
		v, ok := vaults[d.VaultId]
		if !ok {
			return fmt.Errorf("deposit references unknown vault %d", d.VaultId)
		}
		if _, err := sdk.AccAddressFromBech32(d.Address); err != nil {
			return fmt.Errorf("deposit for vault %d: %w", d.VaultId, err)
		}
		key := fmt.Sprintf("%d/%s", d.VaultId, d.Address)
		if seenDeposits[key] {
			return fmt.Errorf("duplicate deposit entry for %s in vault %d", d.Address, d.VaultId)
		}
		seenDeposits[key] = true
		p, ok := math.NewIntFromString(d.Principal)
		if !ok || !p.IsPositive() {
			return fmt.Errorf("deposit for %s in vault %d has invalid principal %q", d.Address, d.VaultId, d.Principal)
		}
		if !v.HasDepositor(d.Address) {
			return fmt.Errorf("deposit for %s in vault %d has no depositor entry", d.Address, d.VaultId)
		}
		sum, ok := sums[d.VaultId]
		if !ok {
			sum = math.ZeroInt()
		}
		sums[d.VaultId] = sum.Add(p)
	}

	for id, v := range vaults {
		sum, ok := sums[id]
		if !ok {
			sum = math.ZeroInt()
		}
		// every listed depositor must carry a deposit entry
		for _, d := range v.Depositors {
			if !seenDeposits[fmt.Sprintf("%d/%s", id, d)] {
				return fmt.Errorf("depositor %s of vault %d has no deposit entry", d, id)
			}
		}
		if !v.TotalPrincipalInt().Equal(sum) {
			return fmt.Errorf(
				"vault %d total principal %s does not match sum of deposits %s",
				id, v.TotalPrincipalInt(), sum,
			)
		}
	}

	for _, c := range gs.Claims {
		v, ok := vaults[c.VaultId]
		if !ok {
			return fmt.Errorf("claim references unknown vault %d", c.VaultId)
		}
		if !v.WinnerSelected {
			return fmt.Errorf("claim for vault %d before settlement", c.VaultId)
		}
		if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
			return fmt.Errorf("claim for vault %d: %w", c.VaultId, err)
		}
		a, ok := math.NewIntFromString(c.Amount)
		if !ok || a.IsNegative() {
			return fmt.Errorf("claim for %s in vault %d has invalid amount %q", c.Address, c.VaultId, c.Amount)
		}
	}

	return nil
}
