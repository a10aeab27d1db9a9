package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

const (
	// SecondsPerYear is the year length used by the simple interest formula (365 days).
	SecondsPerYear = 365 * 24 * 60 * 60

	// BpsDenominator converts basis points into a rate.
	BpsDenominator = 10_000
)

// Vault is one time-boxed pooled-deposit instance. Amount totals are kept as
// decimal strings so the record stays a plain gogo message; use the Int
// accessors for arithmetic. Per-depositor balances live in dedicated
// composite-keyed collections, not on the record.
type Vault struct {
	Id              uint64   `protobuf:"varint,1,opt,name=id,proto3"                                             json:"id,omitempty"`
	Name            string   `protobuf:"bytes,2,opt,name=name,proto3"                                            json:"name,omitempty"`
	Denom           string   `protobuf:"bytes,3,opt,name=denom,proto3"                                           json:"denom,omitempty"`
	CreatedAt       int64    `protobuf:"varint,4,opt,name=created_at,json=createdAt,proto3"                      json:"created_at,omitempty"`
	Duration        int64    `protobuf:"varint,5,opt,name=duration,proto3"                                       json:"duration,omitempty"`
	InterestRateBps uint64   `protobuf:"varint,6,opt,name=interest_rate_bps,json=interestRateBps,proto3"         json:"interest_rate_bps,omitempty"`
	Active          bool     `protobuf:"varint,7,opt,name=active,proto3"                                         json:"active,omitempty"`
	TotalPrincipal  string   `protobuf:"bytes,8,opt,name=total_principal,json=totalPrincipal,proto3"             json:"total_principal,omitempty"`
	Depositors      []string `protobuf:"bytes,9,rep,name=depositors,proto3"                                      json:"depositors,omitempty"`
	WinnerSelected  bool     `protobuf:"varint,10,opt,name=winner_selected,json=winnerSelected,proto3"           json:"winner_selected,omitempty"`
	Winner          string   `protobuf:"bytes,11,opt,name=winner,proto3"                                         json:"winner,omitempty"`
	TotalInterest   string   `protobuf:"bytes,12,opt,name=total_interest,json=totalInterest,proto3"              json:"total_interest,omitempty"`
}

// ProtoMessage implements proto.Message
func (Vault) ProtoMessage() {}

// Reset implements proto.Message
func (m *Vault) Reset() { *m = Vault{} }

// String implements proto.Message
func (m *Vault) String() string {
	bz, err := json.Marshal(m)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// XXX_MessageName returns the fully qualified proto name.
func (Vault) XXX_MessageName() string { return "vaultquest.vault.v1.Vault" }

// MaturesAt returns the unix second at which the deposit window closes and
// settlement becomes eligible.
func (m Vault) MaturesAt() int64 { return m.CreatedAt + m.Duration }

// Matured reports whether the vault has reached maturity at the given time.
func (m Vault) Matured(now int64) bool { return now >= m.MaturesAt() }

// TimeRemaining returns the seconds left in the deposit window, clamped at zero.
func (m Vault) TimeRemaining(now int64) int64 {
	if r := m.MaturesAt() - now; r > 0 {
		return r
	}
	return 0
}

// TotalPrincipalInt parses the stored principal total. An unset total reads
// as zero.
func (m Vault) TotalPrincipalInt() math.Int {
	return parseIntString(m.TotalPrincipal)
}

// SetTotalPrincipal stores the principal total.
func (m *Vault) SetTotalPrincipal(v math.Int) {
	m.TotalPrincipal = v.String()
}

// TotalInterestInt parses the settled interest pot. Zero before settlement.
func (m Vault) TotalInterestInt() math.Int {
	return parseIntString(m.TotalInterest)
}

// SetTotalInterest stores the settled interest pot.
func (m *Vault) SetTotalInterest(v math.Int) {
	m.TotalInterest = v.String()
}

// HasDepositor reports whether addr is currently in the depositor set.
func (m Vault) HasDepositor(addr string) bool {
	for _, d := range m.Depositors {
		if d == addr {
			return true
		}
	}
	return false
}

// AddDepositor appends addr if not already present.
func (m *Vault) AddDepositor(addr string) {
	if !m.HasDepositor(addr) {
		m.Depositors = append(m.Depositors, addr)
	}
}

// RemoveDepositor removes addr via swap-with-last-and-truncate. Insertion
// order is not preserved after the first removal; the list's order carries no
// meaning beyond winner indexing over its current length.
func (m *Vault) RemoveDepositor(addr string) bool {
	for i, d := range m.Depositors {
		if d == addr {
			last := len(m.Depositors) - 1
			m.Depositors[i] = m.Depositors[last]
			m.Depositors = m.Depositors[:last]
			return true
		}
	}
	return false
}

// SimpleInterest computes non-compounding interest with floor division:
// principal * rateBps * durationSeconds / (10_000 * secondsPerYear).
func SimpleInterest(principal math.Int, rateBps uint64, durationSeconds int64) math.Int {
	if !principal.IsPositive() || rateBps == 0 || durationSeconds <= 0 {
		return math.ZeroInt()
	}
	num := principal.
		Mul(math.NewIntFromUint64(rateBps)).
		Mul(math.NewInt(durationSeconds))
	return num.Quo(math.NewInt(BpsDenominator * SecondsPerYear))
}

func parseIntString(s string) math.Int {
	if s == "" {
		return math.ZeroInt()
	}
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.ZeroInt()
	}
	return v
}
