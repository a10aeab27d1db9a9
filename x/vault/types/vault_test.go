package types_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/math"

	"github.com/Obiajulu-gif/vaultquest/x/vault/types"
)

func TestSimpleInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rateBps   uint64
		duration  int64
		want      int64
	}{
		{"full year at 5%", 1000, 500, types.SecondsPerYear, 50},
		{"half year at 5%", 1000, 500, types.SecondsPerYear / 2, 25},
		{"floors toward zero", 1000, 1, 3600, 0},
		{"one bps full year", 100_000, 1, types.SecondsPerYear, 10},
		{"zero principal", 0, 500, types.SecondsPerYear, 0},
		{"zero rate", 1000, 0, types.SecondsPerYear, 0},
		{"zero duration", 1000, 500, 0, 0},
		{"negative duration", 1000, 500, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := types.SimpleInterest(math.NewInt(tc.principal), tc.rateBps, tc.duration)
			require.Equal(t, math.NewInt(tc.want), got)
		})
	}
}

func TestSimpleInterestLargePrincipal(t *testing.T) {
	// amounts far beyond int64 must not overflow
	principal, ok := math.NewIntFromString("1000000000000000000000000")
	require.True(t, ok)

	got := types.SimpleInterest(principal, 500, types.SecondsPerYear)
	want, ok := math.NewIntFromString("50000000000000000000000")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestVaultMaturity(t *testing.T) {
	vault := types.Vault{CreatedAt: 1000, Duration: 500}

	require.EqualValues(t, 1500, vault.MaturesAt())
	require.False(t, vault.Matured(1499))
	require.True(t, vault.Matured(1500))
	require.True(t, vault.Matured(2000))

	require.EqualValues(t, 500, vault.TimeRemaining(1000))
	require.EqualValues(t, 1, vault.TimeRemaining(1499))
	require.Zero(t, vault.TimeRemaining(1500))
	require.Zero(t, vault.TimeRemaining(9999))
}

func TestVaultAmountAccessors(t *testing.T) {
	var vault types.Vault

	// unset totals read as zero
	require.True(t, vault.TotalPrincipalInt().IsZero())
	require.True(t, vault.TotalInterestInt().IsZero())

	vault.SetTotalPrincipal(math.NewInt(12345))
	require.Equal(t, math.NewInt(12345), vault.TotalPrincipalInt())
	require.Equal(t, "12345", vault.TotalPrincipal)

	vault.SetTotalInterest(math.NewInt(67))
	require.Equal(t, math.NewInt(67), vault.TotalInterestInt())
}

func TestDepositorSet(t *testing.T) {
	var vault types.Vault

	vault.AddDepositor("a")
	vault.AddDepositor("b")
	vault.AddDepositor("a") // no duplicate
	require.Len(t, vault.Depositors, 2)
	require.True(t, vault.HasDepositor("a"))
	require.False(t, vault.HasDepositor("c"))

	require.True(t, vault.RemoveDepositor("a"))
	require.False(t, vault.RemoveDepositor("a"))
	require.Len(t, vault.Depositors, 1)
	require.True(t, vault.HasDepositor("b"))
}

// Removing members in any order must leave exactly the survivors, with no
// duplicates and no lost entries.
func TestRemoveDepositorRandomOrders(t *testing.T) {
	members := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		var vault types.Vault
		for _, m := range members {
			vault.AddDepositor(m)
		}

		order := rng.Perm(len(members))
		removeCount := rng.Intn(len(members) + 1)
		removed := make(map[string]bool, removeCount)
		for _, idx := range order[:removeCount] {
			require.True(t, vault.RemoveDepositor(members[idx]))
			removed[members[idx]] = true
		}

		require.Len(t, vault.Depositors, len(members)-removeCount)
		seen := make(map[string]bool, len(vault.Depositors))
		for _, d := range vault.Depositors {
			require.False(t, removed[d], "removed member %s still present", d)
			require.False(t, seen[d], "duplicate member %s", d)
			seen[d] = true
		}
	}
}
