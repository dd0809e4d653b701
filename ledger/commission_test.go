package ledger

import "testing"

func TestCommissionPercentPerTier(t *testing.T) {
	want := map[int]int{1: 8, 2: 15, 3: 20, 4: 25, 5: 35}
	for vip, pct := range want {
		if got := CommissionPercent(vip); got != pct {
			t.Fatalf("vip %d percent = %d, want %d", vip, got, pct)
		}
	}
}

func TestCommissionPercentOutOfRange(t *testing.T) {
	for _, vip := range []int{0, -1, 6, 100} {
		if got := CommissionPercent(vip); got != 0 {
			t.Fatalf("vip %d percent = %d, want 0", vip, got)
		}
	}
}

func TestCommissionTableAscending(t *testing.T) {
	table := CommissionTable()
	if len(table) != 5 {
		t.Fatalf("expected 5 tiers, got %d", len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i].Vip <= table[i-1].Vip || table[i].Percent <= table[i-1].Percent {
			t.Fatalf("tier table not strictly ascending at index %d", i)
		}
	}
}
