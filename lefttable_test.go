package halfloop

import "testing"

func TestBuildLeftTableJoinsOnSharedKey(t *testing.T) {
	states1 := []LeftState{{State: 1, Key: 5}, {State: 2, Key: 7}}
	states2 := []LeftState{{State: 10, Key: 5}, {State: 11, Key: 5}, {State: 12, Key: 9}}
	states3 := []LeftState{{State: 20, Key: 5}}

	table := BuildLeftTable(states1, states2, states3)

	// Only key 5 is shared by all three inputs: states1 has one entry with
	// key 5, states2 has two, states3 has one -> 1*2*1 = 2 joined rows.
	if len(table) != 2 {
		t.Fatalf("BuildLeftTable() returned %d entries, want 2: %+v", len(table), table)
	}
	for _, e := range table {
		if e.Key != 5 || e.SX != 1 || e.SZ != 20 {
			t.Errorf("unexpected joined entry: %+v", e)
		}
		if e.SY != 10 && e.SY != 11 {
			t.Errorf("entry SY = %d, want 10 or 11: %+v", e.SY, e)
		}
	}
}

func TestBuildLeftTableNoSharedKey(t *testing.T) {
	states1 := []LeftState{{State: 1, Key: 1}}
	states2 := []LeftState{{State: 2, Key: 2}}
	states3 := []LeftState{{State: 3, Key: 3}}

	table := BuildLeftTable(states1, states2, states3)
	if len(table) != 0 {
		t.Errorf("BuildLeftTable() returned %d entries, want 0: %+v", len(table), table)
	}
}

func TestBuildLeftTableSortedBySXSYSZKey(t *testing.T) {
	states1 := []LeftState{{State: 3, Key: 1}, {State: 1, Key: 1}, {State: 2, Key: 1}}
	states2 := []LeftState{{State: 0, Key: 1}}
	states3 := []LeftState{{State: 0, Key: 1}}

	table := BuildLeftTable(states1, states2, states3)
	for i := 1; i < len(table); i++ {
		prev, cur := table[i-1], table[i]
		if cur.SX < prev.SX {
			t.Fatalf("BuildLeftTable() not sorted by SX at %d: %+v then %+v", i, prev, cur)
		}
	}
}
