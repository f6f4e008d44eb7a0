package unionfind

import "testing"

func TestUnionFindBasic(t *testing.T) {
	uf := New(6)
	for i := 0; i < 6; i++ {
		if !uf.Connected(i, i) {
			t.Fatalf("singleton %d not connected to itself", i)
		}
	}

	uf.Union(0, 1)
	uf.Union(1, 2)
	uf.Union(4, 5)

	if !uf.Connected(0, 2) {
		t.Fatal("0 and 2 should be connected after 0-1, 1-2 union")
	}
	if uf.Connected(0, 3) {
		t.Fatal("0 and 3 should not be connected")
	}
	if !uf.Connected(4, 5) {
		t.Fatal("4 and 5 should be connected")
	}

	uf.Union(2, 4)
	if !uf.Connected(0, 5) {
		t.Fatal("0 and 5 should be connected transitively")
	}
}

func TestUnionFindGroups(t *testing.T) {
	uf := New(4)
	uf.Union(0, 1)
	uf.Union(2, 3)

	groups := uf.Groups()
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	sizes := make(map[int]bool)
	for _, members := range groups {
		sizes[len(members)] = true
	}
	if !sizes[2] {
		t.Fatalf("expected groups of size 2, got %v", groups)
	}
}
