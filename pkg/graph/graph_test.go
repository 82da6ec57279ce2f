package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{"Empty", 0, nil},
		{"Small", 5, nil},
		{"Negative", -1, ErrNegativeVertexCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d) error = %v, want %v", tt.n, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if g.VertexCount() != tt.n {
				t.Errorf("VertexCount = %d, want %d", g.VertexCount(), tt.n)
			}
			if g.EdgeCount() != 0 {
				t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		u, v    int
		wantErr error
	}{
		{"Valid", 1, 2, nil},
		{"SelfLoop", 2, 2, nil},
		{"SourceZero", 0, 1, ErrVertexOutOfRange},
		{"SourceTooLarge", 4, 1, ErrVertexOutOfRange},
		{"TargetZero", 1, 0, ErrVertexOutOfRange},
		{"TargetNegative", 1, -3, ErrVertexOutOfRange},
		{"TargetTooLarge", 1, 4, ErrVertexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(3)
			if err := g.AddEdge(tt.u, tt.v); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge(%d, %d) error = %v, want %v", tt.u, tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestAddEdgeKeepsDuplicates(t *testing.T) {
	g, _ := New(2)
	for i := 0; i < 3; i++ {
		if err := g.AddEdge(1, 2); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3 (parallel edges are kept)", g.EdgeCount())
	}
	if got := len(g.Neighbors(1)); got != 3 {
		t.Errorf("len(Neighbors(1)) = %d, want 3", got)
	}
}

func TestSortAdjacency(t *testing.T) {
	g, _ := New(4)
	for _, e := range [][2]int{{1, 4}, {1, 2}, {1, 3}, {1, 2}, {2, 1}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	g.SortAdjacency()

	want := []int{2, 2, 3, 4}
	if got := g.Neighbors(1); !slices.Equal(got, want) {
		t.Errorf("Neighbors(1) = %v, want %v", got, want)
	}
}

func TestNeighborsOutOfRange(t *testing.T) {
	g, _ := New(2)
	if g.Neighbors(0) != nil {
		t.Error("Neighbors(0) should be nil")
	}
	if g.Neighbors(3) != nil {
		t.Error("Neighbors(3) should be nil")
	}
	if g.OutDegree(99) != 0 {
		t.Error("OutDegree(99) should be 0")
	}
}

func TestHasVertex(t *testing.T) {
	g, _ := New(3)
	for v, want := range map[int]bool{0: false, 1: true, 3: true, 4: false, -1: false} {
		if got := g.HasVertex(v); got != want {
			t.Errorf("HasVertex(%d) = %v, want %v", v, got, want)
		}
	}
}
