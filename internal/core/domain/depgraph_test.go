package domain_test

import (
	"reflect"
	"testing"

	"github.com/forgeline/tsbridge/internal/core/domain"
)

func TestDepGraph_Direct(t *testing.T) {
	g := domain.NewDepGraph()
	g.Add("a.ts", "b.ts", "c.ts")
	g.Add("a.ts", "b.ts")

	// Insertion order and duplicates are preserved in the raw edge list.
	if got := g.Direct("a.ts"); !reflect.DeepEqual(got, []string{"b.ts", "c.ts", "b.ts"}) {
		t.Errorf("unexpected direct edges: %v", got)
	}

	if got := g.Direct("unknown.ts"); len(got) != 0 {
		t.Errorf("expected no edges for unknown file, got %v", got)
	}
}

func TestDepGraph_ReachableFrom(t *testing.T) {
	g := domain.NewDepGraph()
	g.Add("a.ts", "b.ts")
	g.Add("b.ts", "c.ts")
	g.Add("c.ts", "d.ts")

	got := g.ReachableFrom("a.ts")
	want := []string{"b.ts", "c.ts", "d.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReachableFrom(a.ts) = %v, want %v", got, want)
	}

	// The root is not part of its own reachable set without a cycle.
	for _, f := range got {
		if f == "a.ts" {
			t.Error("root must not appear without a cycle back to it")
		}
	}
}

func TestDepGraph_ReachableFrom_Cycle(t *testing.T) {
	g := domain.NewDepGraph()
	g.Add("a.ts", "b.ts")
	g.Add("b.ts", "a.ts")

	got := g.ReachableFrom("a.ts")

	// Terminates, yields each file exactly once; the cycle brings the root
	// back into its own result.
	seen := make(map[string]int)
	for _, f := range got {
		seen[f]++
	}
	if seen["b.ts"] != 1 {
		t.Errorf("expected b.ts exactly once, got %d (%v)", seen["b.ts"], got)
	}
	if seen["a.ts"] != 1 {
		t.Errorf("expected a.ts once via the cycle, got %d (%v)", seen["a.ts"], got)
	}
}

func TestDepGraph_ReachableFrom_DuplicateEdges(t *testing.T) {
	g := domain.NewDepGraph()
	g.Add("a.ts", "b.ts")
	g.Add("a.ts", "b.ts", "c.ts")

	got := g.ReachableFrom("a.ts")
	if !reflect.DeepEqual(got, []string{"b.ts", "c.ts"}) {
		t.Errorf("expected deduplicated result, got %v", got)
	}
}

func TestDepGraph_ReachableFrom_Unknown(t *testing.T) {
	g := domain.NewDepGraph()
	if got := g.ReachableFrom("never-seen.ts"); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
