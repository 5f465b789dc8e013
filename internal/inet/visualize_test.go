package inet

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestVisualizeTrivialValue(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	dot := n.Visualize(NUL_())
	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "visualize_trivial", []byte(dot))
}

func TestVisualizeSharedSubstructureVisitedOnce(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	shared, err := n.NewSup(NUL_(), ERA_())
	if err != nil {
		t.Fatal(err)
	}
	supLoc, err := n.NewSup(MustPack(SUP, uint64(shared)), MustPack(SUP, uint64(shared)))
	if err != nil {
		t.Fatal(err)
	}
	dot := n.Visualize(MustPack(SUP, uint64(supLoc)))
	if got, want := countOccurrences(dot, "label=\"SUP@"+itoa(uint64(shared))+"\""), 1; got != want {
		t.Fatalf("shared node rendered %d times, want %d:\n%s", got, want, dot)
	}
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
		}
	}
	return count
}
