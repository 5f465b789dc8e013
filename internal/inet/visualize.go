package inet

import "strings"

// Visualize renders the reachable structure below root as a Graphviz DOT
// graph, labeling each structural node by its tag and location and each
// VAR/SUB/NUL/ERA leaf by its tag alone. It stops descending at
// VAR/SUB/NUL/ERA and at locations already visited, so a graph with shared
// substructure (superpositions, duplicated bodies) prints once per node
// rather than looping forever.
func (n *Net) Visualize(root Term) string {
	var b strings.Builder
	b.WriteString("digraph inet {\n")
	b.WriteString("  rankdir=TB;\n  node [shape=box];\n")
	seen := make(map[Loc]bool)
	n.visualizeNode(&b, root, seen)
	b.WriteString("}\n")
	return b.String()
}

func (n *Net) visualizeNode(b *strings.Builder, t Term, seen map[Loc]bool) string {
	id := nodeID(t)
	switch t.Tag() {
	case VAR, SUB, NUL, ERA:
		b.WriteString("  " + id + " [label=\"" + t.Tag().String() + "\"];\n")
		return id
	default:
		loc := t.Loc()
		if seen[loc] {
			return id
		}
		seen[loc] = true
		b.WriteString("  " + id + " [label=\"" + t.Tag().String() + "@" + itoa(uint64(loc)) + "\"];\n")
		c1 := n.visualizeNode(b, n.Get(loc+1), seen)
		c2 := n.visualizeNode(b, n.Get(loc+2), seen)
		b.WriteString("  " + id + " -> " + c1 + " [label=\"1\"];\n")
		b.WriteString("  " + id + " -> " + c2 + " [label=\"2\"];\n")
		return id
	}
}

func nodeID(t Term) string {
	return "n" + t.Tag().String() + "_" + itoa(uint64(t.Loc()))
}
