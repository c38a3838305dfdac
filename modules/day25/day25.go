package day25

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/adventgrid/internal/aoc"
)

// wires is the number of connections to disconnect.
const wires = 3

// Graph is the component wiring diagram. Edges are weighted so that merged
// vertices can carry parallel connections.
type Graph struct {
	Names []string
	adj   []map[int]int
}

func (g *Graph) node(name string, index map[string]int) int {
	if i, ok := index[name]; ok {
		return i
	}
	index[name] = len(g.Names)
	g.Names = append(g.Names, name)
	g.adj = append(g.adj, make(map[int]int))
	return index[name]
}

// Parse reads lines like "jqt: rhn xhk nvd". Connections are undirected.
func Parse(input string) (*Graph, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	g := &Graph{}
	index := make(map[string]int)
	for i, line := range lines {
		name, links, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, aoc.LineError(i, fmt.Errorf("malformed connection list %q", line))
		}
		u := g.node(name, index)
		for _, l := range strings.Fields(links) {
			v := g.node(l, index)
			if u == v {
				return nil, aoc.LineError(i, fmt.Errorf("%s connects to itself", name))
			}
			g.adj[u][v]++
			g.adj[v][u]++
		}
	}
	return g, nil
}

// Len is the number of components.
func (g *Graph) Len() int { return len(g.Names) }

// MinCut runs Stoer-Wagner and returns the weight of the lightest cut found
// and the number of components on one side of it. It stops as soon as a cut
// of at most limit edges turns up.
func (g *Graph) MinCut(limit int) (cut, side int) {
	adj := make([]map[int]int, len(g.adj))
	for i, m := range g.adj {
		adj[i] = make(map[int]int, len(m))
		for k, v := range m {
			adj[i][k] = v
		}
	}
	size := make([]int, len(adj))
	active := make([]int, len(adj))
	for i := range adj {
		size[i], active[i] = 1, i
	}

	cut = -1
	for len(active) > 1 {
		s, t, w := phase(adj, active)
		if cut < 0 || w < cut {
			cut, side = w, size[t]
		}
		if cut <= limit {
			break
		}
		// Merge t into s.
		for u, wt := range adj[t] {
			if u == s {
				continue
			}
			adj[s][u] += wt
			adj[u][s] += wt
			delete(adj[u], t)
		}
		delete(adj[s], t)
		size[s] += size[t]
		active = slices.DeleteFunc(active, func(v int) bool { return v == t })
	}
	return cut, side
}

// phase grows a set from active[0], always adding the vertex most tightly
// connected to it. It returns the last two vertices added and the weight
// connecting the last one to the rest.
func phase(adj []map[int]int, active []int) (s, t, w int) {
	weight := make(map[int]int, len(active))
	added := make(map[int]bool, len(active))
	var q aoc.PQ[int]
	for _, v := range active {
		q.Push(v, 0)
	}
	prev, last := -1, -1
	for q.Len() > 0 {
		v, p := q.Pop()
		if added[v] || -p != weight[v] {
			continue
		}
		added[v] = true
		prev, last = last, v
		for u, wt := range adj[v] {
			if !added[u] {
				weight[u] += wt
				q.Push(u, -weight[u])
			}
		}
	}
	return prev, last, weight[last]
}

// Part1 cuts the three wires and multiplies the sizes of the two groups.
func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if g.Len() < 2 {
		return 0, aoc.ErrNoSolution
	}
	cut, side := g.MinCut(wires)
	if cut != wires {
		return 0, fmt.Errorf("lightest cut has %d wires: %w", cut, aoc.ErrNoSolution)
	}
	return side * (g.Len() - side), nil
}
