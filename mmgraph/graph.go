/*
 * graph.go, part of the computational-chemistry library.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package mmgraph exposes a derived bonded topology as a
//gonum.org/v1/gonum/graph undirected graph, so the generic graph
//algorithms apply to molecules: connected components give the covalent
//fragments of the system, paths follow bonds, and so on.
package mmgraph

import (
	"sort"

	mm "github.com/strekowski/computational-chemistry"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

//Node is an atom index in the molecule the topology came from.
type Node int64

func (n Node) ID() int64 { return int64(n) }

//Edge is a bond between two atoms.
type Edge struct {
	F, T Node
}

func (e Edge) From() graph.Node         { return e.F }
func (e Edge) To() graph.Node           { return e.T }
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F} }

//nodes iterates over a fixed slice of atom indexes, implementing
//graph.Nodes.
type nodes struct {
	ids  []int64
	curr int
}

func newNodes(ids []int64) *nodes {
	return &nodes{ids: ids, curr: -1}
}

func (n *nodes) Len() int {
	return len(n.ids) - n.curr - 1
}

func (n *nodes) Next() bool {
	if n.curr+1 < len(n.ids) {
		n.curr++
		return true
	}
	return false
}

func (n *nodes) Reset() {
	n.curr = -1
}

func (n *nodes) Node() graph.Node {
	return Node(n.ids[n.curr])
}

//Graph is a read-only undirected view over a bonded topology. It
//implements gonum's graph.Undirected.
type Graph struct {
	top *mm.Topology
	n   int
}

//New wraps the topology of an n-atom molecule.
func New(top *mm.Topology, n int) *Graph {
	return &Graph{top: top, n: n}
}

//Node returns the node with the given id, or nil if it is out of
//range.
func (g *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(g.n) {
		return nil
	}
	return Node(id)
}

//Nodes returns an iterator over all atoms.
func (g *Graph) Nodes() graph.Nodes {
	ids := make([]int64, g.n)
	for i := range ids {
		ids[i] = int64(i)
	}
	return newNodes(ids)
}

//From returns an iterator over the bonded neighbors of id.
func (g *Graph) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(g.n) {
		return graph.Empty
	}
	adj := g.top.Adjacency[id]
	ids := make([]int64, len(adj))
	for i, v := range adj {
		ids[i] = int64(v)
	}
	return newNodes(ids)
}

//HasEdgeBetween reports whether the atoms xid and yid are bonded.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	if xid == yid || xid < 0 || xid >= int64(g.n) {
		return false
	}
	for _, v := range g.top.Adjacency[xid] {
		if int64(v) == yid {
			return true
		}
	}
	return false
}

//EdgeBetween returns the bond between xid and yid, or nil.
func (g *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	if g.HasEdgeBetween(xid, yid) {
		return Edge{F: Node(xid), T: Node(yid)}
	}
	return nil
}

//Edge is EdgeBetween; the graph is undirected.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

//Fragments returns the covalently connected components of the
//molecule, as sorted atom-index slices, ordered by their smallest
//member. A system read in as several molecules (a dimer, a solute plus
//solvent) shows up as several fragments.
func Fragments(g *Graph) [][]int {
	comps := topo.ConnectedComponents(g)
	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		frag := make([]int, len(c))
		for i, nd := range c {
			frag[i] = int(nd.ID())
		}
		sort.Ints(frag)
		out = append(out, frag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
