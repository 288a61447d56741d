// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mpc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multiparty/Musketeer/ir"
)

func TestPruneForeignOutput(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p2")
	sel := selectNode(in, "s", nil)
	dag := ir.Nodes{in}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	PruneDAG(dag, "p1")

	// Nothing here belongs to p1: all dummies.
	require.Equal(ir.KindDummy, in.Operator().Kind())
	require.Equal(ir.KindDummy, sel.Operator().Kind())

	// Bad children are dropped from child lists.
	require.Empty(in.Children())

	// The output relation object survives the operator swap.
	require.Equal("s", sel.OutputRelation().Name())
}

func TestPruneKeepsOwnedNodes(t *testing.T) {
	require := require.New(t)

	left := inputNode("a", "p1")
	right := inputNode("b", "p2")
	join := joinNode(left, right, "j")
	out := selectNode(join, "s", nil)
	dag := ir.Nodes{left, right}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	PruneDAG(dag, "p1")

	require.Equal(ir.KindInput, left.Operator().Kind())
	require.Equal(ir.KindDummy, right.Operator().Kind())
	require.Equal(ir.KindJoin, join.Operator().Kind())
	require.Equal(ir.KindSelect, out.Operator().Kind())

	// The join keeps its parent edge to the dummy; backends skip
	// dummies by tag.
	require.True(join.Parents().Contains(right))
	// Roots are left in place.
	require.Len(dag, 2)
}

func TestPruneConsistency(t *testing.T) {
	require := require.New(t)

	left := inputNode("a", "p1")
	right := inputNode("b", "p2")
	join := joinNode(left, right, "j")
	countNode(join, "c")
	dag := ir.Nodes{left, right}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	PruneDAG(dag, "p2")

	for _, node := range reachable(dag) {
		if node.Operator().Kind() == ir.KindDummy {
			continue
		}
		require.True(node.OutputRelation().HasOwner("p2"),
			"non-dummy %s not owned by p2", node.OutputRelation().Name())
	}
}

func TestPruneIsIdempotent(t *testing.T) {
	require := require.New(t)

	left := inputNode("a", "p1")
	right := inputNode("b", "p2")
	join := joinNode(left, right, "j")
	dag := ir.Nodes{left, right}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	PruneDAG(dag, "p1")
	first := kinds(dag)
	PruneDAG(dag, "p1")
	require.Equal(first, kinds(dag))
	_ = join
}

func TestPruneUnknownOwnerYieldsAllDummies(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p1", "p2")
	countNode(in, "c")
	dag := ir.Nodes{in}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	// An owner id absent from the DAG is not an error.
	PruneDAG(dag, "p9")

	for _, node := range reachable(dag) {
		require.Equal(ir.KindDummy, node.Operator().Kind())
	}
}
