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
	"github.com/multiparty/Musketeer/ir"
)

// reachable returns every node reachable from the roots through child
// and loop-child edges, in BFS discovery order.
func reachable(roots ir.Nodes) ir.Nodes {
	seen := make(map[*ir.OperatorNode]struct{}, len(roots))
	var order ir.Nodes
	queue := make(ir.Nodes, 0, len(roots))
	for _, root := range roots {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		queue = append(queue, root)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, child := range append(cur.Children(), cur.LoopChildren()...) {
			if _, ok := seen[child]; !ok {
				seen[child] = struct{}{}
				queue = append(queue, child)
			}
		}
	}
	return order
}

// TopologicalOrder sorts every node reachable from the roots so that
// each node appears strictly after all of its parents. It returns
// ErrMalformedDAG on a cycle or on a parent reference that is not part
// of the graph.
func TopologicalOrder(roots ir.Nodes) (ir.Nodes, error) {
	nodes := reachable(roots)
	inGraph := make(map[*ir.OperatorNode]struct{}, len(nodes))
	for _, n := range nodes {
		inGraph[n] = struct{}{}
	}

	indegree := make(map[*ir.OperatorNode]int, len(nodes))
	for _, n := range nodes {
		for _, p := range n.Parents() {
			if _, ok := inGraph[p]; !ok {
				return nil, ir.ErrMalformedDAG.New(
					"node " + n.OutputRelation().Name() + " has a parent outside the dag")
			}
			indegree[n]++
		}
	}

	queue := make(ir.Nodes, 0, len(nodes))
	for _, n := range nodes {
		if indegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make(ir.Nodes, 0, len(nodes))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, child := range append(cur.Children(), cur.LoopChildren()...) {
			if _, ok := inGraph[child]; !ok {
				continue
			}
			indegree[child]--
			if indegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, ir.ErrMalformedDAG.New("cycle detected")
	}
	return order, nil
}

// DetermineInputs collects the names of the source relations of the
// DAG: outputs of Input operators plus any relation read by an operator
// but produced by no node in the graph.
func DetermineInputs(roots ir.Nodes) map[string]struct{} {
	nodes := reachable(roots)

	produced := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		produced[n.OutputRelation().Name()] = struct{}{}
	}

	inputs := make(map[string]struct{})
	for _, n := range nodes {
		if n.Operator().Kind() == ir.KindInput {
			inputs[n.OutputRelation().Name()] = struct{}{}
		}
		for _, rel := range n.Operator().Relations() {
			if _, ok := produced[rel.Name()]; !ok {
				inputs[rel.Name()] = struct{}{}
			}
		}
	}
	return inputs
}
