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
	"github.com/sirupsen/logrus"

	"github.com/multiparty/Musketeer/ir"
)

// PruneDAG detaches the parts of the DAG the given party does not
// observe. Nodes whose output relation the party does not own become
// opaque dummies — the relation object survives so downstream
// references stay resolvable — and are dropped from their parents'
// child lists. Roots are left in place; callers filter them if needed.
// Parent edges into dummies also stay: backends skip dummies by tag.
//
// A party owning nothing in the DAG is not an error; the result is an
// all-dummy graph.
func PruneDAG(roots ir.Nodes, selfParty ir.OwnerID) {
	logrus.WithField("party", selfParty).Debug("pruning dag")
	nodes := reachable(roots)

	bad := make(map[*ir.OperatorNode]struct{})
	for _, node := range nodes {
		out := node.OutputRelation()
		if out.HasOwner(selfParty) {
			continue
		}
		logrus.WithField("relation", out.Name()).Info("relation owned by someone else")
		bad[node] = struct{}{}
		dummify(node)
	}

	if len(bad) == len(nodes) && len(nodes) > 0 {
		logrus.WithField("party", selfParty).Warn("party owns no relation in the dag")
	}

	for _, node := range nodes {
		logrus.WithField("relation", node.OutputRelation().Name()).Debug("pruning node")

		newChildren := make(ir.Nodes, 0, len(node.Children()))
		for _, child := range node.Children() {
			if _, isBad := bad[child]; !isBad {
				newChildren = append(newChildren, child)
			}
		}

		// dummify is idempotent, so re-hitting a bad parent is fine.
		for _, parent := range node.Parents() {
			if _, isBad := bad[parent]; isBad {
				dummify(parent)
			}
		}

		node.SetChildren(newChildren)
	}
}

// dummify replaces the node's operator with a payload-free dummy over
// the same output relation.
func dummify(node *ir.OperatorNode) {
	op := node.Operator()
	if op.Kind() == ir.KindDummy {
		return
	}
	out := op.OutputRelation()
	node.ReplaceOperator(ir.NewDummyOperator(op.InputDir(), []*ir.Relation{out}, out))
}
