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

// Package mpc rewrites a query-plan DAG for secure multi-party
// computation: every operator is placed in the cheap local regime or
// the expensive MPC regime, with aggregations deferred past operators
// that can absorb or pass them so MPC boundaries land as late as
// possible.
package mpc

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/multiparty/Musketeer/ir"
)

// Rewriter runs the MPC rewrite pipeline over an operator DAG. It
// mutates the DAG in place: operators may be swapped for their MPC
// variants or for dummies, and obligation-realization nodes may be
// spliced in. The zero value is not usable; construct with NewRewriter.
type Rewriter struct {
	selfParty ir.OwnerID
	observer  StateObserver
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithObserver snapshots the derivation state around every node visit
// for diagnostic replay.
func WithObserver(observer StateObserver) Option {
	return func(r *Rewriter) { r.observer = observer }
}

// NewRewriter returns a Rewriter pruning for the given party.
func NewRewriter(selfParty ir.OwnerID, opts ...Option) *Rewriter {
	r := &Rewriter{selfParty: selfParty}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RewriteDAG runs the full pipeline: topological sort, ownership
// propagation, env/mode initialization, obligation derivation, DAG
// rewrite and pruning. The pass is synchronous and single-threaded; the
// context only parents the tracing span.
func (r *Rewriter) RewriteDAG(ctx context.Context, dag ir.Nodes) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "mpc.rewrite_dag")
	defer span.Finish()

	stage := func(name string) opentracing.Span {
		return span.Tracer().StartSpan(name, opentracing.ChildOf(span.Context()))
	}

	topoSpan := stage("mpc.topological_order")
	order, err := TopologicalOrder(dag)
	topoSpan.Finish()
	if err != nil {
		return err
	}

	ownSpan := stage("mpc.propagate_ownership")
	PropagateOwnership(order)
	ownSpan.Finish()

	env := NewEnvironment()
	mode := make(ModeMap)
	InitEnvAndMode(env, mode, DetermineInputs(dag))

	deriveSpan := stage("mpc.derive_obligations")
	err = DeriveObligations(order, env, mode, dag, r.observer)
	deriveSpan.Finish()
	if err != nil {
		return err
	}

	rewriteSpan := stage("mpc.rewrite")
	err = rewriteNodes(dag, env, mode)
	rewriteSpan.Finish()
	if err != nil {
		return err
	}

	pruneSpan := stage("mpc.prune")
	PruneDAG(dag, r.selfParty)
	pruneSpan.Finish()

	return nil
}

// rewriteNodes realizes the deriver's decisions in a single BFS pass
// from the roots: MPC-mode nodes swap to their MPC variants, and
// relations still holding an obligation get a realization node spliced
// in. The two cases are mutually exclusive per node.
func rewriteNodes(dag ir.Nodes, env *Environment, mode ModeMap) error {
	visited := make(map[*ir.OperatorNode]struct{}, len(dag))
	queue := make(ir.Nodes, 0, len(dag))
	for _, root := range dag {
		if _, ok := visited[root]; ok {
			continue
		}
		visited[root] = struct{}{}
		queue = append(queue, root)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		relName := cur.OutputRelation().Name()
		log := logrus.WithField("relation", relName)
		log.Debug("visiting node")

		for _, child := range append(cur.Children(), cur.LoopChildren()...) {
			if _, ok := visited[child]; !ok {
				visited[child] = struct{}{}
				queue = append(queue, child)
			}
		}

		if mode[relName] == MPC {
			if cur.Operator().IsMPC() {
				continue
			}
			log.Debug("replacing with mpc operator")
			mpcOp, err := ir.ToMPC(cur.Operator())
			if err != nil {
				return err
			}
			cur.ReplaceOperator(mpcOp)
		} else if env.Has(relName) {
			log.Debug("inserting obligation node")
			obl := env.Pop(relName)
			insertNode(cur, obl.BlockedBy(), ir.NewOperatorNode(obl.Operator()))
		}
	}
	return nil
}

// insertNode splices newNode in below at. With a non-nil child the edge
// at→child becomes at→newNode→child and child's operator re-reads its
// input from newNode's output; with no child, newNode becomes a leaf
// below at.
func insertNode(at, child, newNode *ir.OperatorNode) *ir.OperatorNode {
	atRel := at.OutputRelation()

	newOp := newNode.Operator()
	newRel := newOp.OutputRelation()
	logrus.WithField("relation", newRel.Name()).Debug("inserting obligation node")

	newOp.SetRelations([]*ir.Relation{atRel})
	newOp.UpdateColumns()

	if child != nil {
		at.SetChildren(append(at.Children().Remove(child), newNode))
		newNode.SetParents(ir.Nodes{at})
		newNode.SetChildren(ir.Nodes{child})
		child.SetParents(append(child.Parents().Remove(at), newNode))

		childOp := child.Operator()
		rels := childOp.Relations()
		updated := make([]*ir.Relation, len(rels))
		for i, rel := range rels {
			if rel == atRel {
				updated[i] = newRel
			} else {
				updated[i] = rel
			}
		}
		childOp.SetRelations(updated)
		childOp.UpdateColumns()
	} else {
		at.AddChild(newNode)
	}

	return newNode
}
