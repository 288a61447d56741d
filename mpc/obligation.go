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
	"fmt"

	"github.com/multiparty/Musketeer/ir"
)

// Obligation is a deferred aggregation. It is captured at the emitting
// node together with the child edge it follows, and travels down the
// DAG until an operator passes it on, absorbs it, or blocks it. A
// blocked obligation remembers the blocking node so the rewriter can
// materialize the aggregation on the edge into it.
type Obligation struct {
	src       *ir.OperatorNode
	index     int
	op        ir.Operator
	blockedBy *ir.OperatorNode
}

// NewObligation captures the aggregation at src for its index-th child
// edge. The realization operator is a clone of the emitting aggregation
// re-targeted at a fresh output relation, so materializing the
// obligation later never aliases the source's output.
func NewObligation(src *ir.OperatorNode, index int) *Obligation {
	op := src.Operator().Clone()
	srcRel := op.OutputRelation()
	name := fmt.Sprintf("%s_obl_%d", srcRel.Name(), index)
	cols := make([]ir.Column, len(srcRel.Columns()))
	copy(cols, srcRel.Columns())
	rel := ir.NewRelation(name, ir.RebindColumns(cols, name), srcRel.Owners()...)
	op.SetOutputRelation(rel)
	return &Obligation{src: src, index: index, op: op}
}

// Name identifies the obligation by its realization relation.
func (o *Obligation) Name() string { return o.op.OutputRelation().Name() }

// SrcNode returns the node the obligation was emitted at.
func (o *Obligation) SrcNode() *ir.OperatorNode { return o.src }

// Index returns the child edge the obligation follows.
func (o *Obligation) Index() int { return o.index }

// Operator returns the realization operator.
func (o *Obligation) Operator() ir.Operator { return o.op }

// BlockedBy returns the node the obligation was stopped at, or nil
// while the obligation is still in flight.
func (o *Obligation) BlockedBy() *ir.OperatorNode { return o.blockedBy }

func (o *Obligation) SetBlockedBy(node *ir.OperatorNode) { o.blockedBy = node }

// agg returns the deferred aggregation's payload. Obligations are only
// ever emitted by aggregations.
func (o *Obligation) agg() ir.Aggregation {
	return o.op.(ir.Aggregation)
}

// CanPass reports whether the deferred aggregation commutes past op.
// For binary operators, other is the obligation arriving on the other
// edge, if any; a passable pair merges and only the receiver is
// forwarded.
func (o *Obligation) CanPass(op ir.Operator, other *Obligation) bool {
	agg := o.agg()
	switch op := op.(type) {
	case *ir.ProjectOperator:
		// The projection must retain the grouping columns and the
		// aggregated column.
		for _, g := range agg.GroupBys() {
			if !ir.ColumnsContain(op.ProjectedColumns(), g) {
				return false
			}
		}
		return ir.ColumnsContain(op.ProjectedColumns(), agg.AggColumn())
	case *ir.SelectOperator:
		// A filter touching the aggregated column observes the
		// aggregate's value and pins the aggregation above it.
		return !op.Condition().References(agg.AggColumn())
	case *ir.JoinOperator:
		if other != nil && other.agg().Kind() != agg.Kind() {
			return false
		}
		// The grouping must align with the join keys on one side.
		return ir.ColumnsMatch(agg.GroupBys(), op.LeftKeys()) ||
			ir.ColumnsMatch(agg.GroupBys(), op.RightKeys())
	case *ir.UnionOperator:
		if other == nil {
			return true
		}
		return other.agg().Kind() == agg.Kind() &&
			ir.ColumnsMatch(agg.GroupBys(), other.agg().GroupBys())
	default:
		return false
	}
}

// CanAbsorb reports whether op subsumes the deferred aggregation: op
// must itself be an aggregation of a dominating kind over a coarser (or
// equal) grouping. An absorbed obligation is realized by op itself and
// never materializes a new node.
func (o *Obligation) CanAbsorb(op ir.Operator) bool {
	agg, ok := op.(ir.Aggregation)
	if !ok {
		return false
	}
	if !dominates(agg, o.agg()) {
		return false
	}
	for _, g := range agg.GroupBys() {
		if !ir.ColumnsContain(o.agg().GroupBys(), g) {
			return false
		}
	}
	return true
}

// dominates fixes the kind-level absorption table: re-aggregating with
// upper subsumes a pending lower.
func dominates(upper, lower ir.Aggregation) bool {
	switch upper.Kind() {
	case ir.KindCount:
		return lower.Kind() == ir.KindCount
	case ir.KindSum:
		// Summing per-group counts yields the coarser count.
		return lower.Kind() == ir.KindSum || lower.Kind() == ir.KindCount
	case ir.KindMin:
		return lower.Kind() == ir.KindMin
	case ir.KindMax:
		return lower.Kind() == ir.KindMax
	case ir.KindAgg:
		up, uok := upper.(*ir.AggOperator)
		low, lok := lower.(*ir.AggOperator)
		return uok && lok && up.Fn() == low.Fn()
	}
	return false
}
