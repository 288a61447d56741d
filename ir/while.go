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

package ir

// WhileOperator is the fixed-point control operator. Its body hangs off
// the node's loop-child list; the condition decides when iteration
// stops.
type WhileOperator struct {
	baseOperator
}

var _ Operator = (*WhileOperator)(nil)

func NewWhileOperator(inputDir string, condition *ConditionTree, relations []*Relation, output *Relation) *WhileOperator {
	return &WhileOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, condition),
	}
}

func (o *WhileOperator) Kind() Kind { return KindWhile }

// MPC returns the operator itself. Loop control stays with the local
// driver; only the loop body operators change regime.
func (o *WhileOperator) MPC() (Operator, error) { return o, nil }

func (o *WhileOperator) Clone() Operator {
	return &WhileOperator{baseOperator: o.baseOperator.clone()}
}

func (o *WhileOperator) UpdateColumns() {
	o.rebindCondition()
	o.rebindOutput()
}
