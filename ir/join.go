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

// JoinOperator joins its two inputs on the listed key columns. Input
// index 0 is the left side and index 1 the right side, mirroring the
// node's parent order.
type JoinOperator struct {
	baseOperator
	leftKeys  []Column
	rightKeys []Column
}

var _ Operator = (*JoinOperator)(nil)

func NewJoinOperator(inputDir string, leftKeys, rightKeys []Column, relations []*Relation, output *Relation) *JoinOperator {
	return &JoinOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, nil),
		leftKeys:     leftKeys,
		rightKeys:    rightKeys,
	}
}

func (o *JoinOperator) Kind() Kind { return KindJoin }

func (o *JoinOperator) LeftKeys() []Column { return o.leftKeys }

func (o *JoinOperator) RightKeys() []Column { return o.rightKeys }

func (o *JoinOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *JoinOperator) Clone() Operator {
	left := make([]Column, len(o.leftKeys))
	copy(left, o.leftKeys)
	right := make([]Column, len(o.rightKeys))
	copy(right, o.rightKeys)
	return &JoinOperator{baseOperator: o.baseOperator.clone(), leftKeys: left, rightKeys: right}
}

func (o *JoinOperator) UpdateColumns() {
	if len(o.relations) > 0 {
		o.leftKeys = RebindColumns(o.leftKeys, o.relations[0].Name())
	}
	if len(o.relations) > 1 {
		o.rightKeys = RebindColumns(o.rightKeys, o.relations[1].Name())
	}
	o.rebindOutput()
}
