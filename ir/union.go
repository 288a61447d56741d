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

// UnionOperator concatenates its two inputs. Like Join, input index 0
// is the left side.
type UnionOperator struct {
	baseOperator
}

var _ Operator = (*UnionOperator)(nil)

func NewUnionOperator(inputDir string, relations []*Relation, output *Relation) *UnionOperator {
	return &UnionOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, nil),
	}
}

func (o *UnionOperator) Kind() Kind { return KindUnion }

func (o *UnionOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *UnionOperator) Clone() Operator {
	return &UnionOperator{baseOperator: o.baseOperator.clone()}
}

func (o *UnionOperator) UpdateColumns() {
	o.rebindOutput()
}
