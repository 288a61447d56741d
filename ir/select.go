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

// SelectOperator filters its input by the attached condition tree.
type SelectOperator struct {
	baseOperator
}

var _ Operator = (*SelectOperator)(nil)

func NewSelectOperator(inputDir string, condition *ConditionTree, relations []*Relation, output *Relation) *SelectOperator {
	return &SelectOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, condition),
	}
}

func (o *SelectOperator) Kind() Kind { return KindSelect }

func (o *SelectOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *SelectOperator) Clone() Operator {
	return &SelectOperator{baseOperator: o.baseOperator.clone()}
}

func (o *SelectOperator) UpdateColumns() {
	o.rebindCondition()
	o.rebindOutput()
}
