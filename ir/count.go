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

// CountOperator counts rows, per group when grouping columns are
// present.
type CountOperator struct {
	groupByOperator
}

var _ Aggregation = (*CountOperator)(nil)

func NewCountOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) *CountOperator {
	return &CountOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
	}
}

func (o *CountOperator) Kind() Kind { return KindCount }

func (o *CountOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *CountOperator) Clone() Operator {
	return &CountOperator{groupByOperator: o.groupByOperator.clone()}
}
