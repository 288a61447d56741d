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

// MinOperator keeps the minimum of the aggregated column per group.
type MinOperator struct {
	groupByOperator
}

var _ Aggregation = (*MinOperator)(nil)

func NewMinOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) *MinOperator {
	return &MinOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
	}
}

func (o *MinOperator) Kind() Kind { return KindMin }

func (o *MinOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *MinOperator) Clone() Operator {
	return &MinOperator{groupByOperator: o.groupByOperator.clone()}
}

// MaxOperator keeps the maximum of the aggregated column per group.
type MaxOperator struct {
	groupByOperator
}

var _ Aggregation = (*MaxOperator)(nil)

func NewMaxOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) *MaxOperator {
	return &MaxOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
	}
}

func (o *MaxOperator) Kind() Kind { return KindMax }

func (o *MaxOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *MaxOperator) Clone() Operator {
	return &MaxOperator{groupByOperator: o.groupByOperator.clone()}
}

// SumOperator sums the aggregated column per group.
type SumOperator struct {
	groupByOperator
}

var _ Aggregation = (*SumOperator)(nil)

func NewSumOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) *SumOperator {
	return &SumOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
	}
}

func (o *SumOperator) Kind() Kind { return KindSum }

func (o *SumOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *SumOperator) Clone() Operator {
	return &SumOperator{groupByOperator: o.groupByOperator.clone()}
}

// AvgOperator averages the aggregated column per group.
type AvgOperator struct {
	groupByOperator
}

var _ Aggregation = (*AvgOperator)(nil)

func NewAvgOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) *AvgOperator {
	return &AvgOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
	}
}

func (o *AvgOperator) Kind() Kind { return KindAvg }

func (o *AvgOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *AvgOperator) Clone() Operator {
	return &AvgOperator{groupByOperator: o.groupByOperator.clone()}
}
