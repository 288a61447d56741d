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

import "fmt"

// ArithmeticFn is the combining function of a generic aggregation.
type ArithmeticFn int

const (
	Plus ArithmeticFn = iota
	Minus
	Times
	Divide
)

func (f ArithmeticFn) String() string {
	switch f {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divide:
		return "/"
	}
	return fmt.Sprintf("ArithmeticFn(%d)", int(f))
}

// groupByOperator carries the shared payload of all aggregations: the
// grouping columns and the aggregated column.
type groupByOperator struct {
	baseOperator
	groupBys []Column
	column   Column
}

func newGroupByOperator(inputDir string, condition *ConditionTree, groupBys []Column, relations []*Relation, column Column, output *Relation) groupByOperator {
	return groupByOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, condition),
		groupBys:     groupBys,
		column:       column,
	}
}

func (o *groupByOperator) GroupBys() []Column { return o.groupBys }

func (o *groupByOperator) AggColumn() Column { return o.column }

func (o *groupByOperator) HasGroupBy() bool { return len(o.groupBys) > 0 }

func (o *groupByOperator) UpdateColumns() {
	in := o.inputName()
	o.groupBys = RebindColumns(o.groupBys, in)
	o.column.Relation = in
	o.rebindCondition()
	o.rebindOutput()
}

func (o *groupByOperator) clone() groupByOperator {
	groupBys := make([]Column, len(o.groupBys))
	copy(groupBys, o.groupBys)
	return groupByOperator{
		baseOperator: o.baseOperator.clone(),
		groupBys:     groupBys,
		column:       o.column,
	}
}

// AggOperator folds the aggregated column with an arithmetic function,
// per group when grouping columns are present.
type AggOperator struct {
	groupByOperator
	fn ArithmeticFn
}

var _ Aggregation = (*AggOperator)(nil)

func NewAggOperator(inputDir string, condition *ConditionTree, groupBys []Column, fn ArithmeticFn, relations []*Relation, column Column, output *Relation) *AggOperator {
	return &AggOperator{
		groupByOperator: newGroupByOperator(inputDir, condition, groupBys, relations, column, output),
		fn:              fn,
	}
}

func (o *AggOperator) Kind() Kind { return KindAgg }

// Fn returns the arithmetic function the aggregation folds with.
func (o *AggOperator) Fn() ArithmeticFn { return o.fn }

func (o *AggOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *AggOperator) Clone() Operator {
	return &AggOperator{groupByOperator: o.groupByOperator.clone(), fn: o.fn}
}
