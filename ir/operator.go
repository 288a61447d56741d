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

// Package ir models the relational operator algebra the MPC rewrite
// passes run over: operators, relations with owner sets, filter
// predicates, and the DAG vertices tying them together.
package ir

import "fmt"

// Kind tags every operator variant. The set is closed: the rewrite
// passes switch exhaustively over it.
type Kind int

const (
	KindInput Kind = iota
	KindSelect
	KindProject
	KindJoin
	KindUnion
	KindAgg
	KindCount
	KindMin
	KindMax
	KindSum
	KindAvg
	KindDiv
	KindMul
	KindSub
	KindWhile
	KindDummy

	KindSelectMPC
	KindProjectMPC
	KindJoinMPC
	KindUnionMPC
	KindAggMPC
	KindCountMPC
	KindMinMPC
	KindMaxMPC
	KindSumMPC
	KindAvgMPC
	KindDivMPC
	KindMulMPC
	KindSubMPC
)

var kindNames = map[Kind]string{
	KindInput:      "Input",
	KindSelect:     "Select",
	KindProject:    "Project",
	KindJoin:       "Join",
	KindUnion:      "Union",
	KindAgg:        "Agg",
	KindCount:      "Count",
	KindMin:        "Min",
	KindMax:        "Max",
	KindSum:        "Sum",
	KindAvg:        "Avg",
	KindDiv:        "Div",
	KindMul:        "Mul",
	KindSub:        "Sub",
	KindWhile:      "While",
	KindDummy:      "Dummy",
	KindSelectMPC:  "SelectMPC",
	KindProjectMPC: "ProjectMPC",
	KindJoinMPC:    "JoinMPC",
	KindUnionMPC:   "UnionMPC",
	KindAggMPC:     "AggMPC",
	KindCountMPC:   "CountMPC",
	KindMinMPC:     "MinMPC",
	KindMaxMPC:     "MaxMPC",
	KindSumMPC:     "SumMPC",
	KindAvgMPC:     "AvgMPC",
	KindDivMPC:     "DivMPC",
	KindMulMPC:     "MulMPC",
	KindSubMPC:     "SubMPC",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var mpcKinds = map[Kind]Kind{
	KindSelect:  KindSelectMPC,
	KindProject: KindProjectMPC,
	KindJoin:    KindJoinMPC,
	KindUnion:   KindUnionMPC,
	KindAgg:     KindAggMPC,
	KindCount:   KindCountMPC,
	KindMin:     KindMinMPC,
	KindMax:     KindMaxMPC,
	KindSum:     KindSumMPC,
	KindAvg:     KindAvgMPC,
	KindDiv:     KindDivMPC,
	KindMul:     KindMulMPC,
	KindSub:     KindSubMPC,
}

// MPC returns the MPC shadow tag for k. Control operators with no
// secret-shared form (Input, While, Dummy) map to themselves, and
// shadow tags are fixpoints.
func (k Kind) MPC() (Kind, bool) {
	if shadow, ok := mpcKinds[k]; ok {
		return shadow, true
	}
	switch k {
	case KindInput, KindWhile, KindDummy:
		return k, true
	}
	for _, shadow := range mpcKinds {
		if k == shadow {
			return k, true
		}
	}
	return k, false
}

// IsAggregation reports whether k is one of the cleartext aggregation
// kinds, the only operators that emit obligations.
func (k Kind) IsAggregation() bool {
	switch k {
	case KindAgg, KindCount, KindMin, KindMax, KindSum, KindAvg:
		return true
	}
	return false
}

// Operator is a vertex payload of the query plan. Implementations form
// a closed variant set; the rewrite passes rely on Kind for dispatch.
type Operator interface {
	// Kind returns the variant tag.
	Kind() Kind
	// IsMPC reports whether this is the secret-shared form.
	IsMPC() bool
	// MPC returns the MPC form of the operator. Operators without one
	// return ErrUnexpectedOperator.
	MPC() (Operator, error)
	// Clone returns a deep copy of the operator sharing relation
	// references with the original.
	Clone() Operator
	// InputDir is the directory the operator's inputs are staged in.
	InputDir() string
	// Relations returns the input relations, in parent order.
	Relations() []*Relation
	// SetRelations overwrites the input relation list.
	SetRelations(rels []*Relation)
	// OutputRelation returns the single output relation.
	OutputRelation() *Relation
	// SetOutputRelation re-targets the operator at a new output.
	SetOutputRelation(rel *Relation)
	// Condition returns the filter predicate, or nil.
	Condition() *ConditionTree
	// UpdateColumns re-attributes the operator's payload columns after
	// the relation list changed.
	UpdateColumns()
}

// Aggregation is the common surface of the operators that emit
// obligations during derivation.
type Aggregation interface {
	Operator
	// GroupBys returns the grouping columns.
	GroupBys() []Column
	// AggColumn returns the aggregated column.
	AggColumn() Column
	// HasGroupBy reports whether any grouping columns are present.
	HasGroupBy() bool
}

// baseOperator carries the fields every operator shares.
type baseOperator struct {
	inputDir  string
	relations []*Relation
	output    *Relation
	condition *ConditionTree
}

func newBaseOperator(inputDir string, relations []*Relation, output *Relation, condition *ConditionTree) baseOperator {
	return baseOperator{
		inputDir:  inputDir,
		relations: relations,
		output:    output,
		condition: condition,
	}
}

func (o *baseOperator) IsMPC() bool { return false }

func (o *baseOperator) InputDir() string { return o.inputDir }

func (o *baseOperator) Relations() []*Relation { return o.relations }

func (o *baseOperator) SetRelations(rels []*Relation) { o.relations = rels }

func (o *baseOperator) OutputRelation() *Relation { return o.output }

func (o *baseOperator) SetOutputRelation(rel *Relation) { o.output = rel }

func (o *baseOperator) Condition() *ConditionTree { return o.condition }

// inputName returns the relation name payload columns rebind to, the
// first input's name, or the output name for source operators.
func (o *baseOperator) inputName() string {
	if len(o.relations) > 0 {
		return o.relations[0].Name()
	}
	if o.output != nil {
		return o.output.Name()
	}
	return ""
}

// rebindCondition re-attributes condition columns to the first input.
func (o *baseOperator) rebindCondition() {
	o.condition.Rebind(o.inputName())
}

// rebindOutput re-attributes the output schema to the output relation.
func (o *baseOperator) rebindOutput() {
	if o.output == nil {
		return
	}
	o.output.SetColumns(RebindColumns(o.output.Columns(), o.output.Name()))
}

func (o *baseOperator) clone() baseOperator {
	rels := make([]*Relation, len(o.relations))
	copy(rels, o.relations)
	return baseOperator{
		inputDir:  o.inputDir,
		relations: rels,
		output:    o.output,
		condition: o.condition.Clone(),
	}
}
