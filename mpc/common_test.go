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
	"github.com/multiparty/Musketeer/ir"
)

const testDir = "/data/in"

// Every test relation has two columns: a group key g and a value v.

func gCol(rel string) ir.Column { return ir.NewColumn(rel, "g", 0, ir.IntType) }

func vCol(rel string) ir.Column { return ir.NewColumn(rel, "v", 1, ir.IntType) }

func testRel(name string, owners ...ir.OwnerID) *ir.Relation {
	return ir.NewRelation(name, []ir.Column{gCol(name), vCol(name)}, owners...)
}

func inputNode(name string, owners ...ir.OwnerID) *ir.OperatorNode {
	return ir.NewOperatorNode(ir.NewInputOperator(testDir, testRel(name, owners...)))
}

func selectNode(in *ir.OperatorNode, name string, cond *ir.ConditionTree) *ir.OperatorNode {
	inRel := in.OutputRelation()
	node := ir.NewOperatorNode(ir.NewSelectOperator(testDir, cond,
		[]*ir.Relation{inRel}, testRel(name)))
	in.AddChild(node)
	return node
}

func projectNode(in *ir.OperatorNode, name string, cols ...ir.Column) *ir.OperatorNode {
	inRel := in.OutputRelation()
	node := ir.NewOperatorNode(ir.NewProjectOperator(testDir, cols,
		[]*ir.Relation{inRel}, testRel(name)))
	in.AddChild(node)
	return node
}

func sumAggNode(in *ir.OperatorNode, name string) *ir.OperatorNode {
	inRel := in.OutputRelation()
	node := ir.NewOperatorNode(ir.NewAggOperator(testDir, nil,
		[]ir.Column{gCol(inRel.Name())}, ir.Plus,
		[]*ir.Relation{inRel}, vCol(inRel.Name()), testRel(name)))
	in.AddChild(node)
	return node
}

func countNode(in *ir.OperatorNode, name string) *ir.OperatorNode {
	inRel := in.OutputRelation()
	node := ir.NewOperatorNode(ir.NewCountOperator(testDir, nil,
		[]ir.Column{gCol(inRel.Name())},
		[]*ir.Relation{inRel}, vCol(inRel.Name()), testRel(name)))
	in.AddChild(node)
	return node
}

func joinNode(left, right *ir.OperatorNode, name string) *ir.OperatorNode {
	leftRel := left.OutputRelation()
	rightRel := right.OutputRelation()
	node := ir.NewOperatorNode(ir.NewJoinOperator(testDir,
		[]ir.Column{gCol(leftRel.Name())}, []ir.Column{gCol(rightRel.Name())},
		[]*ir.Relation{leftRel, rightRel}, testRel(name)))
	left.AddChild(node)
	right.AddChild(node)
	return node
}

func unionNode(left, right *ir.OperatorNode, name string) *ir.OperatorNode {
	leftRel := left.OutputRelation()
	rightRel := right.OutputRelation()
	node := ir.NewOperatorNode(ir.NewUnionOperator(testDir,
		[]*ir.Relation{leftRel, rightRel}, testRel(name)))
	left.AddChild(node)
	right.AddChild(node)
	return node
}

// vCondition filters on the value column, pinning any deferred
// aggregation over it.
func vCondition(rel string) *ir.ConditionTree {
	return ir.NewConditionTree(ir.NewBinary(ir.Gt,
		ir.NewColumnRef(vCol(rel)), ir.NewLiteral(5)))
}

// gCondition filters on the group key only.
func gCondition(rel string) *ir.ConditionTree {
	return ir.NewConditionTree(ir.NewBinary(ir.Eq,
		ir.NewColumnRef(gCol(rel)), ir.NewLiteral(1)))
}

// derive runs the pipeline front half and returns the resulting env and
// mode map.
func derive(dag ir.Nodes) (*Environment, ModeMap, error) {
	order, err := TopologicalOrder(dag)
	if err != nil {
		return nil, nil, err
	}
	PropagateOwnership(order)
	env := NewEnvironment()
	mode := make(ModeMap)
	InitEnvAndMode(env, mode, DetermineInputs(dag))
	err = DeriveObligations(order, env, mode, dag, nil)
	return env, mode, err
}

// kinds maps every reachable node's output relation to its operator
// kind.
func kinds(dag ir.Nodes) map[string]ir.Kind {
	out := make(map[string]ir.Kind)
	for _, n := range reachable(dag) {
		out[n.OutputRelation().Name()] = n.Operator().Kind()
	}
	return out
}
