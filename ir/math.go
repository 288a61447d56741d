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

// mathOperator carries the shared payload of the row-wise arithmetic
// operators: the operand expressions, column references or literals.
type mathOperator struct {
	baseOperator
	operands []Expr
}

func newMathOperator(inputDir string, operands []Expr, relations []*Relation, output *Relation) mathOperator {
	return mathOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, nil),
		operands:     operands,
	}
}

func (o *mathOperator) Operands() []Expr { return o.operands }

func (o *mathOperator) UpdateColumns() {
	in := o.inputName()
	for _, operand := range o.operands {
		operand.Rebind(in)
	}
	o.rebindOutput()
}

func (o *mathOperator) clone() mathOperator {
	operands := make([]Expr, len(o.operands))
	for i, operand := range o.operands {
		operands[i] = operand.Clone()
	}
	return mathOperator{baseOperator: o.baseOperator.clone(), operands: operands}
}

// DivOperator divides the first operand by the remaining ones row-wise.
type DivOperator struct {
	mathOperator
}

var _ Operator = (*DivOperator)(nil)

func NewDivOperator(inputDir string, operands []Expr, relations []*Relation, output *Relation) *DivOperator {
	return &DivOperator{mathOperator: newMathOperator(inputDir, operands, relations, output)}
}

func (o *DivOperator) Kind() Kind { return KindDiv }

func (o *DivOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *DivOperator) Clone() Operator {
	return &DivOperator{mathOperator: o.mathOperator.clone()}
}

// MulOperator multiplies its operands row-wise.
type MulOperator struct {
	mathOperator
}

var _ Operator = (*MulOperator)(nil)

func NewMulOperator(inputDir string, operands []Expr, relations []*Relation, output *Relation) *MulOperator {
	return &MulOperator{mathOperator: newMathOperator(inputDir, operands, relations, output)}
}

func (o *MulOperator) Kind() Kind { return KindMul }

func (o *MulOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *MulOperator) Clone() Operator {
	return &MulOperator{mathOperator: o.mathOperator.clone()}
}

// SubOperator subtracts the remaining operands from the first row-wise.
type SubOperator struct {
	mathOperator
}

var _ Operator = (*SubOperator)(nil)

func NewSubOperator(inputDir string, operands []Expr, relations []*Relation, output *Relation) *SubOperator {
	return &SubOperator{mathOperator: newMathOperator(inputDir, operands, relations, output)}
}

func (o *SubOperator) Kind() Kind { return KindSub }

func (o *SubOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *SubOperator) Clone() Operator {
	return &SubOperator{mathOperator: o.mathOperator.clone()}
}
