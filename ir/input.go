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

// InputOperator introduces a source relation into the plan. The output
// relation must arrive with its owner set populated; the ownership
// propagator fills in everything downstream.
type InputOperator struct {
	baseOperator
}

var _ Operator = (*InputOperator)(nil)

func NewInputOperator(inputDir string, output *Relation) *InputOperator {
	return &InputOperator{
		baseOperator: newBaseOperator(inputDir, nil, output, nil),
	}
}

func (o *InputOperator) Kind() Kind { return KindInput }

// MPC returns the operator itself. Reading a party's own input never
// requires the secret-shared regime.
func (o *InputOperator) MPC() (Operator, error) { return o, nil }

func (o *InputOperator) Clone() Operator {
	return &InputOperator{baseOperator: o.baseOperator.clone()}
}

func (o *InputOperator) UpdateColumns() {
	o.rebindOutput()
}
