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

// DummyOperator is an opaque placeholder for an operator whose output
// is not observed by the current party. It keeps the output relation
// resolvable for downstream references but carries no payload.
type DummyOperator struct {
	baseOperator
}

var _ Operator = (*DummyOperator)(nil)

func NewDummyOperator(inputDir string, relations []*Relation, output *Relation) *DummyOperator {
	return &DummyOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, nil),
	}
}

func (o *DummyOperator) Kind() Kind { return KindDummy }

func (o *DummyOperator) MPC() (Operator, error) { return o, nil }

func (o *DummyOperator) Clone() Operator {
	return &DummyOperator{baseOperator: o.baseOperator.clone()}
}

func (o *DummyOperator) UpdateColumns() {}
