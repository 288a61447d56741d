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

// ProjectOperator narrows its input to the listed columns.
type ProjectOperator struct {
	baseOperator
	columns []Column
}

var _ Operator = (*ProjectOperator)(nil)

func NewProjectOperator(inputDir string, columns []Column, relations []*Relation, output *Relation) *ProjectOperator {
	return &ProjectOperator{
		baseOperator: newBaseOperator(inputDir, relations, output, nil),
		columns:      columns,
	}
}

func (o *ProjectOperator) Kind() Kind { return KindProject }

// ProjectedColumns returns the columns the projection retains.
func (o *ProjectOperator) ProjectedColumns() []Column { return o.columns }

func (o *ProjectOperator) MPC() (Operator, error) { return &MPCOperator{Operator: o}, nil }

func (o *ProjectOperator) Clone() Operator {
	cols := make([]Column, len(o.columns))
	copy(cols, o.columns)
	return &ProjectOperator{baseOperator: o.baseOperator.clone(), columns: cols}
}

func (o *ProjectOperator) UpdateColumns() {
	o.columns = RebindColumns(o.columns, o.inputName())
	o.rebindOutput()
}
