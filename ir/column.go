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

// ColumnType is the logical type of a column.
type ColumnType int

const (
	IntType ColumnType = iota
	DoubleType
	StringType
	BoolType
)

func (t ColumnType) String() string {
	switch t {
	case IntType:
		return "int"
	case DoubleType:
		return "double"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// Column identifies a column of a relation. Relation attribution is
// rewritten as operators are re-targeted, so identity comparisons
// between columns of different stages go through Matches.
type Column struct {
	Relation string
	Name     string
	Index    int
	Type     ColumnType
}

func NewColumn(relation, name string, index int, typ ColumnType) Column {
	return Column{Relation: relation, Name: name, Index: index, Type: typ}
}

func (c Column) String() string {
	return fmt.Sprintf("%s.%s", c.Relation, c.Name)
}

// Matches reports whether two columns refer to the same logical column,
// ignoring relation attribution.
func (c Column) Matches(other Column) bool {
	return c.Name == other.Name
}

// ColumnsContain reports whether cols contains a column matching col.
func ColumnsContain(cols []Column, col Column) bool {
	for _, c := range cols {
		if c.Matches(col) {
			return true
		}
	}
	return false
}

// ColumnsMatch reports whether a and b contain the same logical columns
// in the same order.
func ColumnsMatch(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Matches(b[i]) {
			return false
		}
	}
	return true
}

// RebindColumns re-attributes every column in cols to the given
// relation name, returning the updated slice.
func RebindColumns(cols []Column, relation string) []Column {
	for i := range cols {
		cols[i].Relation = relation
	}
	return cols
}
