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

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Expr is a node of a filter predicate or arithmetic expression tree.
type Expr interface {
	// Columns returns every column referenced by the expression.
	Columns() []Column
	// Rebind re-attributes every referenced column to the given relation.
	Rebind(relation string)
	Clone() Expr
	fmt.Stringer
}

// ColumnRef is a reference to a column of an input relation.
type ColumnRef struct {
	Col Column
}

func NewColumnRef(col Column) *ColumnRef { return &ColumnRef{Col: col} }

func (c *ColumnRef) Columns() []Column      { return []Column{c.Col} }
func (c *ColumnRef) Rebind(relation string) { c.Col.Relation = relation }
func (c *ColumnRef) Clone() Expr            { return &ColumnRef{Col: c.Col} }
func (c *ColumnRef) String() string         { return c.Col.String() }

// Literal is a constant value. Values keep whatever dynamic type the
// front-end handed over; typed access goes through the cast helpers.
type Literal struct {
	Value interface{}
}

func NewLiteral(v interface{}) *Literal { return &Literal{Value: v} }

func (l *Literal) Columns() []Column { return nil }
func (l *Literal) Rebind(string)     {}
func (l *Literal) Clone() Expr       { return &Literal{Value: l.Value} }
func (l *Literal) String() string    { return fmt.Sprintf("%v", l.Value) }

// Int64 returns the literal as an int64.
func (l *Literal) Int64() (int64, error) { return cast.ToInt64E(l.Value) }

// Float64 returns the literal as a float64.
func (l *Literal) Float64() (float64, error) { return cast.ToFloat64E(l.Value) }

// Text returns the literal as a string.
func (l *Literal) Text() (string, error) { return cast.ToStringE(l.Value) }

// Bool returns the literal as a bool.
func (l *Literal) Bool() (bool, error) { return cast.ToBoolE(l.Value) }

// BinaryOp enumerates the binary predicate operators.
type BinaryOp int

const (
	And BinaryOp = iota
	Or
	Eq
	Neq
	Lt
	Leq
	Gt
	Geq
)

func (o BinaryOp) String() string {
	switch o {
	case And:
		return "&&"
	case Or:
		return "||"
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Leq:
		return "<="
	case Gt:
		return ">"
	case Geq:
		return ">="
	}
	return fmt.Sprintf("BinaryOp(%d)", int(o))
}

// Binary applies a BinaryOp to two subexpressions.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func NewBinary(op BinaryOp, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (b *Binary) Columns() []Column {
	return append(b.Left.Columns(), b.Right.Columns()...)
}

func (b *Binary) Rebind(relation string) {
	b.Left.Rebind(relation)
	b.Right.Rebind(relation)
}

func (b *Binary) Clone() Expr {
	return &Binary{Op: b.Op, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Not negates a subexpression.
type Not struct {
	Child Expr
}

func NewNot(child Expr) *Not { return &Not{Child: child} }

func (n *Not) Columns() []Column      { return n.Child.Columns() }
func (n *Not) Rebind(relation string) { n.Child.Rebind(relation) }
func (n *Not) Clone() Expr            { return &Not{Child: n.Child.Clone()} }
func (n *Not) String() string         { return fmt.Sprintf("!(%s)", n.Child) }

// ConditionTree holds the filter predicate attached to an operator.
// A nil receiver or nil root means "no condition".
type ConditionTree struct {
	Root Expr
}

func NewConditionTree(root Expr) *ConditionTree {
	return &ConditionTree{Root: root}
}

// Columns returns every column referenced by the condition.
func (t *ConditionTree) Columns() []Column {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Columns()
}

// References reports whether the condition mentions the given column.
func (t *ConditionTree) References(col Column) bool {
	for _, c := range t.Columns() {
		if c.Matches(col) {
			return true
		}
	}
	return false
}

// Rebind re-attributes every referenced column to the given relation.
func (t *ConditionTree) Rebind(relation string) {
	if t == nil || t.Root == nil {
		return
	}
	t.Root.Rebind(relation)
}

func (t *ConditionTree) Clone() *ConditionTree {
	if t == nil {
		return nil
	}
	if t.Root == nil {
		return &ConditionTree{}
	}
	return &ConditionTree{Root: t.Root.Clone()}
}

func (t *ConditionTree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.Root.String())
	return sb.String()
}
