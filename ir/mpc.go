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

// MPCOperator is the secret-shared shadow of a cleartext operator. It
// wraps the local form: payload accessors pass through, the variant tag
// moves to the shadow kind. Use Local to reach the cleartext form's
// full interface, e.g. its Aggregation payload.
type MPCOperator struct {
	Operator
}

var _ Operator = (*MPCOperator)(nil)

func (o *MPCOperator) Kind() Kind {
	shadow, _ := o.Operator.Kind().MPC()
	return shadow
}

func (o *MPCOperator) IsMPC() bool { return true }

// MPC is a fixpoint on shadow operators.
func (o *MPCOperator) MPC() (Operator, error) { return o, nil }

func (o *MPCOperator) Clone() Operator {
	return &MPCOperator{Operator: o.Operator.Clone()}
}

// Local returns the cleartext form the shadow was derived from.
func (o *MPCOperator) Local() Operator { return o.Operator }

// ToMPC returns the MPC form of op, failing with ErrUnexpectedOperator
// when the variant has none.
func ToMPC(op Operator) (Operator, error) {
	if _, ok := op.Kind().MPC(); !ok {
		return nil, ErrUnexpectedOperator.New(op.Kind())
	}
	return op.MPC()
}
