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
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrMalformedDAG is returned when the operator graph violates the
	// shape the rewrite passes rely on: a cycle, a node with more than
	// two parents, or a parent reference that is not part of the graph.
	ErrMalformedDAG = errors.NewKind("malformed dag: %s")

	// ErrUnexpectedOperator is returned when an operator with no MPC
	// equivalent ends up in a position that requires one.
	ErrUnexpectedOperator = errors.NewKind("operator %s has no mpc equivalent")
)
