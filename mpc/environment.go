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
	"sort"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrEnvMissingKey signals a Pop on a relation with no pending
// obligation. The deriver always checks Has first, so hitting this is a
// programmer error; Pop panics with it.
var ErrEnvMissingKey = errors.NewKind("environment: no pending obligation for relation %s")

// Environment maps a relation name to the stack of obligations pending
// on it. At most one obligation per relation is live along any single
// path, so the stacks stay shallow; the push/pop protocol keeps the
// deriver's bookkeeping explicit and reversible.
type Environment struct {
	obls map[string][]*Obligation
}

func NewEnvironment() *Environment {
	return &Environment{obls: make(map[string][]*Obligation)}
}

// InitFor creates an empty obligation stack for the relation if none
// exists yet.
func (e *Environment) InitFor(name string) {
	if _, ok := e.obls[name]; !ok {
		e.obls[name] = nil
	}
}

// Push appends an obligation to the relation's stack, initializing the
// stack if needed.
func (e *Environment) Push(name string, obl *Obligation) {
	e.obls[name] = append(e.obls[name], obl)
}

// Has reports whether the relation has a pending obligation.
func (e *Environment) Has(name string) bool {
	return len(e.obls[name]) > 0
}

// Pop removes and returns the most recently pushed obligation for the
// relation. Popping a relation with no pending obligation panics.
func (e *Environment) Pop(name string) *Obligation {
	stack := e.obls[name]
	if len(stack) == 0 {
		panic(ErrEnvMissingKey.New(name))
	}
	obl := stack[len(stack)-1]
	e.obls[name] = stack[:len(stack)-1]
	return obl
}

// Pending returns a copy of the relation's obligation stack, oldest
// first.
func (e *Environment) Pending(name string) []*Obligation {
	stack := e.obls[name]
	out := make([]*Obligation, len(stack))
	copy(out, stack)
	return out
}

// Keys returns every relation name with an initialized stack, sorted.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.obls))
	for k := range e.obls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Empty reports whether no obligation is pending anywhere.
func (e *Environment) Empty() bool {
	for _, stack := range e.obls {
		if len(stack) > 0 {
			return false
		}
	}
	return true
}
