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
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/multiparty/Musketeer/ir"
)

// Mode is the execution regime assigned to a relation.
type Mode uint8

const (
	// Local means a single party computes the operator on cleartext.
	Local Mode = iota
	// MPC means the operator runs as its secret-shared variant.
	MPC
)

func (m Mode) String() string {
	if m == MPC {
		return "mpc"
	}
	return "local"
}

// ModeMap assigns a Mode to each relation name. Entries are written
// exactly once per node during derivation and consulted during rewrite;
// absent keys read as Local.
type ModeMap map[string]Mode

// InitEnvAndMode seeds the environment and mode map for the DAG's
// source relations: local mode, empty obligation stacks.
func InitEnvAndMode(env *Environment, mode ModeMap, inputs map[string]struct{}) {
	for name := range inputs {
		mode[name] = Local
		env.InitFor(name)
	}
}

// DeriveObligations walks the topologically ordered nodes and decides,
// per node, whether it runs locally or under MPC, emitting, forwarding,
// absorbing or blocking obligations along the way. The observer, when
// present, snapshots the (dag, env, mode) triple around every visit and
// once more at completion.
func DeriveObligations(order ir.Nodes, env *Environment, mode ModeMap, dag ir.Nodes, observer StateObserver) error {
	for _, cur := range order {
		if observer != nil {
			observer.Snapshot(nil, dag, env, mode)
		}
		visited := func() {
			if observer != nil {
				observer.Snapshot(cur, dag, env, mode)
			}
		}

		rel := cur.OutputRelation()
		log := logrus.WithField("relation", rel.Name())
		log.Debug("deriving obligations")

		if !rel.IsShared() {
			// A single owner needs neither MPC nor obligation tracking
			// downstream.
			log.Debug("relation is not shared")
			mode[rel.Name()] = Local
			visited()
			continue
		}

		parents := cur.Parents()
		switch len(parents) {
		case 0:
			log.Debug("source relation")
			mode[rel.Name()] = emitObligation(cur, env)
		case 1:
			parName := parents[0].OutputRelation().Name()
			log.WithField("parent", parName).Debug("found parent")

			if mode[parName] == MPC {
				// Obligations are not propagated past an MPC boundary.
				mode[rel.Name()] = MPC
				visited()
				continue
			}
			if env.Has(parName) {
				obl := env.Pop(parName)
				mode[rel.Name()] = processObligation(obl, nil, cur, parName, "", env)
			} else {
				mode[rel.Name()] = emitObligation(cur, env)
			}
		case 2:
			leftName := parents[0].OutputRelation().Name()
			rightName := parents[1].OutputRelation().Name()
			log.WithFields(logrus.Fields{
				"left":  leftName,
				"right": rightName,
			}).Debug("found parents")

			if mode[leftName] == MPC || mode[rightName] == MPC {
				mode[rel.Name()] = MPC
				visited()
				continue
			}
			if env.Has(leftName) || env.Has(rightName) {
				var leftObl, rightObl *Obligation
				if env.Has(leftName) {
					leftObl = env.Pop(leftName)
				}
				if env.Has(rightName) {
					rightObl = env.Pop(rightName)
				}
				mode[rel.Name()] = processObligation(leftObl, rightObl, cur, leftName, rightName, env)
			} else {
				mode[rel.Name()] = emitObligation(cur, env)
			}
		default:
			return ir.ErrMalformedDAG.New(fmt.Sprintf(
				"node %s has %d parents", rel.Name(), len(parents)))
		}
		visited()
	}

	if observer != nil {
		observer.Snapshot(nil, dag, env, mode)
	}
	return nil
}

// emitObligation decides the mode of a node no obligation reached.
// Aggregations defer themselves by emitting one obligation per outgoing
// edge (one even when the node is a leaf) and stay local; shared joins
// and unions must run under MPC; everything else stays local.
func emitObligation(node *ir.OperatorNode, env *Environment) Mode {
	op := node.Operator()
	relName := op.OutputRelation().Name()

	if op.Kind().IsAggregation() {
		logrus.WithField("relation", relName).Debug("aggregation emits obligations")
		children := node.Children()
		for i := range children {
			obl := NewObligation(node, i)
			env.Push(relName, obl)
			logrus.WithField("obligation", obl.Name()).Debug("emitting obligation")
		}
		if len(children) == 0 {
			obl := NewObligation(node, 0)
			env.Push(relName, obl)
			logrus.WithField("obligation", obl.Name()).Debug("emitting obligation")
		}
		return Local
	}

	if op.Kind() == ir.KindJoin || op.Kind() == ir.KindUnion {
		env.InitFor(relName)
		return MPC
	}

	env.InitFor(relName)
	return Local
}

// processObligation pushes, absorbs or blocks the obligation(s) popped
// from cur's parents and returns cur's mode. At least one of obl and
// otherObl is non-nil. On a merge only the forwarded obligation
// survives; the other is discarded.
func processObligation(obl, otherObl *Obligation, cur *ir.OperatorNode, parName, otherParName string, env *Environment) Mode {
	if obl == nil {
		// Normalize so obl is always the obligation we act on.
		obl, otherObl = otherObl, nil
		parName, otherParName = otherParName, ""
	}

	curName := cur.OutputRelation().Name()

	if obl.CanPass(cur.Operator(), otherObl) {
		// Merge and forward: only one obligation continues downstream.
		env.Push(curName, obl)
		return Local
	}

	logrus.WithField("relation", curName).Info("blocked obligation")
	if obl.CanAbsorb(cur.Operator()) {
		// cur realizes the obligation itself under MPC.
		return MPC
	}

	obl.SetBlockedBy(cur)
	env.Push(parName, obl)
	if otherObl != nil {
		otherObl.SetBlockedBy(cur)
		env.Push(otherParName, otherObl)
	}
	return MPC
}
