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
	"github.com/sirupsen/logrus"

	"github.com/multiparty/Musketeer/ir"
)

// PropagateOwnership accumulates owners along the DAG edges: every
// node's output relation ends up owning the union of its inputs'
// owners. The walk must be roots-first (a topological order works);
// source relations arrive with their owners already populated. The
// lookup keyed by relation name also unifies owner sets across distinct
// Relation values sharing a name. Idempotent on a second pass.
func PropagateOwnership(order ir.Nodes) {
	lookup := make(map[string]map[ir.OwnerID]struct{})

	union := func(name string, owners []ir.OwnerID) {
		set, ok := lookup[name]
		if !ok {
			set = make(map[ir.OwnerID]struct{})
			lookup[name] = set
		}
		for _, o := range owners {
			set[o] = struct{}{}
		}
	}

	collect := func(name string) []ir.OwnerID {
		owners := make([]ir.OwnerID, 0, len(lookup[name]))
		for o := range lookup[name] {
			owners = append(owners, o)
		}
		return owners
	}

	for _, node := range order {
		op := node.Operator()
		out := op.OutputRelation()
		for _, in := range op.Relations() {
			union(in.Name(), in.Owners())
			in.AddOwners(collect(in.Name()))
			union(out.Name(), collect(in.Name()))
		}
		union(out.Name(), out.Owners())
		out.AddOwners(collect(out.Name()))

		logrus.WithFields(logrus.Fields{
			"relation": out.Name(),
			"owners":   out.Owners(),
		}).Debug("propagated ownership")
	}
}
