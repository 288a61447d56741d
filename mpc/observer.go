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
	"github.com/mitchellh/hashstructure"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/multiparty/Musketeer/ir"
)

// StateObserver snapshots the derivation state for diagnostic replay.
// Snapshot is called with a nil focus as the pre-visit marker for each
// node, with the node itself just after, and once more with nil focus
// at completion. Implementations must not mutate any argument.
type StateObserver interface {
	Snapshot(focus *ir.OperatorNode, dag ir.Nodes, env *Environment, mode ModeMap)
}

// SnapshotNode is one DAG vertex of a recorded snapshot.
type SnapshotNode struct {
	Relation string   `yaml:"relation"`
	Kind     string   `yaml:"kind"`
	Children []string `yaml:"children,omitempty"`
}

// Snapshot is one recorded derivation state.
type Snapshot struct {
	ID          string              `yaml:"id" hash:"ignore"`
	Focus       string              `yaml:"focus,omitempty"`
	Nodes       []SnapshotNode      `yaml:"nodes"`
	Obligations map[string][]string `yaml:"obligations,omitempty"`
	Modes       map[string]string   `yaml:"modes,omitempty"`
}

// TraceRecorder is a StateObserver that keeps an append-only list of
// snapshots. With SkipRepeats set, a snapshot whose fingerprint matches
// the previous one is dropped.
type TraceRecorder struct {
	SkipRepeats bool

	snapshots []Snapshot
	lastHash  uint64
	haveHash  bool
}

var _ StateObserver = (*TraceRecorder)(nil)

func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{}
}

// Snapshot records the current (dag, env, mode) triple.
func (t *TraceRecorder) Snapshot(focus *ir.OperatorNode, dag ir.Nodes, env *Environment, mode ModeMap) {
	snap := Snapshot{
		ID:          uuid.NewV4().String(),
		Obligations: make(map[string][]string),
		Modes:       make(map[string]string),
	}
	if focus != nil {
		snap.Focus = focus.OutputRelation().Name()
	}

	for _, node := range reachable(dag) {
		children := make([]string, 0, len(node.Children()))
		for _, child := range node.Children() {
			children = append(children, child.OutputRelation().Name())
		}
		snap.Nodes = append(snap.Nodes, SnapshotNode{
			Relation: node.OutputRelation().Name(),
			Kind:     node.Operator().Kind().String(),
			Children: children,
		})
	}

	for _, key := range env.Keys() {
		for _, obl := range env.Pending(key) {
			snap.Obligations[key] = append(snap.Obligations[key], obl.Name())
		}
	}
	for name, m := range mode {
		snap.Modes[name] = m.String()
	}

	hash, err := hashstructure.Hash(snap, nil)
	if err != nil {
		logrus.WithError(err).Warn("failed to fingerprint snapshot")
	} else {
		if t.SkipRepeats && t.haveHash && hash == t.lastHash {
			return
		}
		t.lastHash = hash
		t.haveHash = true
	}

	t.snapshots = append(t.snapshots, snap)
}

// Snapshots returns the recorded snapshots in visit order.
func (t *TraceRecorder) Snapshots() []Snapshot {
	out := make([]Snapshot, len(t.snapshots))
	copy(out, t.snapshots)
	return out
}

// Dump serializes the recorded snapshots to YAML.
func (t *TraceRecorder) Dump() ([]byte, error) {
	return yaml.Marshal(t.snapshots)
}
