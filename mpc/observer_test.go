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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multiparty/Musketeer/ir"
)

func TestTraceRecorderSnapshotProtocol(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p1", "p2")
	agg := sumAggNode(in, "a")
	projectNode(agg, "p", gCol("a"), vCol("a"))
	dag := ir.Nodes{in}

	order, err := TopologicalOrder(dag)
	require.NoError(err)
	PropagateOwnership(order)
	env := NewEnvironment()
	mode := make(ModeMap)
	InitEnvAndMode(env, mode, DetermineInputs(dag))

	recorder := NewTraceRecorder()
	require.NoError(DeriveObligations(order, env, mode, dag, recorder))

	// Two snapshots per visited node plus the final one.
	snaps := recorder.Snapshots()
	require.Len(snaps, 2*len(order)+1)

	// Pre-visit markers carry no focus; the paired snapshot names the
	// visited relation.
	require.Empty(snaps[0].Focus)
	require.Equal("r", snaps[1].Focus)
	require.Empty(snaps[len(snaps)-1].Focus)

	// Snapshot ids are unique.
	seen := map[string]struct{}{}
	for _, s := range snaps {
		require.NotEmpty(s.ID)
		_, dup := seen[s.ID]
		require.False(dup)
		seen[s.ID] = struct{}{}
	}

	// The final snapshot carries the derived modes and the pending
	// obligation.
	last := snaps[len(snaps)-1]
	require.Equal("local", last.Modes["a"])
	require.Contains(last.Obligations["p"], "a_obl_0")
}

func TestTraceRecorderSkipRepeats(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p1")
	dag := ir.Nodes{in}
	env := NewEnvironment()
	mode := make(ModeMap)

	recorder := NewTraceRecorder()
	recorder.SkipRepeats = true
	recorder.Snapshot(nil, dag, env, mode)
	recorder.Snapshot(nil, dag, env, mode)
	require.Len(recorder.Snapshots(), 1)

	// A state change makes the next snapshot distinct again.
	mode["r"] = MPC
	recorder.Snapshot(nil, dag, env, mode)
	require.Len(recorder.Snapshots(), 2)
}

func TestTraceRecorderDump(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p1")
	selectNode(in, "s", nil)
	dag := ir.Nodes{in}

	recorder := NewTraceRecorder()
	recorder.Snapshot(nil, dag, NewEnvironment(), ModeMap{"r": Local})

	out, err := recorder.Dump()
	require.NoError(err)
	require.True(strings.Contains(string(out), "relation: r"))
	require.True(strings.Contains(string(out), "kind: Select"))
}

func TestRewriterWithObserver(t *testing.T) {
	require := require.New(t)

	in := inputNode("r", "p1")
	selectNode(in, "s", nil)
	dag := ir.Nodes{in}

	recorder := NewTraceRecorder()
	rewriter := NewRewriter("p1", WithObserver(recorder))
	require.NoError(rewriter.RewriteDAG(context.Background(), dag))
	require.Len(recorder.Snapshots(), 2*2+1)
}