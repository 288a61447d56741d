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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelationOwners(t *testing.T) {
	require := require.New(t)

	r := testRelation("r", "p1")
	require.False(r.IsShared())
	require.True(r.HasOwner("p1"))
	require.False(r.HasOwner("p2"))

	r.AddOwner("p2")
	require.True(r.IsShared())
	require.Equal([]OwnerID{"p1", "p2"}, r.Owners())

	// Owner sets are deduplicated.
	r.AddOwners([]OwnerID{"p1", "p2", "p3"})
	require.Equal([]OwnerID{"p1", "p2", "p3"}, r.Owners())
}

func TestRelationColumns(t *testing.T) {
	require := require.New(t)

	r := testRelation("r", "p1")
	require.Len(r.Columns(), 2)

	r.SetColumns(RebindColumns(r.Columns(), "other"))
	for _, c := range r.Columns() {
		require.Equal("other", c.Relation)
	}
}

func TestColumnsMatch(t *testing.T) {
	require := require.New(t)

	a := []Column{NewColumn("x", "g", 0, IntType), NewColumn("x", "v", 1, IntType)}
	b := []Column{NewColumn("y", "g", 0, IntType), NewColumn("y", "v", 1, IntType)}
	require.True(ColumnsMatch(a, b))
	require.False(ColumnsMatch(a, b[:1]))
	require.True(ColumnsContain(a, NewColumn("z", "v", 5, StringType)))
	require.False(ColumnsContain(a, NewColumn("x", "w", 0, IntType)))
}
