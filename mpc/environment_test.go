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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentStackProtocol(t *testing.T) {
	require := require.New(t)

	env := NewEnvironment()
	require.True(env.Empty())
	require.False(env.Has("r"))

	agg := countNode(inputNode("r", "p1", "p2"), "cnt")
	first := NewObligation(agg, 0)
	second := NewObligation(agg, 1)

	env.Push("r", first)
	env.Push("r", second)
	require.True(env.Has("r"))
	require.False(env.Empty())
	require.Len(env.Pending("r"), 2)

	// LIFO.
	require.Equal(second, env.Pop("r"))
	require.Equal(first, env.Pop("r"))
	require.False(env.Has("r"))
	require.True(env.Empty())
}

func TestEnvironmentInitFor(t *testing.T) {
	require := require.New(t)

	env := NewEnvironment()
	env.InitFor("r")
	require.False(env.Has("r"))
	require.Equal([]string{"r"}, env.Keys())

	agg := countNode(inputNode("r", "p1", "p2"), "cnt")
	env.Push("r", NewObligation(agg, 0))
	// InitFor never clears an existing stack.
	env.InitFor("r")
	require.True(env.Has("r"))
}

func TestEnvironmentPopMissingKeyPanics(t *testing.T) {
	require := require.New(t)

	env := NewEnvironment()
	require.Panics(func() { env.Pop("nope") })

	env.InitFor("empty")
	require.Panics(func() { env.Pop("empty") })
}
