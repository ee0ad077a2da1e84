/*
 * © 2024 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package annotationfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

func TestProfile_UnknownInspection(t *testing.T) {
	profile := NewProfile()
	key := highlight.DisplayKey{ID: "Unknown"}

	assert.Nil(t, profile.StandardOptions(key, nil))
	assert.Nil(t, profile.Tool(key, nil))
}

func TestProfile_Tool(t *testing.T) {
	profile := NewProfile()
	profile.Register(Inspection{ID: "Shadowing", Local: true})
	profile.Register(Inspection{ID: "Unused", DisplayName: "Unused symbol", Suppressible: true})

	shadowing := profile.Tool(highlight.DisplayKey{ID: "Shadowing"}, nil)
	require.NotNil(t, shadowing)
	assert.Equal(t, "Shadowing", shadowing.DisplayName(), "display name falls back to the id")
	assert.True(t, shadowing.IsLocal())
	_, suppressible := shadowing.(highlight.SuppressibleTool)
	assert.False(t, suppressible)

	unused := profile.Tool(highlight.DisplayKey{ID: "Unused"}, nil)
	require.NotNil(t, unused)
	assert.Equal(t, "Unused", unused.ShortName())
	assert.False(t, unused.IsLocal())
	tool, ok := unused.(highlight.SuppressibleTool)
	require.True(t, ok)
	doc := types.NewTextDocument("/workspace/a.go", "")
	actions := tool.SuppressActions(types.NewSourceElement(doc, types.NoScope, types.NewTextRange(0, 0)))
	require.Len(t, actions, 2)
	assert.Equal(t, "Suppress for file /workspace/a.go", actions[1].Text())
}

func TestProfile_RegisterReplaces(t *testing.T) {
	profile := NewProfile()
	key := highlight.DisplayKey{ID: "Unused"}
	profile.Register(Inspection{ID: "Unused", Options: []string{"a"}})
	profile.Register(Inspection{ID: "Unused", Options: []string{"b", "c"}})

	options := profile.StandardOptions(key, nil)

	require.Len(t, options, 2)
	assert.Equal(t, "b", options[0].Text())
}
