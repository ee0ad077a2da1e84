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

package highlight_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/highlight/mock_highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

func TestFilterChain_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_highlight.NewMockFilter(ctrl)
	veto := mock_highlight.NewMockFilter(ctrl)
	never := mock_highlight.NewMockFilter(ctrl)
	r := highlight.NewRecord(highlight.Warning, 0, 1, "desc", "", highlight.Options{})

	first.EXPECT().Accept(r, gomock.Nil()).Return(true).Times(1)
	veto.EXPECT().Accept(r, gomock.Nil()).Return(false).Times(1)
	never.EXPECT().Accept(gomock.Any(), gomock.Any()).Times(0)

	chain := highlight.FilterChain{first, nil, veto, never}

	assert.False(t, chain.Accept(r, nil))
}

func TestFilterChain_EmptyAccepts(t *testing.T) {
	r := highlight.NewRecord(highlight.Warning, 0, 1, "desc", "", highlight.Options{})

	assert.True(t, highlight.FilterChain{}.Accept(r, nil))
	assert.True(t, highlight.FilterChain(nil).Accept(r, nil))
}

func TestMinimumSeverityFilter(t *testing.T) {
	filter := highlight.MinimumSeverityFilter(types.Warning)

	assert.True(t, filter.Accept(highlight.NewRecord(highlight.Error, 0, 1, "", "", highlight.Options{}), nil))
	assert.True(t, filter.Accept(highlight.NewRecord(highlight.Warning, 0, 1, "", "", highlight.Options{}), nil))
	assert.False(t, filter.Accept(highlight.NewRecord(highlight.WeakWarning, 0, 1, "", "", highlight.Options{}), nil))
	assert.False(t, filter.Accept(highlight.NewRecord(highlight.Todo, 0, 1, "", "", highlight.Options{}), nil))
}

func TestExcludeTypesFilter(t *testing.T) {
	filter := highlight.ExcludeTypesFilter(highlight.Todo, highlight.Deprecated)

	assert.False(t, filter.Accept(highlight.NewRecord(highlight.Todo, 0, 1, "", "", highlight.Options{}), nil))
	assert.False(t, filter.Accept(highlight.NewRecord(highlight.Deprecated, 0, 1, "", "", highlight.Options{}), nil))
	assert.True(t, filter.Accept(highlight.NewRecord(highlight.Warning, 0, 1, "", "", highlight.Options{}), nil))
}
