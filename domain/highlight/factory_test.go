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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/highlight/mock_highlight"
	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/internal/testutil"
	"github.com/snyk/snyk-highlight/internal/types"
)

const testScope = types.Scope("/workspace/project")

func testElement(start, end int) *types.SourceElement {
	doc := types.NewTextDocument("/workspace/project/main.go", "package main\n\nfunc main() {}\n")
	return types.NewSourceElement(doc, testScope, types.NewTextRange(start, end))
}

func newFactory(t *testing.T, filters ...highlight.Filter) (*highlight.Factory, *error_reporting.TestErrorReporter) {
	t.Helper()
	c := testutil.UnitTest(t)
	reporter := error_reporting.NewTestErrorReporter()
	return highlight.NewFactory(nil, filters, c.Logger(), reporter), reporter
}

func TestFactory_Create(t *testing.T) {
	factory, reporter := newFactory(t)
	element := testElement(2, 7)

	r, ok := factory.Create(highlight.Warning, element, "x < y")

	require.True(t, ok)
	assert.Equal(t, types.NewTextRange(2, 7), r.Range())
	assert.Equal(t, r.Range(), r.FixRange())
	assert.Equal(t, "x < y", r.Description())
	assert.Equal(t, "<html><body>x &lt; y</body></html>", r.Tooltip())
	assert.Equal(t, types.Warning, r.Severity())
	assert.Nil(t, r.Attributes())
	assert.Empty(t, reporter.Captured())
}

func TestFactory_CreateWithTooltip(t *testing.T) {
	factory, _ := newFactory(t)

	r, ok := factory.CreateWithTooltip(highlight.Error, testElement(0, 7), "desc", "custom tooltip")

	require.True(t, ok)
	assert.Equal(t, "custom tooltip", r.Tooltip())
}

func TestFactory_CreateAfterEndOfLine(t *testing.T) {
	factory, _ := newFactory(t)

	r, ok := factory.CreateAfterEndOfLine(highlight.Error, testElement(2, 7), "';' expected", "")

	require.True(t, ok)
	assert.Equal(t, types.NewTextRange(6, 7), r.Range())
	assert.True(t, r.IsAfterEndOfLine())
}

func TestFactory_FilterVeto(t *testing.T) {
	ctrl := gomock.NewController(t)
	accepting := mock_highlight.NewMockFilter(ctrl)
	vetoing := mock_highlight.NewMockFilter(ctrl)
	unreached := mock_highlight.NewMockFilter(ctrl)
	element := testElement(2, 7)

	accepting.EXPECT().Accept(gomock.Any(), element.Document()).Return(true).Times(1)
	vetoing.EXPECT().Accept(gomock.Any(), element.Document()).DoAndReturn(func(r *highlight.Record, _ types.Document) bool {
		return r.Type() != highlight.Todo
	}).Times(1)
	unreached.EXPECT().Accept(gomock.Any(), gomock.Any()).Times(0)

	factory, _ := newFactory(t, accepting, vetoing, unreached)

	r, ok := factory.Create(highlight.Todo, element, "TODO: remove")

	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestFactory_CreateForRange_FiltersSeeNoDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	filter := mock_highlight.NewMockFilter(ctrl)
	filter.EXPECT().Accept(gomock.Any(), gomock.Nil()).Return(true).Times(2)
	factory, reporter := newFactory(t, filter)

	r, ok := factory.CreateForRange(highlight.Warning, types.NewTextRange(1, 4), "desc")
	require.True(t, ok)
	assert.Equal(t, highlight.EscapeTooltip("desc"), r.Tooltip())

	r, ok = factory.CreateForRangeWithTooltip(highlight.Warning, types.NewTextRange(1, 4), "desc", "tip")
	require.True(t, ok)
	assert.Equal(t, "tip", r.Tooltip())
	assert.Empty(t, reporter.Captured())
}

func TestFactory_InvalidRangeIsReportedButBuilt(t *testing.T) {
	factory, reporter := newFactory(t)

	r, ok := factory.CreateAt(highlight.Warning, testElement(0, 10), 8, 3, "broken", "")

	require.True(t, ok)
	assert.Equal(t, 8, r.StartOffset())
	assert.Equal(t, 3, r.EndOffset())
	captured := reporter.Captured()
	require.Len(t, captured, 1)
	assert.ErrorIs(t, captured[0], highlight.ErrInvalidRange)
}

func TestFactory_CustomSeverityWithoutElement(t *testing.T) {
	factory, reporter := newFactory(t)
	custom := highlight.NewHighlightType("SPELLING", types.NewSeverity("TYPO", 150), "TYPO")

	r, ok := factory.CreateForRange(custom, types.NewTextRange(0, 3), "typo")

	require.True(t, ok)
	assert.Equal(t, "TYPO", r.Severity().Name)
	captured := reporter.Captured()
	require.Len(t, captured, 1)
	assert.True(t, errors.Is(captured[0], highlight.ErrMissingElement))
}

func TestFactory_DefaultSeverityWithoutElementIsFine(t *testing.T) {
	factory, reporter := newFactory(t)

	_, ok := factory.CreateAt(highlight.Warning, nil, 0, 3, "desc", "")

	assert.True(t, ok)
	assert.Empty(t, reporter.Captured())
}

func TestFactory_CreateWithAttributesBypassesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	filter := mock_highlight.NewMockFilter(ctrl)
	filter.EXPECT().Accept(gomock.Any(), gomock.Any()).Times(0)
	factory, _ := newFactory(t, filter)
	attributes := &types.TextAttributes{Background: "#ffff00"}

	r := factory.CreateWithAttributes(highlight.Todo, types.NewTextRange(0, 4), "todo", "todo tooltip", attributes)

	assert.Same(t, attributes, r.Attributes())
	assert.Same(t, attributes, r.ForcedAttributes())
	assert.Equal(t, highlight.EscapeTooltip("todo tooltip"), r.Tooltip())
}

func TestFactory_CreateForElementWithAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	filter := mock_highlight.NewMockFilter(ctrl)
	filter.EXPECT().Accept(gomock.Any(), gomock.Any()).Times(0)
	factory, _ := newFactory(t, filter)
	attributes := &types.TextAttributes{EffectType: types.WaveUnderscore, EffectColor: "#ff0000"}

	r := factory.CreateForElementWithAttributes(highlight.Error, testElement(2, 7), "a & b", attributes)

	assert.Equal(t, types.NewTextRange(2, 7), r.Range())
	assert.False(t, r.NeedsUpdateOnTyping(), "explicitly attributed element highlights never need an update")
	assert.Equal(t, "<html><body>a &amp; b</body></html>", r.Tooltip())
	assert.Same(t, attributes, r.Attributes())
}

func TestFactory_ResolvesAttributesWithElementScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock_highlight.NewMockSeverityRegistry(ctrl)
	scheme := mock_highlight.NewMockColorScheme(ctrl)
	registered := &types.TextAttributes{EffectType: types.WaveUnderscore, EffectColor: "#bb0000"}

	registry.EXPECT().AttributesFor(types.Warning, testScope).Return(registered).Times(1)
	scheme.EXPECT().AttributesFor(gomock.Any()).Times(0)

	c := testutil.UnitTest(t)
	factory := highlight.NewFactory(highlight.NewAttributeResolver(registry, scheme), nil, c.Logger(), nil)

	r, ok := factory.Create(highlight.Warning, testElement(0, 4), "desc")

	require.True(t, ok)
	assert.Same(t, registered, r.Attributes())
}
