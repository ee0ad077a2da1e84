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

package highlighting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/infrastructure/annotationfile"
	"github.com/snyk/snyk-highlight/internal/types"
)

func TestFilePasses(t *testing.T) {
	file := &annotationfile.File{
		Scope: "/workspace",
		Passes: []annotationfile.Pass{
			{
				Name:    "lint",
				Enabled: true,
				Highlights: []annotationfile.ElementHighlight{
					{Type: highlight.Todo, Range: types.NewTextRange(17, 33), Description: "TODO: implement"},
					{Type: highlight.LocalVariable, Range: types.NewTextRange(0, 7)},
				},
				Annotations: []*highlight.Annotation{
					highlight.NewAnnotation(48, 62, types.Error, "cannot resolve 'undefinedCall'"),
				},
			},
			{Name: "disabled", Enabled: false},
		},
	}
	passes := FilePasses(file)
	require.Len(t, passes, 2)
	assert.Equal(t, 1, passes[0].ID())
	assert.Equal(t, "lint", passes[0].Name())
	assert.Equal(t, 2, passes[1].ID())
	assert.False(t, passes[1].IsEnabled())

	f := setup(t, highlight.FilterChain{highlight.ExcludeTypesFilter(highlight.LocalVariable)}, passes...)

	err := f.service.Highlight(context.Background(), f.document)

	require.NoError(t, err)
	records := f.service.Highlights(f.document.Path())
	require.Len(t, records, 2, "the local variable highlight is filtered")
	assert.Equal(t, highlight.Todo, records[0].Type())
	assert.Equal(t, highlight.Error, records[1].Type())
	for _, r := range records {
		assert.Equal(t, 1, r.Group())
	}
}

func TestFilePasses_InvalidRangesAreReportedAndBuilt(t *testing.T) {
	passes := FilePasses(&annotationfile.File{Passes: []annotationfile.Pass{{
		Name:        "lint",
		Enabled:     true,
		Highlights:  []annotationfile.ElementHighlight{{Type: highlight.Todo, Range: types.NewTextRange(9, 4), Description: "inverted"}},
		Annotations: []*highlight.Annotation{highlight.NewAnnotation(-1, 3, types.Error, "negative")},
	}}})
	f := setup(t, nil, passes...)

	err := f.service.Highlight(context.Background(), f.document)

	require.NoError(t, err)
	assert.Len(t, f.service.Highlights(f.document.Path()), 2)
	captured := f.reporter.Captured()
	require.Len(t, captured, 2)
	for _, e := range captured {
		assert.True(t, highlight.IsInvariantViolation(e))
	}
}

func TestFilePass_CanceledContext(t *testing.T) {
	pass := FilePasses(&annotationfile.File{Passes: []annotationfile.Pass{{
		Name:        "lint",
		Enabled:     true,
		Annotations: []*highlight.Annotation{highlight.NewAnnotation(0, 1, types.Error, "x")},
	}}})[0]
	f := setup(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pass.Analyze(ctx, f.document, newSession(f.document, nil, nil))

	assert.ErrorIs(t, err, context.Canceled)
}
