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

package codeaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	sglsp "github.com/sourcegraph/go-lsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/application/codeaction"
	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/watcher"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/highlight/mock_highlight"
	"github.com/snyk/snyk-highlight/internal/testutil"
	"github.com/snyk/snyk-highlight/internal/types"
)

const testScope = types.Scope("/workspace/project")

var document = types.NewTextDocument("/workspace/project/main.go", "package main\n\nfunc main() {}\n")

// covers "func" on the third line
var exampleRange = sglsp.Range{
	Start: sglsp.Position{Line: 2, Character: 0},
	End:   sglsp.Position{Line: 2, Character: 4},
}

type action struct {
	text string
}

func (a *action) Text() string       { return a.text }
func (a *action) FamilyName() string { return "test" }

type fakeProvider struct {
	records   []*highlight.Record
	requested []types.TextRange
}

func (p *fakeProvider) HighlightsForRange(_ types.FilePath, r types.TextRange) []*highlight.Record {
	p.requested = append(p.requested, r)
	return p.records
}

func setup(t *testing.T, records ...*highlight.Record) (*codeaction.CodeActionsService, *fakeProvider, *watcher.FileWatcher, *config.Config) {
	t.Helper()
	c := testutil.UnitTest(t)
	provider := &fakeProvider{records: records}
	fileWatcher := watcher.NewFileWatcher()
	return codeaction.NewService(c, provider, fileWatcher), provider, fileWatcher, c
}

func params() codeaction.Params {
	return codeaction.Params{Document: document, Scope: testScope, Range: exampleRange}
}

func Test_GetCodeActions_ConvertsRangeToOffsets(t *testing.T) {
	service, provider, _, _ := setup(t)

	actions := service.GetCodeActions(params())

	assert.NotNil(t, actions)
	assert.Empty(t, actions)
	assert.Equal(t, []types.TextRange{types.NewTextRange(14, 18)}, provider.requested)
}

func Test_GetCodeActions_PrecomputedOptionsAreInlined(t *testing.T) {
	record := highlight.NewRecord(highlight.UnusedSymbol, 14, 18, "unused", "", highlight.Options{})
	descriptor := highlight.NewQuickFixDescriptorWithOptions(&action{text: "Remove"}, []highlight.Action{&action{text: "Suppress"}}, "Unused")
	record.RegisterQuickFix(descriptor, nil)
	service, _, _, _ := setup(t, record)

	actions := service.GetCodeActions(params())

	require.Len(t, actions, 1)
	assert.Equal(t, "Remove", actions[0].Title)
	assert.Equal(t, codeaction.QuickFixKind, actions[0].Kind)
	assert.Nil(t, actions[0].Data)
	assert.Equal(t, []string{"Suppress"}, actions[0].Options)
	assert.Equal(t, exampleRange, actions[0].Range)
}

func Test_GetCodeActions_SkipsQuickFixesOutsideRange(t *testing.T) {
	record := highlight.NewRecord(highlight.UnusedSymbol, 14, 18, "unused", "", highlight.Options{})
	packageRange := types.NewTextRange(0, 7)
	record.RegisterQuickFix(highlight.NewQuickFixDescriptorWithOptions(&action{text: "Rename package"}, nil, ""), &packageRange)
	record.RegisterQuickFix(highlight.NewQuickFixDescriptorWithOptions(&action{text: "Remove"}, nil, ""), nil)
	service, _, _, _ := setup(t, record)

	actions := service.GetCodeActions(params())

	require.Len(t, actions, 1)
	assert.Equal(t, "Remove", actions[0].Title)
}

func Test_GetCodeActions_FileIsDirty_ReturnsEmptyResults(t *testing.T) {
	record := highlight.NewRecord(highlight.UnusedSymbol, 14, 18, "unused", "", highlight.Options{})
	record.RegisterQuickFix(highlight.NewQuickFixDescriptorWithOptions(&action{text: "Remove"}, nil, ""), nil)
	service, provider, fileWatcher, _ := setup(t, record)
	fileWatcher.SetFileAsChanged(document.Path())

	actions := service.GetCodeActions(params())

	assert.Empty(t, actions)
	assert.Empty(t, provider.requested)
}

func Test_ResolveCodeAction_ComputesDeferredOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	intentions := mock_highlight.NewMockIntentionOptions(ctrl)
	key := highlight.DisplayKey{ID: "UnusedDeclaration", DisplayName: "Unused declaration"}
	record := highlight.NewRecord(highlight.UnusedSymbol, 14, 18, "unused", "", highlight.Options{})
	record.RegisterFix(&action{text: "Remove"}, nil, &key, highlight.OptionsSource{Intentions: intentions})
	service, _, _, _ := setup(t, record)

	intentions.EXPECT().
		StandardOptions(key, gomock.Any()).
		DoAndReturn(func(_ highlight.DisplayKey, element types.Element) []highlight.Action {
			assert.Equal(t, testScope, element.Scope())
			assert.Equal(t, types.NewTextRange(14, 18), element.TextRange())
			return []highlight.Action{&action{text: "Edit inspection settings"}}
		}).
		Times(1)

	actions := service.GetCodeActions(params())
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].Data)
	assert.Empty(t, actions[0].Options)

	resolved, err := service.ResolveCodeAction(actions[0])

	require.NoError(t, err)
	assert.Equal(t, "Remove", resolved.Title)
	assert.Equal(t, []string{"Edit inspection settings"}, resolved.Options)
}

func Test_ResolveCodeAction_KeyDoesNotExist_ReturnError(t *testing.T) {
	service, _, _, _ := setup(t)
	id := uuid.New()

	_, err := service.ResolveCodeAction(codeaction.CodeAction{Title: "Made up", Data: &id})

	assert.Error(t, err)
	assert.False(t, codeaction.IsMissingKeyError(err))
}

func Test_ResolveCodeAction_KeyIsNull_ReturnsError(t *testing.T) {
	service, _, _, _ := setup(t)

	_, err := service.ResolveCodeAction(codeaction.CodeAction{Title: "Made up"})

	assert.Error(t, err)
	assert.True(t, codeaction.IsMissingKeyError(err), "Expected error to be of type MissingKeyError")
}

func Test_ResolveCodeActionHandler_MissingKeyIsNotAnError(t *testing.T) {
	service, _, _, c := setup(t)
	handler := codeaction.ResolveCodeActionHandler(c, service)

	resolved, err := handler(context.Background(), codeaction.CodeAction{Title: "inline"})

	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func Test_GetCodeActionHandler_SupersededRequestIsCancelled(t *testing.T) {
	record := highlight.NewRecord(highlight.UnusedSymbol, 14, 18, "unused", "", highlight.Options{})
	record.RegisterQuickFix(highlight.NewQuickFixDescriptorWithOptions(&action{text: "Remove"}, nil, ""), nil)
	service, _, _, c := setup(t, record)
	handler := codeaction.GetCodeActionHandler(c, service, 200*time.Millisecond)

	first := make(chan []codeaction.CodeAction)
	go func() {
		actions, _ := handler(context.Background(), params())
		first <- actions
	}()
	// give the first request time to start waiting
	time.Sleep(50 * time.Millisecond)
	second, err := handler(context.Background(), params())

	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Nil(t, <-first)
}
