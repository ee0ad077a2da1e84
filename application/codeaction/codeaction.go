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

package codeaction

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	sglsp "github.com/sourcegraph/go-lsp"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/ide/converter"
	"github.com/snyk/snyk-highlight/internal/types"
)

const QuickFixKind = "quickfix"

// CodeAction is a quick fix offered for a range. Actions with Data set are deferred: their options are
// computed when the action is resolved.
type CodeAction struct {
	Title   string      `json:"title"`
	Kind    string      `json:"kind,omitempty"`
	Range   sglsp.Range `json:"range"`
	Data    *uuid.UUID  `json:"data,omitempty"`
	Options []string    `json:"options,omitempty"`
}

// Params identifies the document and the range code actions are requested for
type Params struct {
	Document types.Document
	Scope    types.Scope
	Range    sglsp.Range
}

// highlightsProvider allows to retrieve published highlights for a given path and range.
// This is used instead of any concrete dependency to allow for easier testing.
type highlightsProvider interface {
	HighlightsForRange(path types.FilePath, r types.TextRange) []*highlight.Record
}

type dirtyFilesWatcher interface {
	IsDirty(path types.FilePath) bool
}

// CodeActionsService is an application-layer service for handling code actions.
type CodeActionsService struct {
	HighlightsProvider highlightsProvider

	// actionsCache holds the quick fixes returned by the last GetCodeActions call.
	// This is used to resolve the code actions later on in ResolveCodeAction.
	m            sync.Mutex
	actionsCache map[uuid.UUID]cachedAction
	logger       zerolog.Logger
	fileWatcher  dirtyFilesWatcher
}

type cachedAction struct {
	element  types.Element
	record   *highlight.Record
	quickFix highlight.QuickFixRange
	action   CodeAction
}

func NewService(c *config.Config, provider highlightsProvider, fileWatcher dirtyFilesWatcher) *CodeActionsService {
	return &CodeActionsService{
		HighlightsProvider: provider,
		actionsCache:       make(map[uuid.UUID]cachedAction),
		logger:             c.Logger().With().Str("service", "CodeActionsService").Logger(),
		fileWatcher:        fileWatcher,
	}
}

func (c *CodeActionsService) GetCodeActions(params Params) []CodeAction {
	logger := c.logger.With().Str("method", "GetCodeActions").Logger()
	logger.Debug().Msg("Received code action request")
	path := params.Document.Path()
	if c.fileWatcher.IsDirty(path) {
		logger.Info().Msg("File is dirty, skipping code actions")
		return nil
	}
	index := converter.NewLineIndex(params.Document.Text())
	r := index.FromRange(params.Range)
	records := c.HighlightsProvider.HighlightsForRange(path, r)
	logger.Debug().Msgf("Found %d highlights for path %s and range %s", len(records), path, r)

	// The cache is cleared every time GetCodeActions is called, because the assumed workflow is:
	// 1. User gets multiple code action options for a given path/range
	// 2. User selects an action and the action is resolved via ResolveCodeAction
	// So there is no reason to store quick fixes for longer than that.
	c.m.Lock()
	defer c.m.Unlock()
	clear(c.actionsCache)

	actions := []CodeAction{}
	for _, record := range records {
		for _, quickFix := range record.QuickFixes() {
			if !quickFix.Range.Intersects(r) {
				continue
			}
			descriptor := quickFix.Descriptor
			action := CodeAction{
				Title: descriptor.Action().Text(),
				Kind:  QuickFixKind,
				Range: index.ToRange(quickFix.Range),
			}
			element := types.NewSourceElement(params.Document, params.Scope, quickFix.Range)
			if descriptor.IsResolved() {
				action.Options = optionTitles(descriptor.Options(element))
			} else {
				id := descriptor.ID()
				action.Data = &id
				c.actionsCache[id] = cachedAction{element: element, record: record, quickFix: quickFix, action: action}
			}
			actions = append(actions, action)
		}
	}

	logger.Debug().Msgf("Returning %d code actions", len(actions))
	return actions
}

// ResolveCodeAction computes the options of a deferred code action returned by the last GetCodeActions call
func (c *CodeActionsService) ResolveCodeAction(action CodeAction) (CodeAction, error) {
	logger := c.logger.With().Str("method", "ResolveCodeAction").Logger()
	logger.Debug().Msg("Received code action resolve request")
	t := time.Now()

	if action.Data == nil {
		return CodeAction{}, missingKeyError{}
	}

	key := *action.Data
	c.m.Lock()
	cached, found := c.actionsCache[key]
	c.m.Unlock()
	if !found {
		return CodeAction{}, errors.Errorf("could not find cached action for uuid %s", key)
	}

	resolved := cached.action
	resolved.Options = optionTitles(cached.quickFix.Descriptor.Options(cached.element))
	logger.Debug().Dur("duration", time.Since(t)).Str("highlight", cached.record.String()).Msgf("Resolved code action %q", resolved.Title)
	return resolved, nil
}

func optionTitles(options []highlight.Action) []string {
	titles := make([]string, 0, len(options))
	for _, option := range options {
		titles = append(titles, option.Text())
	}
	return titles
}

type missingKeyError struct{}

func (e missingKeyError) Error() string {
	return "code action lookup key is missing - this is not a deferred code action"
}

func IsMissingKeyError(err error) bool {
	_, ok := err.(missingKeyError)
	return ok
}
