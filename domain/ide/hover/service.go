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

package hover

import (
	"strings"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/ide/converter"
	"github.com/snyk/snyk-highlight/internal/types"
)

type highlightsProvider interface {
	HighlightsForRange(path types.FilePath, r types.TextRange) []*highlight.Record
}

type Service interface {
	GetHover(params Params) Result
}

// DefaultHoverService shows the messages of the published highlights under the cursor
type DefaultHoverService struct {
	provider highlightsProvider
	c        *config.Config
}

func NewDefaultService(c *config.Config, provider highlightsProvider) Service {
	return &DefaultHoverService{provider: provider, c: c}
}

// GetHover joins the messages of every highlight containing the position. In html format the tooltips are
// used, otherwise the markdown descriptions. Records without a message do not contribute.
func (s *DefaultHoverService) GetHover(params Params) Result {
	logger := s.c.Logger().With().Str("method", "GetHover").Logger()
	index := converter.NewLineIndex(params.Document.Text())
	offset := index.ToOffset(params.Position)
	records := s.provider.HighlightsForRange(params.Document.Path(), types.NewTextRange(offset, offset))

	html := s.c.Format() == config.FormatHtml
	var messages []string
	var covered *types.TextRange
	for _, r := range records {
		if !isHoverForOffset(r, offset) {
			continue
		}
		message := r.Description()
		if html {
			message = r.Tooltip()
		}
		if message == "" {
			continue
		}
		messages = append(messages, message)
		rng := r.Range()
		if covered == nil {
			covered = &rng
		} else {
			covered.StartOffset = min(covered.StartOffset, rng.StartOffset)
			covered.EndOffset = max(covered.EndOffset, rng.EndOffset)
		}
	}
	logger.Trace().Int("offset", offset).Int("messages", len(messages)).Msg("hover computed")

	// clients render html embedded in markdown
	result := Result{Contents: MarkupContent{Kind: KindMarkdown, Value: strings.Join(messages, "\n\n---\n\n")}}
	if covered != nil {
		lspRange := index.ToRange(*covered)
		result.Range = &lspRange
	}
	return result
}

// an empty highlight is hovered when the cursor is right on it
func isHoverForOffset(r *highlight.Record, offset int) bool {
	rng := r.Range()
	if rng.IsEmpty() {
		return rng.StartOffset == offset
	}
	return rng.StartOffset <= offset && offset <= rng.EndOffset
}
