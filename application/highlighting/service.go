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
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/domain/observability/performance"
	"github.com/snyk/snyk-highlight/infrastructure/highlightcache"
	"github.com/snyk/snyk-highlight/internal/types"
)

// PassError is returned when a pass failed. Its previous highlights stay published.
type PassError struct {
	Pass string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("pass %s failed: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

func IsPassError(err error) bool {
	var passErr *PassError
	return errors.As(err, &passErr)
}

// Service runs the highlighting passes of a document concurrently and publishes each pass atomically
type Service struct {
	c             *config.Config
	logger        zerolog.Logger
	factory       *highlight.Factory
	converter     *highlight.Converter
	cache         *highlightcache.HighlightCache
	instrumentor  performance.Instrumentor
	errorReporter error_reporting.ErrorReporter
	passes        []Pass
}

func NewService(
	c *config.Config,
	factory *highlight.Factory,
	converter *highlight.Converter,
	cache *highlightcache.HighlightCache,
	instrumentor performance.Instrumentor,
	errorReporter error_reporting.ErrorReporter,
	passes ...Pass,
) *Service {
	return &Service{
		c:             c,
		logger:        c.Logger().With().Str("service", "HighlightingService").Logger(),
		factory:       factory,
		converter:     converter,
		cache:         cache,
		instrumentor:  instrumentor,
		errorReporter: errorReporter,
		passes:        passes,
	}
}

// Highlight runs every enabled pass over document. Passes that fail keep their previously published
// highlights; the first failure is returned after all passes finished.
func (s *Service) Highlight(ctx context.Context, document types.Document) error {
	method := "highlighting.Service.Highlight"
	logger := s.logger.With().Str("method", method).Str("path", string(document.Path())).Logger()

	span := s.instrumentor.NewTransaction(ctx, "highlighting", method)
	defer s.instrumentor.Finish(span)
	span.SetTag("document", string(document.Path()))

	g, gctx := errgroup.WithContext(span.Context())
	if limit := s.c.MaxParallelPasses(); limit > 0 {
		g.SetLimit(limit)
	}
	for _, pass := range s.passes {
		if !pass.IsEnabled() {
			logger.Debug().Msgf("Skipping pass %s because it is not enabled", pass.Name())
			continue
		}
		p := pass
		g.Go(func() error {
			return s.runPass(gctx, document, p)
		})
	}
	err := g.Wait()
	logger.Debug().Msg("All passes finished")
	return err
}

func (s *Service) runPass(ctx context.Context, document types.Document, pass Pass) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	span := s.instrumentor.StartSpan(ctx, "pass."+pass.Name())
	defer s.instrumentor.Finish(span)
	span.SetTag("document", string(document.Path()))
	span.SetTag("pass", pass.Name())
	span.SetTag("passId", strconv.Itoa(pass.ID()))
	logger := s.logger.With().Str("method", "runPass").Str("pass", pass.Name()).Str("path", string(document.Path())).Logger()
	logger.Debug().Msg("STARTED")

	start := time.Now()
	session := newSession(document, s.factory, s.converter)
	if err := pass.Analyze(span.Context(), document, session); err != nil {
		passErr := &PassError{Pass: pass.Name(), Err: err}
		if !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("pass failed")
			s.errorReporter.CaptureError(passErr)
		}
		return passErr
	}

	records := session.Records()
	s.cache.Publish(document.Path(), pass.ID(), records)
	logger.Debug().Dur("duration", time.Since(start)).Msgf("COMPLETE found %d highlights", len(records))
	return nil
}

// Highlights returns the published highlights of path
func (s *Service) Highlights(path types.FilePath) []*highlight.Record {
	return s.cache.HighlightsForFile(path)
}

// HighlightsForRange returns the published highlights of path that intersect r
func (s *Service) HighlightsForRange(path types.FilePath, r types.TextRange) []*highlight.Record {
	return s.cache.HighlightsForRange(path, r)
}

// DocumentChanged drops the highlights that are invalidated by typing in path
func (s *Service) DocumentChanged(path types.FilePath) {
	dropped := s.cache.InvalidateOnTyping(path)
	s.logger.Debug().Str("method", "DocumentChanged").Str("path", string(path)).Int("dropped", dropped).Msg("invalidated highlights")
}

// DocumentClosed forgets all highlights of path
func (s *Service) DocumentClosed(path types.FilePath) {
	s.cache.ClearHighlights(path)
}
