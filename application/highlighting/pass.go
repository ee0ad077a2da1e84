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
	"sync"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

// Pass is one analysis over a document, e.g. syntax checks or an external linter. Each pass owns a group id;
// the highlights of a pass replace the previous highlights of the same group.
type Pass interface {
	ID() int
	Name() string
	IsEnabled() bool
	Analyze(ctx context.Context, document types.Document, session *Session) error
}

// Session stages the highlights of one pass run. Nothing is visible to readers until the pass completed.
type Session struct {
	document  types.Document
	factory   *highlight.Factory
	converter *highlight.Converter

	m       sync.Mutex
	records []*highlight.Record
}

func newSession(document types.Document, factory *highlight.Factory, converter *highlight.Converter) *Session {
	return &Session{document: document, factory: factory, converter: converter}
}

func (s *Session) Document() types.Document {
	return s.document
}

// Element returns an element of the session's document for r
func (s *Session) Element(r types.TextRange, scope types.Scope) types.Element {
	return types.NewSourceElement(s.document, scope, r)
}

// Create stages a highlight of element, unless a filter vetoes it
func (s *Session) Create(t highlight.HighlightType, element types.Element, description string) (*highlight.Record, bool) {
	record, ok := s.factory.Create(t, element, description)
	if ok {
		s.Add(record)
	}
	return record, ok
}

// CreateForRange stages an element-less highlight, unless a filter vetoes it
func (s *Session) CreateForRange(t highlight.HighlightType, r types.TextRange, description string) (*highlight.Record, bool) {
	record, ok := s.factory.CreateForRange(t, r, description)
	if ok {
		s.Add(record)
	}
	return record, ok
}

// AddAnnotation converts and stages an annotation. Annotations are not filtered.
func (s *Session) AddAnnotation(a *highlight.Annotation) *highlight.Record {
	record := s.converter.FromAnnotation(a, nil)
	s.Add(record)
	return record
}

// Add stages a record built elsewhere
func (s *Session) Add(record *highlight.Record) {
	if record == nil {
		return
	}
	s.m.Lock()
	defer s.m.Unlock()
	s.records = append(s.records, record)
}

func (s *Session) Records() []*highlight.Record {
	s.m.Lock()
	defer s.m.Unlock()
	records := make([]*highlight.Record, len(s.records))
	copy(records, s.records)
	return records
}

// AnnotationPass adapts a function producing annotations to a Pass
type AnnotationPass struct {
	PassID   int
	PassName string
	Annotate func(ctx context.Context, document types.Document) ([]*highlight.Annotation, error)
}

var _ Pass = (*AnnotationPass)(nil)

func (p *AnnotationPass) ID() int {
	return p.PassID
}

func (p *AnnotationPass) Name() string {
	return p.PassName
}

func (p *AnnotationPass) IsEnabled() bool {
	return p.Annotate != nil
}

func (p *AnnotationPass) Analyze(ctx context.Context, document types.Document, session *Session) error {
	annotations, err := p.Annotate(ctx, document)
	if err != nil {
		return err
	}
	for _, a := range annotations {
		if err = ctx.Err(); err != nil {
			return err
		}
		session.AddAnnotation(a)
	}
	return nil
}
