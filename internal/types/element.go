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

package types

// Scope identifies the analysis context a highlight belongs to, usually a workspace folder.
// Severity registries are scoped, so resolution calls take the scope explicitly.
type Scope string

// NoScope is the global scope
const NoScope Scope = ""

// Document is the text a highlight points into
type Document interface {
	Path() FilePath
	Text() string
}

// Element is the part of a document an analyzer flagged. It provides the span of the highlight,
// the containing document (consulted by filters) and the scope used for attribute resolution.
type Element interface {
	TextRange() TextRange
	Document() Document
	Scope() Scope
}

// TextDocument is an in-memory Document
type TextDocument struct {
	FilePath FilePath
	Content  string
}

var _ Document = (*TextDocument)(nil)

func NewTextDocument(path FilePath, content string) *TextDocument {
	return &TextDocument{FilePath: path, Content: content}
}

func (d *TextDocument) Path() FilePath {
	return d.FilePath
}

func (d *TextDocument) Text() string {
	return d.Content
}

// SourceElement is a plain Element backed by a document and a range
type SourceElement struct {
	Range    TextRange
	Doc      Document
	ScopeRef Scope
}

var _ Element = (*SourceElement)(nil)

func NewSourceElement(doc Document, scope Scope, r TextRange) *SourceElement {
	return &SourceElement{Range: r, Doc: doc, ScopeRef: scope}
}

func (e *SourceElement) TextRange() TextRange {
	return e.Range
}

func (e *SourceElement) Document() Document {
	return e.Doc
}

func (e *SourceElement) Scope() Scope {
	return e.ScopeRef
}

// Text returns the document text covered by the element, or "" if the range is out of bounds
func (e *SourceElement) Text() string {
	if e.Doc == nil {
		return ""
	}
	content := e.Doc.Text()
	if !e.Range.IsValid() || e.Range.EndOffset > len(content) {
		return ""
	}
	return content[e.Range.StartOffset:e.Range.EndOffset]
}

// ScopeOf returns the scope of an optional element
func ScopeOf(e Element) Scope {
	if e == nil {
		return NoScope
	}
	return e.Scope()
}

// DocumentOf returns the containing document of an optional element
func DocumentOf(e Element) Document {
	if e == nil {
		return nil
	}
	return e.Document()
}
