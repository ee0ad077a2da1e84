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

package converter

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	sglsp "github.com/sourcegraph/go-lsp"

	"github.com/snyk/snyk-highlight/internal/types"
)

// LineIndex converts byte offsets of a document into LSP positions (zero based lines, UTF-16 columns) and back
type LineIndex struct {
	text       string
	lineStarts []int
}

func NewLineIndex(text string) *LineIndex {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: lineStarts}
}

// ToPosition clamps offset into the document
func (l *LineIndex) ToPosition(offset int) sglsp.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	line := sort.Search(len(l.lineStarts), func(i int) bool { return l.lineStarts[i] > offset }) - 1
	return sglsp.Position{Line: line, Character: utf16Len(l.text[l.lineStarts[line]:offset])}
}

// ToOffset clamps positions beyond the end of a line to the end of that line
func (l *LineIndex) ToOffset(pos sglsp.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(l.lineStarts) {
		return len(l.text)
	}
	lineStart := l.lineStarts[pos.Line]
	lineEnd := len(l.text)
	if pos.Line+1 < len(l.lineStarts) {
		lineEnd = l.lineStarts[pos.Line+1] - 1
	}
	offset := lineStart
	units := 0
	for offset < lineEnd && units < pos.Character {
		r, size := utf8.DecodeRuneInString(l.text[offset:])
		units += utf16.RuneLen(r)
		offset += size
	}
	return offset
}

func (l *LineIndex) ToRange(r types.TextRange) sglsp.Range {
	return sglsp.Range{Start: l.ToPosition(r.StartOffset), End: l.ToPosition(r.EndOffset)}
}

func (l *LineIndex) FromRange(r sglsp.Range) types.TextRange {
	return types.NewTextRange(l.ToOffset(r.Start), l.ToOffset(r.End))
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
