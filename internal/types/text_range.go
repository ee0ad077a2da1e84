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

import "fmt"

// TextRange is a half-open range of character offsets [StartOffset, EndOffset) inside a document.
type TextRange struct {
	StartOffset int `json:"start" yaml:"start" toml:"start"`
	EndOffset   int `json:"end" yaml:"end" toml:"end"`
}

func NewTextRange(start, end int) TextRange {
	return TextRange{StartOffset: start, EndOffset: end}
}

func (r TextRange) String() string {
	return fmt.Sprintf("(%d,%d)", r.StartOffset, r.EndOffset)
}

// IsValid reports whether 0 <= start <= end
func (r TextRange) IsValid() bool {
	return r.StartOffset >= 0 && r.StartOffset <= r.EndOffset
}

func (r TextRange) Length() int {
	return r.EndOffset - r.StartOffset
}

func (r TextRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

func (r TextRange) Contains(other TextRange) bool {
	return r.StartOffset <= other.StartOffset && other.EndOffset <= r.EndOffset
}

func (r TextRange) ContainsOffset(offset int) bool {
	return r.StartOffset <= offset && offset < r.EndOffset
}

// Intersects reports whether both ranges share at least one offset, touching ranges included.
func (r TextRange) Intersects(other TextRange) bool {
	return r.StartOffset <= other.EndOffset && other.StartOffset <= r.EndOffset
}
