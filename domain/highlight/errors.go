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

package highlight

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange signals a highlight whose bounds violate 0 <= start <= end
	ErrInvalidRange = errors.New("incorrect highlight bounds")
	// ErrMissingElement signals a highlight with a custom severity that was built without an element
	ErrMissingElement = errors.New("custom type demands element to detect text attributes")
)

// InvalidRangeError is reported when an analyzer computed broken bounds. The record is still built.
type InvalidRangeError struct {
	Start       int
	End         int
	Description string
	Type        HighlightType
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s. description=%s; startOffset=%d; endOffset=%d; type=%s",
		ErrInvalidRange, e.Description, e.Start, e.End, e.Type)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// IsInvariantViolation reports whether err signals a defect in the analyzer that produced a highlight
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrMissingElement)
}
