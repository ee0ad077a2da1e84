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
	"github.com/snyk/snyk-highlight/internal/types"
)

//go:generate go tool github.com/golang/mock/mockgen -source=filter.go -destination mock_highlight/filter_mock.go -package mock_highlight

// Filter may veto a highlight before it is handed out. document is nil for highlights built without an element.
type Filter interface {
	Accept(record *Record, document types.Document) bool
}

// FilterFunc adapts a function to Filter
type FilterFunc func(record *Record, document types.Document) bool

func (f FilterFunc) Accept(record *Record, document types.Document) bool {
	return f(record, document)
}

// FilterChain consults its filters in registration order
type FilterChain []Filter

// Accept returns false as soon as one filter rejects the record; later filters are not consulted.
func (c FilterChain) Accept(record *Record, document types.Document) bool {
	for _, f := range c {
		if f == nil {
			continue
		}
		if !f.Accept(record, document) {
			return false
		}
	}
	return true
}

// MinimumSeverityFilter rejects records below a severity threshold
func MinimumSeverityFilter(threshold types.Severity) Filter {
	return FilterFunc(func(record *Record, _ types.Document) bool {
		return record.Severity().AtLeast(threshold)
	})
}

// ExcludeTypesFilter rejects records of the given highlight types
func ExcludeTypesFilter(excluded ...HighlightType) Filter {
	set := make(map[HighlightType]struct{}, len(excluded))
	for _, t := range excluded {
		set[t] = struct{}{}
	}
	return FilterFunc(func(record *Record, _ types.Document) bool {
		_, skip := set[record.Type()]
		return !skip
	})
}
