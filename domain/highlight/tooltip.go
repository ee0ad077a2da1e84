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
	"html"
)

// EscapeTooltip renders a plain description as an HTML tooltip. An empty description has no tooltip.
func EscapeTooltip(description string) string {
	if description == "" {
		return ""
	}
	return "<html><body>" + html.EscapeString(description) + "</body></html>"
}
