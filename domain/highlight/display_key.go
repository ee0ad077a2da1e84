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
	"github.com/puzpuzpuz/xsync/v3"
)

// DisplayKey identifies an inspection and carries its human-readable name
type DisplayKey struct {
	ID          string
	DisplayName string
}

func (k DisplayKey) String() string {
	return k.ID
}

// DisplayKeyRegistry maps inspection ids to display keys. It is safe for concurrent use.
type DisplayKeyRegistry struct {
	keys *xsync.MapOf[string, DisplayKey]
}

func NewDisplayKeyRegistry() *DisplayKeyRegistry {
	return &DisplayKeyRegistry{keys: xsync.NewMapOf[string, DisplayKey]()}
}

// Register returns the key registered for id, creating it on first use. The first display name wins.
func (r *DisplayKeyRegistry) Register(id string, displayName string) DisplayKey {
	key, _ := r.keys.LoadOrStore(id, DisplayKey{ID: id, DisplayName: displayName})
	return key
}

func (r *DisplayKeyRegistry) Find(id string) (DisplayKey, bool) {
	return r.keys.Load(id)
}

// DisplayName returns the display name registered for id, or "" if the id is unknown
func (r *DisplayKeyRegistry) DisplayName(id string) string {
	key, ok := r.keys.Load(id)
	if !ok {
		return ""
	}
	return key.DisplayName
}

func (r *DisplayKeyRegistry) Size() int {
	return r.keys.Size()
}
