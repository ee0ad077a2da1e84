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

package watcher

import (
	"sync"

	"github.com/snyk/snyk-highlight/internal/types"
)

// FileWatcher tracks documents whose text changed after their highlights were published.
// Highlights of a dirty document may point at stale offsets.
type FileWatcher struct {
	m     sync.RWMutex
	files map[types.FilePath]bool
}

func NewFileWatcher() *FileWatcher {
	return &FileWatcher{
		files: make(map[types.FilePath]bool),
	}
}

// SetFileAsChanged marks the file as edited since its last analysis. Calling SetFileAsAnalyzed marks it clean again.
func (w *FileWatcher) SetFileAsChanged(path types.FilePath) {
	w.m.Lock()
	defer w.m.Unlock()
	w.files[types.PathKey(path)] = true
}

// IsDirty returns true if the file changed after its highlights were published.
func (w *FileWatcher) IsDirty(path types.FilePath) bool {
	w.m.RLock()
	defer w.m.RUnlock()
	return w.files[types.PathKey(path)]
}

func (w *FileWatcher) SetFileAsAnalyzed(path types.FilePath) {
	w.m.Lock()
	defer w.m.Unlock()
	delete(w.files, types.PathKey(path))
}
