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

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilePath represents a file system path
type FilePath string

// PathKey creates a normalized key for documents, so that highlights published for
// "a/b/../c.go" and "a/c.go" end up in the same cache entry
func PathKey(p FilePath) FilePath {
	s := strings.TrimSpace(string(p))
	if s == "" {
		return ""
	}
	return FilePath(filepath.Clean(s))
}

// ValidateFilePath checks that path is not empty and, if mustExist is set, that it points to a regular file
func ValidateFilePath(path FilePath, mustExist bool) error {
	pathStr := strings.TrimSpace(string(path))
	if pathStr == "" {
		return fmt.Errorf("path cannot be empty, got: '%s'", string(path))
	}
	if !mustExist {
		return nil
	}
	info, err := os.Stat(pathStr)
	if err != nil {
		return fmt.Errorf("path does not exist or is not accessible: '%s': %w", pathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path exists but is a directory, not a file: '%s'", pathStr)
	}
	return nil
}
