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

package uri

import (
	"path/filepath"
	"runtime"
	"strings"

	sglsp "github.com/sourcegraph/go-lsp"
	"go.lsp.dev/uri"

	"github.com/snyk/snyk-highlight/internal/types"
)

const fileScheme = "file://"

func PathFromUri(documentUri sglsp.DocumentURI) types.FilePath {
	if strings.HasPrefix(string(documentUri), fileScheme) {
		return types.FilePath(filepath.Clean(uri.URI(documentUri).Filename()))
	}
	// some clients send "file:/path"
	var path = strings.TrimPrefix(string(documentUri), "file:")
	if runtime.GOOS == "windows" &&
		!strings.HasPrefix(path, "//") { // UNC path
		path = strings.TrimPrefix(path, "/") // /C:/... --> C:/...
	}
	return types.FilePath(filepath.Clean(path))
}

func PathToUri(path types.FilePath) sglsp.DocumentURI {
	return sglsp.DocumentURI(uri.File(string(path)))
}
