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

package highlighting

import (
	"context"

	"github.com/snyk/snyk-highlight/infrastructure/annotationfile"
	"github.com/snyk/snyk-highlight/internal/types"
)

// FilePass replays one pass stored in an annotation file. Element highlights go through the filter chain,
// annotations do not.
type FilePass struct {
	id    int
	scope types.Scope
	pass  annotationfile.Pass
}

var _ Pass = (*FilePass)(nil)

// FilePasses returns one pass per pass of file, numbered from 1 in file order
func FilePasses(file *annotationfile.File) []Pass {
	passes := make([]Pass, 0, len(file.Passes))
	for i, p := range file.Passes {
		passes = append(passes, &FilePass{id: i + 1, scope: file.Scope, pass: p})
	}
	return passes
}

func (p *FilePass) ID() int {
	return p.id
}

func (p *FilePass) Name() string {
	return p.pass.Name
}

func (p *FilePass) IsEnabled() bool {
	return p.pass.Enabled
}

func (p *FilePass) Analyze(ctx context.Context, _ types.Document, session *Session) error {
	for _, h := range p.pass.Highlights {
		if err := ctx.Err(); err != nil {
			return err
		}
		session.Create(h.Type, session.Element(h.Range, p.scope), h.Description)
	}
	for _, a := range p.pass.Annotations {
		if err := ctx.Err(); err != nil {
			return err
		}
		session.AddAnnotation(a)
	}
	return nil
}
