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

// Package annotationfile reads analyzer output stored as YAML or JSON: the analyzed document, the custom
// severities of its scope and, per analysis pass, the annotations and element highlights it reported.
package annotationfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	sglsp "github.com/sourcegraph/go-lsp"
	"gopkg.in/yaml.v3"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/infrastructure/colorscheme"
	"github.com/snyk/snyk-highlight/internal/types"
	"github.com/snyk/snyk-highlight/internal/uri"
)

type severityEntry struct {
	Name       string                       `yaml:"name" validate:"required"`
	Value      int                          `yaml:"value"`
	Attributes *colorscheme.AttributesEntry `yaml:"attributes"`
}

type fixEntry struct {
	Text   string `yaml:"text" validate:"required"`
	Family string `yaml:"family"`
	// Inspection makes the options lazy: they are computed for the inspection on first access
	Inspection  string           `yaml:"inspection"`
	DisplayName string           `yaml:"displayName"`
	Options     []string         `yaml:"options"`
	Range       *types.TextRange `yaml:"range"`
}

type annotationEntry struct {
	Start               int                          `yaml:"start"`
	End                 int                          `yaml:"end"`
	Severity            string                       `yaml:"severity" validate:"required"`
	Message             string                       `yaml:"message"`
	Tooltip             *string                      `yaml:"tooltip"`
	HighlightType       string                       `yaml:"highlightType"`
	AttributesKey       string                       `yaml:"attributesKey"`
	EnforcedAttributes  *colorscheme.AttributesEntry `yaml:"enforcedAttributes"`
	AfterEndOfLine      bool                         `yaml:"afterEndOfLine"`
	FileLevel           bool                         `yaml:"fileLevel"`
	NeedsUpdateOnTyping *bool                        `yaml:"needsUpdateOnTyping"`
	Fixes               []fixEntry                   `yaml:"fixes" validate:"dive"`
}

type highlightEntry struct {
	Type        string `yaml:"type" validate:"required"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	Description string `yaml:"description"`
}

type passEntry struct {
	Name        string            `yaml:"name" validate:"required"`
	Disabled    bool              `yaml:"disabled"`
	Annotations []annotationEntry `yaml:"annotations" validate:"dive"`
	Highlights  []highlightEntry  `yaml:"highlights" validate:"dive"`
}

type inspectionEntry struct {
	ID           string   `yaml:"id" validate:"required"`
	DisplayName  string   `yaml:"displayName"`
	Local        bool     `yaml:"local"`
	Suppressible bool     `yaml:"suppressible"`
	Options      []string `yaml:"options"`
}

type fileEntry struct {
	Document    string            `yaml:"document" validate:"required"`
	Scope       string            `yaml:"scope"`
	Severities  []severityEntry   `yaml:"severities" validate:"dive"`
	Inspections []inspectionEntry `yaml:"inspections" validate:"dive"`
	Passes      []passEntry       `yaml:"passes" validate:"required,dive"`
}

// ElementHighlight is a highlight of a predefined type on a span of the document
type ElementHighlight struct {
	Type        highlight.HighlightType
	Range       types.TextRange
	Description string
}

// Pass is the output of one analysis pass
type Pass struct {
	Name        string
	Enabled     bool
	Annotations []*highlight.Annotation
	Highlights  []ElementHighlight
}

// File is a loaded annotation file
type File struct {
	Document   *types.TextDocument
	Scope      types.Scope
	Severities []CustomSeverity
	Passes     []Pass
}

// CustomSeverity is a severity defined by the file together with its rendering
type CustomSeverity struct {
	Severity   types.Severity
	Attributes *types.TextAttributes
}

// SeverityRegistry registers the custom severities of a file and resolves severity names
type SeverityRegistry interface {
	Register(scope types.Scope, severity types.Severity, attributes *types.TextAttributes)
	SeverityByName(name string, scope types.Scope) (types.Severity, bool)
}

// Loader reads annotation files. Declared inspections are registered in the profile, inspections named by
// fixes are registered as display keys.
type Loader struct {
	registry    SeverityRegistry
	displayKeys *highlight.DisplayKeyRegistry
	profile     *Profile
	logger      zerolog.Logger
	validate    *validator.Validate
}

func NewLoader(registry SeverityRegistry, displayKeys *highlight.DisplayKeyRegistry, profile *Profile, logger *zerolog.Logger) *Loader {
	return &Loader{
		registry:    registry,
		displayKeys: displayKeys,
		profile:     profile,
		logger:      logger.With().Str("service", "AnnotationFileLoader").Logger(),
		validate:    validator.New(),
	}
}

// Load parses path and reads the document it refers to. A relative document path is resolved against the
// directory of the annotation file. Custom severities and inspections are registered before annotations are resolved.
func (l *Loader) Load(path string) (*File, error) {
	logger := l.logger.With().Str("method", "Load").Str("path", path).Logger()
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read annotation file")
	}
	var entry fileEntry
	// JSON is a subset of YAML, so one decoder covers both formats
	if err = yaml.Unmarshal(content, &entry); err != nil {
		return nil, errors.Wrapf(err, "couldn't parse annotation file %s", path)
	}
	if err = l.validate.Struct(&entry); err != nil {
		return nil, errors.Wrapf(err, "invalid annotation file %s", path)
	}

	documentPath := entry.Document
	if strings.HasPrefix(documentPath, "file:") {
		documentPath = string(uri.PathFromUri(sglsp.DocumentURI(documentPath)))
	}
	if !filepath.IsAbs(documentPath) {
		documentPath = filepath.Join(filepath.Dir(path), documentPath)
	}
	text, err := os.ReadFile(documentPath)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read annotated document")
	}

	file := &File{
		Document: types.NewTextDocument(types.FilePath(documentPath), string(text)),
		Scope:    types.Scope(entry.Scope),
	}
	for _, s := range entry.Severities {
		custom, err := l.registerSeverity(file.Scope, s)
		if err != nil {
			return nil, errors.Wrapf(err, "severity %s", s.Name)
		}
		file.Severities = append(file.Severities, custom)
	}
	for _, i := range entry.Inspections {
		l.displayKeys.Register(i.ID, i.DisplayName)
		l.profile.Register(Inspection{
			ID:           i.ID,
			DisplayName:  i.DisplayName,
			Local:        i.Local,
			Suppressible: i.Suppressible,
			Options:      i.Options,
		})
	}
	for _, p := range entry.Passes {
		pass, err := l.toPass(file.Scope, p)
		if err != nil {
			return nil, errors.Wrapf(err, "pass %s", p.Name)
		}
		file.Passes = append(file.Passes, pass)
	}
	logger.Debug().Int("passes", len(file.Passes)).Int("severities", len(file.Severities)).Msg("annotation file loaded")
	return file, nil
}

func (l *Loader) registerSeverity(scope types.Scope, entry severityEntry) (CustomSeverity, error) {
	custom := CustomSeverity{Severity: types.NewSeverity(entry.Name, entry.Value)}
	if entry.Attributes != nil {
		attributes, err := entry.Attributes.ToAttributes()
		if err != nil {
			return CustomSeverity{}, err
		}
		custom.Attributes = attributes
	}
	l.registry.Register(scope, custom.Severity, custom.Attributes)
	return custom, nil
}

func (l *Loader) toPass(scope types.Scope, entry passEntry) (Pass, error) {
	pass := Pass{Name: entry.Name, Enabled: !entry.Disabled}
	for i, a := range entry.Annotations {
		annotation, err := l.toAnnotation(scope, a)
		if err != nil {
			return Pass{}, errors.Wrapf(err, "annotation %d", i)
		}
		pass.Annotations = append(pass.Annotations, annotation)
	}
	for i, h := range entry.Highlights {
		t, ok := highlight.LookupHighlightType(h.Type)
		if !ok {
			return Pass{}, errors.Errorf("highlight %d: unknown highlight type %s", i, h.Type)
		}
		pass.Highlights = append(pass.Highlights, ElementHighlight{
			Type:        t,
			Range:       types.NewTextRange(h.Start, h.End),
			Description: h.Description,
		})
	}
	return pass, nil
}

func (l *Loader) toAnnotation(scope types.Scope, entry annotationEntry) (*highlight.Annotation, error) {
	severity, ok := l.registry.SeverityByName(entry.Severity, scope)
	if !ok {
		return nil, errors.Errorf("unknown severity %s", entry.Severity)
	}
	hint, err := highlight.ParseProblemHighlightType(entry.HighlightType)
	if err != nil {
		return nil, err
	}
	a := highlight.NewAnnotation(entry.Start, entry.End, severity, entry.Message)
	if entry.Tooltip != nil {
		a.Tooltip = *entry.Tooltip
	}
	a.HighlightType = hint
	a.AttributesKey = types.TextAttributesKey(entry.AttributesKey)
	a.AfterEndOfLine = entry.AfterEndOfLine
	a.FileLevel = entry.FileLevel
	a.NeedsUpdateOnTyping = entry.NeedsUpdateOnTyping
	if entry.EnforcedAttributes != nil {
		if a.EnforcedAttributes, err = entry.EnforcedAttributes.ToAttributes(); err != nil {
			return nil, err
		}
	}
	for _, fix := range entry.Fixes {
		action := &Fix{Title: fix.Text, Family: fix.Family}
		if fix.Inspection != "" {
			key := l.displayKeys.Register(fix.Inspection, fix.DisplayName)
			a.RegisterFix(action, fix.Range, &key)
			continue
		}
		options := make([]highlight.Action, 0, len(fix.Options))
		for _, option := range fix.Options {
			options = append(options, &Fix{Title: option, Family: fix.Family})
		}
		a.RegisterFixWithOptions(action, fix.Range, options, fix.DisplayName)
	}
	return a, nil
}

// Fix is an action read from a file. It only carries its title.
type Fix struct {
	Title  string
	Family string
}

var _ highlight.Action = (*Fix)(nil)

func (f *Fix) Text() string {
	return f.Title
}

func (f *Fix) FamilyName() string {
	if f.Family == "" {
		return f.Title
	}
	return f.Family
}
