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

package di

import (
	"sync"

	"github.com/snyk/snyk-highlight/application/codeaction"
	"github.com/snyk/snyk-highlight/application/config"
	"github.com/snyk/snyk-highlight/application/highlighting"
	"github.com/snyk/snyk-highlight/application/watcher"
	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/domain/ide/hover"
	er "github.com/snyk/snyk-highlight/domain/observability/error_reporting"
	"github.com/snyk/snyk-highlight/domain/observability/performance"
	"github.com/snyk/snyk-highlight/infrastructure/annotationfile"
	"github.com/snyk/snyk-highlight/infrastructure/colorscheme"
	"github.com/snyk/snyk-highlight/infrastructure/highlightcache"
	"github.com/snyk/snyk-highlight/infrastructure/sentry"
	"github.com/snyk/snyk-highlight/infrastructure/severityregistry"
)

var instrumentor performance.Instrumentor
var errorReporter er.ErrorReporter
var scheme *colorscheme.Scheme
var severityRegistry *severityregistry.Registry
var displayKeys *highlight.DisplayKeyRegistry
var profile *annotationfile.Profile
var annotationLoader *annotationfile.Loader
var factory *highlight.Factory
var annotationConverter *highlight.Converter
var highlightCache *highlightcache.HighlightCache
var highlightingService *highlighting.Service
var codeActionService *codeaction.CodeActionsService
var hoverService hover.Service
var fileWatcher *watcher.FileWatcher
var initMutex = &sync.Mutex{}

// Init wires infrastructure and domain services. Application services need the passes to run and are
// created by InitApplication.
func Init(c *config.Config) {
	initMutex.Lock()
	defer initMutex.Unlock()
	initInfrastructure(c)
	initDomain(c)
}

// InitApplication creates the highlighting, code action and hover services for passes
func InitApplication(c *config.Config, passes ...highlighting.Pass) {
	initMutex.Lock()
	defer initMutex.Unlock()
	initApplication(c, passes...)
}

func initInfrastructure(c *config.Config) {
	errorReporter = sentry.NewSentryErrorReporter()
	instrumentor = sentry.NewInstrumentor()
	initHighlightInfrastructure(c)
}

func initHighlightInfrastructure(c *config.Config) {
	scheme = colorscheme.LoadOrDefault(c.ColorSchemePath(), c.Logger())
	severityRegistry = severityregistry.New(c.Logger())
	displayKeys = highlight.NewDisplayKeyRegistry()
	profile = annotationfile.NewProfile()
	annotationLoader = annotationfile.NewLoader(severityRegistry, displayKeys, profile, c.Logger())
	highlightCache = highlightcache.NewHighlightCache(c.CacheExpiration(), c.Logger())
	fileWatcher = watcher.NewFileWatcher()
}

func initDomain(c *config.Config) {
	resolver := highlight.NewAttributeResolver(severityRegistry, scheme)
	filters := highlight.FilterChain{highlight.MinimumSeverityFilter(c.MinimumSeverity())}
	factory = highlight.NewFactory(resolver, filters, c.Logger(), errorReporter)
	source := highlight.OptionsSource{Intentions: profile, Profiles: profile}
	annotationConverter = highlight.NewConverter(scheme, source, c.Logger(), errorReporter)
}

func initApplication(c *config.Config, passes ...highlighting.Pass) {
	highlightingService = highlighting.NewService(c, factory, annotationConverter, highlightCache, instrumentor, errorReporter, passes...)
	codeActionService = codeaction.NewService(c, highlightingService, fileWatcher)
	hoverService = hover.NewDefaultService(c, highlightingService)
}

func ErrorReporter() er.ErrorReporter {
	initMutex.Lock()
	defer initMutex.Unlock()
	return errorReporter
}

func Instrumentor() performance.Instrumentor {
	initMutex.Lock()
	defer initMutex.Unlock()
	return instrumentor
}

func ColorScheme() *colorscheme.Scheme {
	initMutex.Lock()
	defer initMutex.Unlock()
	return scheme
}

func SeverityRegistry() *severityregistry.Registry {
	initMutex.Lock()
	defer initMutex.Unlock()
	return severityRegistry
}

func AnnotationLoader() *annotationfile.Loader {
	initMutex.Lock()
	defer initMutex.Unlock()
	return annotationLoader
}

func Factory() *highlight.Factory {
	initMutex.Lock()
	defer initMutex.Unlock()
	return factory
}

func HighlightCache() *highlightcache.HighlightCache {
	initMutex.Lock()
	defer initMutex.Unlock()
	return highlightCache
}

func HighlightingService() *highlighting.Service {
	initMutex.Lock()
	defer initMutex.Unlock()
	return highlightingService
}

func CodeActionService() *codeaction.CodeActionsService {
	initMutex.Lock()
	defer initMutex.Unlock()
	return codeActionService
}

func HoverService() hover.Service {
	initMutex.Lock()
	defer initMutex.Unlock()
	return hoverService
}

func FileWatcher() *watcher.FileWatcher {
	initMutex.Lock()
	defer initMutex.Unlock()
	return fileWatcher
}
