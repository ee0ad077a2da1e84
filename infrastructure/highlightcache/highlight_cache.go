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

package highlightcache

import (
	"sync"
	"time"

	"github.com/erni27/imcache"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/types"
)

// passKey identifies the batch one analysis pass produced for a file
type passKey struct {
	path  types.FilePath
	group int
}

// HighlightCache holds the published highlights per file and pass. A pass's batch is replaced as a whole,
// so readers never observe a partially published pass. Writers are serialized by writeMutex, so a
// read-modify-write such as InvalidateOnTyping never overwrites a batch published in between.
type HighlightCache struct {
	Cache               *imcache.Cache[passKey, []*highlight.Record]
	logger              zerolog.Logger
	m                   sync.RWMutex
	writeMutex          sync.Mutex
	cacheRemovalHandler func(path types.FilePath)
}

func NewHighlightCache(expiration time.Duration, logger *zerolog.Logger) *HighlightCache {
	return &HighlightCache{
		logger: logger.With().Str("service", "HighlightCache").Logger(),
		Cache: imcache.New[passKey, []*highlight.Record](
			imcache.WithDefaultExpirationOption[passKey, []*highlight.Record](expiration),
		),
	}
}

// Publish replaces the batch of pass group for path. Equal records are kept once.
func (c *HighlightCache) Publish(path types.FilePath, group int, records []*highlight.Record) {
	batch := c.deduplicate(records)
	for _, r := range batch {
		r.SetGroup(group)
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	c.Cache.RemoveExpired()
	c.Cache.Set(passKey{path: path, group: group}, batch, imcache.WithDefaultExpiration())
	c.logger.Debug().Str("method", "Publish").Str("path", string(path)).Int("group", group).Int("count", len(batch)).Msg("published pass")
}

func (c *HighlightCache) deduplicate(records []*highlight.Record) []*highlight.Record {
	deduplicated := make([]*highlight.Record, 0, len(records))
	seen := map[uint64][]*highlight.Record{}
	for _, r := range records {
		if r == nil {
			continue
		}
		hash, err := r.IdentityHash()
		if err != nil {
			c.logger.Warn().Err(err).Str("method", "deduplicate").Msg("couldn't hash record, keeping it")
			deduplicated = append(deduplicated, r)
			continue
		}
		if slices.ContainsFunc(seen[hash], r.Equal) {
			continue
		}
		seen[hash] = append(seen[hash], r)
		deduplicated = append(deduplicated, r)
	}
	return deduplicated
}

// HighlightsForFile returns the highlights of all passes for path, ordered by start offset
func (c *HighlightCache) HighlightsForFile(path types.FilePath) []*highlight.Record {
	var records []*highlight.Record
	for key, batch := range c.Cache.GetAll() {
		if key.path == path {
			records = append(records, batch...)
		}
	}
	slices.SortStableFunc(records, func(a, b *highlight.Record) int {
		if a.StartOffset() != b.StartOffset() {
			return a.StartOffset() - b.StartOffset()
		}
		if a.EndOffset() != b.EndOffset() {
			return a.EndOffset() - b.EndOffset()
		}
		return a.Group() - b.Group()
	})
	return records
}

// HighlightsForPass returns the batch pass group published for path
func (c *HighlightCache) HighlightsForPass(path types.FilePath, group int) []*highlight.Record {
	batch, found := c.Cache.Get(passKey{path: path, group: group})
	if !found {
		return []*highlight.Record{}
	}
	return batch
}

// HighlightsForRange returns the highlights of path that intersect r
func (c *HighlightCache) HighlightsForRange(path types.FilePath, r types.TextRange) []*highlight.Record {
	var filtered []*highlight.Record
	for _, record := range c.HighlightsForFile(path) {
		if record.Range().Intersects(r) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// InvalidateOnTyping drops the highlights of path that must be recomputed after an edit
func (c *HighlightCache) InvalidateOnTyping(path types.FilePath) int {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	dropped := 0
	for key, batch := range c.Cache.GetAll() {
		if key.path != path {
			continue
		}
		kept := make([]*highlight.Record, 0, len(batch))
		for _, r := range batch {
			if r.NeedsUpdateOnTyping() {
				dropped++
				continue
			}
			kept = append(kept, r)
		}
		c.Cache.Set(key, kept, imcache.WithDefaultExpiration())
	}
	return dropped
}

func (c *HighlightCache) Files() []types.FilePath {
	var files []types.FilePath
	for key := range c.Cache.GetAll() {
		if !slices.Contains(files, key.path) {
			files = append(files, key.path)
		}
	}
	slices.Sort(files)
	return files
}

func (c *HighlightCache) ClearPass(path types.FilePath, group int) {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	c.Cache.Remove(passKey{path: path, group: group})
}

func (c *HighlightCache) ClearHighlights(path types.FilePath) {
	c.m.RLock()
	handler := c.cacheRemovalHandler
	c.m.RUnlock()
	if handler != nil {
		handler(path)
	}
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	for key := range c.Cache.GetAll() {
		if key.path == path {
			c.Cache.Remove(key)
		}
	}
}

func (c *HighlightCache) Clear() {
	for _, path := range c.Files() {
		c.ClearHighlights(path)
	}
}

func (c *HighlightCache) RegisterCacheRemovalHandler(handler func(path types.FilePath)) {
	c.m.Lock()
	defer c.m.Unlock()
	c.cacheRemovalHandler = handler
}
