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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/snyk-highlight/domain/highlight"
	"github.com/snyk/snyk-highlight/internal/testutil"
	"github.com/snyk/snyk-highlight/internal/types"
)

const (
	mainGo  = types.FilePath("/workspace/main.go")
	utilsGo = types.FilePath("/workspace/utils.go")
)

func newRecord(t highlight.HighlightType, start, end int, description string) *highlight.Record {
	return highlight.NewRecord(t, start, end, description, highlight.EscapeTooltip(description), highlight.Options{})
}

func newCache(t *testing.T) *HighlightCache {
	t.Helper()
	c := testutil.UnitTest(t)
	return NewHighlightCache(time.Hour, c.Logger())
}

func TestPublish_ReplacesBatchOfPass(t *testing.T) {
	cache := newCache(t)
	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 4, "first")})

	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Warning, 5, 9, "second")})

	records := cache.HighlightsForPass(mainGo, 1)
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0].Description())
	assert.Equal(t, 1, records[0].Group())
}

func TestPublish_DeduplicatesEqualRecords(t *testing.T) {
	cache := newCache(t)
	a := newRecord(highlight.Warning, 3, 8, "unused")
	sameButOtherTooltip := highlight.NewRecord(highlight.Warning, 3, 8, "unused", "different", highlight.Options{})
	sameStartOtherEnd := newRecord(highlight.Warning, 3, 9, "unused")

	cache.Publish(mainGo, 2, []*highlight.Record{a, sameButOtherTooltip, nil, sameStartOtherEnd})

	records := cache.HighlightsForPass(mainGo, 2)
	require.Len(t, records, 2)
	assert.Same(t, a, records[0])
	assert.Same(t, sameStartOtherEnd, records[1])
}

func TestHighlightsForFile_MergesPassesOrderedByOffset(t *testing.T) {
	cache := newCache(t)
	cache.Publish(mainGo, 2, []*highlight.Record{newRecord(highlight.Todo, 20, 30, "todo"), newRecord(highlight.Error, 0, 2, "error")})
	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Warning, 10, 12, "warning")})
	cache.Publish(utilsGo, 1, []*highlight.Record{newRecord(highlight.Warning, 1, 2, "elsewhere")})

	records := cache.HighlightsForFile(mainGo)

	require.Len(t, records, 3)
	assert.Equal(t, "error", records[0].Description())
	assert.Equal(t, "warning", records[1].Description())
	assert.Equal(t, "todo", records[2].Description())
	assert.Empty(t, cache.HighlightsForFile("/workspace/unknown.go"))
	assert.Empty(t, cache.HighlightsForPass(mainGo, 7))
}

func TestHighlightsForRange(t *testing.T) {
	cache := newCache(t)
	cache.Publish(mainGo, 1, []*highlight.Record{
		newRecord(highlight.Error, 0, 5, "a"),
		newRecord(highlight.Error, 10, 15, "b"),
		newRecord(highlight.Error, 20, 25, "c"),
	})

	records := cache.HighlightsForRange(mainGo, types.NewTextRange(4, 10))

	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Description())
	assert.Equal(t, "b", records[1].Description())
}

func TestInvalidateOnTyping_KeepsStableHighlights(t *testing.T) {
	cache := newCache(t)
	cache.Publish(mainGo, 1, []*highlight.Record{
		newRecord(highlight.Error, 0, 5, "error"),
		newRecord(highlight.LocalVariable, 6, 9, "local"),
		newRecord(highlight.Todo, 10, 20, "todo"),
	})

	dropped := cache.InvalidateOnTyping(mainGo)

	assert.Equal(t, 1, dropped)
	records := cache.HighlightsForFile(mainGo)
	require.Len(t, records, 2)
	assert.Equal(t, "local", records[0].Description())
	assert.Equal(t, "todo", records[1].Description())
}

func TestInvalidateOnTyping_DoesNotOverwriteConcurrentPublish(t *testing.T) {
	cache := newCache(t)
	old := make([]*highlight.Record, 0, 3000)
	for i := 0; i < 3000; i++ {
		old = append(old, newRecord(highlight.LocalVariable, i, i+1, fmt.Sprintf("old %d", i)))
	}

	for run := 0; run < 50; run++ {
		cache.Publish(mainGo, 1, old)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.InvalidateOnTyping(mainGo)
		}()
		go func() {
			defer wg.Done()
			cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.LocalVariable, 0, 1, "new")})
		}()
		wg.Wait()

		records := cache.HighlightsForPass(mainGo, 1)
		require.Len(t, records, 1, "run %d", run)
		assert.Equal(t, "new", records[0].Description())
	}
}

func TestClearHighlights_DoesNotOverwriteConcurrentPublish(t *testing.T) {
	cache := newCache(t)

	for run := 0; run < 50; run++ {
		cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 1, "old")})
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.ClearHighlights(mainGo)
		}()
		go func() {
			defer wg.Done()
			cache.Publish(mainGo, 2, []*highlight.Record{newRecord(highlight.Error, 2, 3, "new")})
		}()
		wg.Wait()

		for _, r := range cache.HighlightsForFile(mainGo) {
			assert.Equal(t, "new", r.Description(), "run %d", run)
		}
		cache.ClearHighlights(mainGo)
	}
}

func TestClearHighlights(t *testing.T) {
	cache := newCache(t)
	var removed []types.FilePath
	cache.RegisterCacheRemovalHandler(func(path types.FilePath) {
		removed = append(removed, path)
	})
	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 5, "a")})
	cache.Publish(mainGo, 2, []*highlight.Record{newRecord(highlight.Error, 0, 5, "b")})
	cache.Publish(utilsGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 5, "c")})

	assert.Equal(t, []types.FilePath{mainGo, utilsGo}, cache.Files())

	cache.ClearHighlights(mainGo)

	assert.Empty(t, cache.HighlightsForFile(mainGo))
	assert.Len(t, cache.HighlightsForFile(utilsGo), 1)
	assert.Equal(t, []types.FilePath{mainGo}, removed)

	cache.Clear()
	assert.Empty(t, cache.Files())
}

func TestClearPass(t *testing.T) {
	cache := newCache(t)
	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 5, "a")})
	cache.Publish(mainGo, 2, []*highlight.Record{newRecord(highlight.Error, 6, 9, "b")})

	cache.ClearPass(mainGo, 1)

	records := cache.HighlightsForFile(mainGo)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].Description())
}

func TestPublish_Expires(t *testing.T) {
	c := testutil.UnitTest(t)
	cache := NewHighlightCache(10*time.Millisecond, c.Logger())
	cache.Publish(mainGo, 1, []*highlight.Record{newRecord(highlight.Error, 0, 5, "a")})

	assert.Eventually(t, func() bool {
		return len(cache.HighlightsForFile(mainGo)) == 0
	}, time.Second, 5*time.Millisecond)
}
