// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingredient

import (
	"context"
	"sync"
	"testing"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default(context.Background())
	require.NoError(t, err)

	// 76 bases, 46 cookable, 10 dryable.
	assert.Equal(t, 132, c.Len())

	again, err := Default(context.Background())
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestDefault_KnownEntries(t *testing.T) {
	c, err := Default(context.Background())
	require.NoError(t, err)

	tests := []struct {
		id   string
		name string
		tags map[Tag]float64
	}{
		{"meat", "Meat", map[Tag]float64{TagMeat: 1}},
		{"meat_cooked", "Cooked Meat", map[Tag]float64{TagMeat: 1, TagPrecook: 1}},
		{"meat_dried", "Dried Meat", map[Tag]float64{TagMeat: 1, TagDried: 1}},
		{"lightninggoathorn", "Volt Goat Horn", map[Tag]float64{TagInedible: 1, TagMagic: 2}},
		{"trunk_cooked", "Cooked Koalefant Trunk", map[Tag]float64{TagMeat: 1, TagPrecook: 1}},
		{"wobster_sheller_land", "Wobster", map[Tag]float64{TagFish: 2, TagMeat: 1}},
		{"royal_jelly", "Royal Jelly", map[Tag]float64{TagSweetener: 3}},
		{"kelp_dried", "Dried Kelp Fronds", map[Tag]float64{TagVeggie: 0.5, TagDried: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := c.Lookup(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.name, got.Name)
			assert.Equal(t, tt.tags, got.Tags)
		})
	}

	for _, id := range []string{"honey_cooked", "cutlichen_cooked", "mole_cooked", "trunk_summer_cooked", "berries_dried"} {
		_, ok := c.Lookup(id)
		assert.False(t, ok, id)
	}

	cooked, _ := c.Lookup("carrot_cooked")
	assert.Equal(t, "구운 당근", cooked.DisplayName("ko"))
}

func TestDefault_EveryCategoryPopulated(t *testing.T) {
	c, err := Default(context.Background())
	require.NoError(t, err)

	for _, cat := range Categories() {
		assert.NotEmpty(t, c.ByCategory(cat), cat)
	}
	assert.Len(t, c.ByCategory(CategoryFruits), 22)
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		bases, err := Parse([]byte(`
ingredients:
  - id: ice
    name: Ice
    tags: {frozen: 1}
    category: misc
`))
		require.NoError(t, err)
		require.Len(t, bases, 1)
		assert.Equal(t, 1.0, bases[0].Weight(TagFrozen))
	})

	tests := []struct {
		name string
		data string
	}{
		{"malformed", "ingredients: [\n"},
		{"unknown field", "ingredients:\n  - id: ice\n    flavor: cold\n"},
		{"empty", "ingredients: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, cnserrors.ErrCodeDataIntegrity, cnserrors.CodeOf(err))
		})
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestDefault_CacheMetrics(t *testing.T) {
	// start from an unloaded cache so the first call below misses
	catalogOnce, cachedCatalog, cachedErr = sync.Once{}, nil, nil

	hits, misses := counterValue(t, catalogCacheHits), counterValue(t, catalogCacheMisses)

	_, err := Default(context.Background())
	require.NoError(t, err)
	assert.Equal(t, misses+1, counterValue(t, catalogCacheMisses))
	assert.Equal(t, hits, counterValue(t, catalogCacheHits), "a miss is not also a hit")

	_, err = Default(context.Background())
	require.NoError(t, err)
	assert.Equal(t, misses+1, counterValue(t, catalogCacheMisses))
	assert.Equal(t, hits+1, counterValue(t, catalogCacheHits))
}
