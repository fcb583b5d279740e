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
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"sync"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/ingredients.yaml
var catalogData []byte

var (
	catalogOnce   sync.Once
	cachedCatalog *Catalog
	cachedErr     error
)

// catalogFile is the on-disk shape of the embedded ingredient data.
type catalogFile struct {
	Ingredients []Ingredient `yaml:"ingredients"`
}

// Default returns the catalog built from the embedded ingredient data.
// The data is parsed and validated once per process; later calls return the
// cached catalog or the cached error.
func Default(_ context.Context) (*Catalog, error) {
	loaded := false
	catalogOnce.Do(func() {
		loaded = true
		catalogCacheMisses.Inc()

		bases, err := Parse(catalogData)
		if err != nil {
			cachedErr = err
			return
		}

		c, err := BuildCatalog(bases)
		if err != nil {
			cachedErr = err
			return
		}

		slog.Debug("ingredient catalog loaded",
			"bases", len(bases),
			"total", c.Len(),
		)
		cachedCatalog = c
	})

	if !loaded && cachedCatalog != nil && cachedErr == nil {
		catalogCacheHits.Inc()
	}

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedCatalog == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInternal, "ingredient catalog not initialized")
	}
	return cachedCatalog, nil
}

// Parse decodes base ingredients from YAML. Unknown fields are rejected.
func Parse(data []byte) ([]Ingredient, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeDataIntegrity, "failed to parse ingredient data", err)
	}
	if len(f.Ingredients) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeDataIntegrity, "ingredient data has no ingredients")
	}
	return f.Ingredients, nil
}
