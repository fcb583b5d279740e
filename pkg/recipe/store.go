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

package recipe

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"sync"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/recipes.yaml
var recipeData []byte

var (
	tableOnce   sync.Once
	cachedTable *Table
	cachedErr   error
)

type recipeFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Default returns the table built from the embedded recipe data and
// Predicates. It is built once per process; later calls return the cached
// table or the cached error.
func Default(_ context.Context) (*Table, error) {
	loaded := false
	tableOnce.Do(func() {
		loaded = true
		tableCacheMisses.Inc()

		defs, err := Parse(recipeData)
		if err != nil {
			cachedErr = err
			return
		}

		t, err := NewTable(defs, Predicates())
		if err != nil {
			cachedErr = err
			return
		}

		slog.Debug("recipe table loaded",
			"recipes", t.Len(),
			"cookpot", len(t.ByStation(StationCookpot)),
			"portable", len(t.ByStation(StationPortable)),
		)
		cachedTable = t
	})

	if !loaded && cachedTable != nil && cachedErr == nil {
		tableCacheHits.Inc()
	}

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedTable == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInternal, "recipe table not initialized")
	}
	return cachedTable, nil
}

// Parse decodes recipe definitions from YAML. Unknown fields are rejected.
func Parse(data []byte) ([]Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f recipeFile
	if err := dec.Decode(&f); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeDataIntegrity, "failed to parse recipe data", err)
	}
	if len(f.Recipes) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeDataIntegrity, "recipe data has no recipes")
	}
	return f.Recipes, nil
}
