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

package simulator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/recipe"
)

// Request describes one simulation by ingredient id.
type Request struct {
	// Ingredients holds up to SlotCount ingredient ids. Missing or empty
	// entries are empty slots.
	Ingredients []string `json:"ingredients" yaml:"ingredients"`

	// Station defaults to the cookpot. Aliases primary and secondary are accepted.
	Station recipe.Station `json:"station,omitempty" yaml:"station,omitempty"`

	// Pick selects one recipe from an ambiguous result.
	Pick bool `json:"pick,omitempty" yaml:"pick,omitempty"`

	// Explain includes every matching recipe before the priority cut.
	Explain bool `json:"explain,omitempty" yaml:"explain,omitempty"`
}

// normalize validates r and returns it with a canonical station and exactly
// SlotCount ingredient entries.
func (r Request) normalize() (Request, error) {
	// a trailing separator, as in "meat,meat,meat,meat,", adds blank entries
	for len(r.Ingredients) > SlotCount && strings.TrimSpace(r.Ingredients[len(r.Ingredients)-1]) == "" {
		r.Ingredients = r.Ingredients[:len(r.Ingredients)-1]
	}
	if len(r.Ingredients) > SlotCount {
		return r, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many ingredients: %d, a vessel holds %d", len(r.Ingredients), SlotCount),
			map[string]any{"count": len(r.Ingredients)})
	}

	station := recipe.StationCookpot
	if r.Station != "" {
		st, err := recipe.ParseStation(string(r.Station))
		if err != nil {
			return r, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid station", err)
		}
		station = st
	}

	ids := make([]string, SlotCount)
	for i, id := range r.Ingredients {
		ids[i] = strings.TrimSpace(id)
	}

	r.Station = station
	r.Ingredients = ids
	return r, nil
}

// Outcome is the rendered result of one simulation.
type Outcome struct {
	Station     recipe.Station `json:"station" yaml:"station"`
	Ingredients []string       `json:"ingredients" yaml:"ingredients"`
	Result      *Result        `json:"result" yaml:"result"`

	// Recipes carries display metadata for Result.RecipeIDs, in the same order.
	Recipes []recipe.Recipe `json:"recipes" yaml:"recipes"`

	// Candidates is set in explain mode.
	Candidates []recipe.Recipe `json:"candidates,omitempty" yaml:"candidates,omitempty"`

	// Tags holds the summed tag weights the recipes were tested against.
	// It is set in explain mode.
	Tags map[string]float64 `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Picked is set when a pick was requested and something matched.
	Picked string `json:"picked,omitempty" yaml:"picked,omitempty"`
}

// Report is the document returned for a single simulation.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`
	Outcome       `json:",inline" yaml:",inline"`
}

// Service resolves ingredient ids and runs simulations.
type Service struct {
	catalog     *ingredient.Catalog
	engine      *Engine
	version     string
	concurrency int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithVersion sets the version stamped on report headers.
func WithVersion(version string) Option {
	return func(s *Service) {
		s.version = version
	}
}

// WithConcurrency bounds the number of simulations a batch runs in parallel.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRand sets the source used to pick among tied recipes.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// NewService returns a service over catalog and table.
func NewService(catalog *ingredient.Catalog, table *recipe.Table, opts ...Option) *Service {
	s := &Service{
		catalog:     catalog,
		engine:      NewEngine(table),
		concurrency: defaults.BatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the ingredient catalog.
func (s *Service) Catalog() *ingredient.Catalog {
	return s.catalog
}

// Engine returns the simulation engine.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Simulate resolves and simulates req.
func (s *Service) Simulate(req Request) (*Report, error) {
	out, err := s.run(req)
	if err != nil {
		return nil, err
	}

	rep := &Report{Outcome: *out}
	rep.Init(header.KindSimulation, s.version)
	return rep, nil
}

// SimulateIDs simulates ingredient ids in station.
func (s *Service) SimulateIDs(ids []string, station recipe.Station) (*Report, error) {
	return s.Simulate(Request{Ingredients: ids, Station: station})
}

func (s *Service) run(req Request) (*Outcome, error) {
	req, err := req.normalize()
	if err != nil {
		return nil, err
	}

	slots, err := s.catalog.Resolve(req.Ingredients)
	if err != nil {
		simulationsTotal.WithLabelValues(req.Station.String(), outcomeUnresolved).Inc()
		return nil, err
	}

	start := time.Now()
	res := s.engine.Simulate(slots, req.Station)
	simulationDuration.Observe(time.Since(start).Seconds())
	simulationsTotal.WithLabelValues(req.Station.String(), outcomeOf(res)).Inc()

	out := &Outcome{
		Station:     req.Station,
		Ingredients: req.Ingredients,
		Result:      res,
		Recipes:     s.describe(res.RecipeIDs),
	}
	if req.Explain {
		out.Candidates = s.engine.Candidates(slots, req.Station)
		_, tags := Aggregate(slots)
		out.Tags = tags.Values()
	}
	if req.Pick {
		out.Picked = s.pick(res)
	}
	return out, nil
}

func (s *Service) describe(ids []string) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.engine.table.Get(id); ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) pick(res *Result) string {
	if s.rng == nil {
		return res.Pick(nil)
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return res.Pick(s.rng)
}

// TableHeader implements serializer.TableRenderer.
func (r *Report) TableHeader() []string {
	return outcomeColumns
}

// TableRows implements serializer.TableRenderer.
func (r *Report) TableRows() [][]string {
	return [][]string{r.Outcome.row()}
}

var outcomeColumns = []string{"STATION", "INGREDIENTS", "RECIPES", "PRIORITY", "AMBIGUOUS", "PICKED"}

func (o Outcome) row() []string {
	names := make([]string, len(o.Recipes))
	for i, r := range o.Recipes {
		names[i] = r.Name
	}

	ingredients := make([]string, len(o.Ingredients))
	for i, id := range o.Ingredients {
		if id == "" {
			id = "-"
		}
		ingredients[i] = id
	}

	recipes, priority := "-", "-"
	if !o.Result.Empty() {
		recipes = strings.Join(names, ", ")
		priority = strconv.Itoa(o.Result.Priority)
	}
	picked := o.Picked
	if picked == "" {
		picked = "-"
	}

	return []string{
		o.Station.String(),
		strings.Join(ingredients, ", "),
		recipes,
		priority,
		strconv.FormatBool(o.Result != nil && o.Result.Ambiguous),
		picked,
	}
}
