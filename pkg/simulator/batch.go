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
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/NVIDIA/cookpot/pkg/recipe"
	"golang.org/x/sync/errgroup"
)

// BatchRequest is the input document of a batch simulation.
type BatchRequest struct {
	header.Header `json:",inline" yaml:",inline"`

	// Station applies to items that do not name one.
	Station recipe.Station `json:"station,omitempty" yaml:"station,omitempty"`

	Items []Request `json:"items" yaml:"items"`
}

// Requests returns the items with the batch station applied.
func (b *BatchRequest) Requests() []Request {
	out := make([]Request, len(b.Items))
	for i, item := range b.Items {
		if item.Station == "" && b.Station != "" {
			item.Station = b.Station
		}
		out[i] = item
	}
	return out
}

// BatchReport is the document returned for a batch simulation.
type BatchReport struct {
	header.Header `json:",inline" yaml:",inline"`

	// Items holds one outcome per request, in request order.
	Items []Outcome `json:"items" yaml:"items"`
}

// TableHeader implements serializer.TableRenderer.
func (b *BatchReport) TableHeader() []string {
	return append([]string{"#"}, outcomeColumns...)
}

// TableRows implements serializer.TableRenderer.
func (b *BatchReport) TableRows() [][]string {
	rows := make([][]string, len(b.Items))
	for i, item := range b.Items {
		rows[i] = append([]string{strconv.Itoa(i)}, item.row()...)
	}
	return rows
}

// SimulateBatch runs reqs concurrently and returns their outcomes in request
// order. The first failing item cancels the rest of the batch.
func (s *Service) SimulateBatch(ctx context.Context, reqs []Request) (*BatchReport, error) {
	if len(reqs) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "batch has no items")
	}
	if len(reqs) > defaults.MaxBatchSize {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("batch too large: %d items, limit is %d", len(reqs), defaults.MaxBatchSize),
			map[string]any{"count": len(reqs), "limit": defaults.MaxBatchSize})
	}

	batchSize.Observe(float64(len(reqs)))
	items := make([]Outcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.run(req)
			if err != nil {
				return cnserrors.WrapWithContext(cnserrors.CodeOf(err),
					fmt.Sprintf("batch item %d failed", i), err, map[string]any{"item": i})
			}
			items[i] = *out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "batch simulation interrupted", err)
		}
		return nil, err
	}

	rep := &BatchReport{Items: items}
	rep.Init(header.KindSimulationBatch, s.version)
	rep.Metadata["count"] = strconv.Itoa(len(items))
	return rep, nil
}
