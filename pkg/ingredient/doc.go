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

// Package ingredient holds the cooking ingredient catalog.
//
// The catalog is built from a list of base ingredients. Every cookable base
// gains a "<id>_cooked" variant carrying an extra precook tag, and every
// dryable base gains a "<id>_dried" variant carrying an extra dried tag.
// Variants inherit the base category and tags, and are never themselves
// cookable or dryable.
//
// The embedded catalog is loaded once per process:
//
//	cat, err := ingredient.Default(ctx)
//	if err != nil {
//	    return err
//	}
//	slots, err := cat.Resolve([]string{"meat", "meat", "berries", "twigs"})
//
// A Catalog is immutable after construction and safe for concurrent use.
package ingredient
