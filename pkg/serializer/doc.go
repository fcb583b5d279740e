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

// Package serializer encodes cookpot documents for output and decodes
// request and batch files.
//
// # Formats
//
//   - json: indented JSON, also used for HTTP responses
//   - yaml: gopkg.in/yaml.v3 with two-space indentation
//   - table: tab-aligned columns for terminals (write-only)
//
// Values implementing TableRenderer control their own columns. Anything else
// is flattened into FIELD/VALUE rows.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Reading
//
// FromFile loads a local file or an http(s) URL, picking the decoder from the
// path extension:
//
//	batch, err := serializer.FromFile[simulator.BatchRequest](ctx, "batch.yaml")
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, report)
package serializer
