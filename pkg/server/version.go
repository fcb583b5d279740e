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

package server

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for a version.
	DefaultAPIVersion = "v1"

	vendorMediaPrefix = "application/vnd.nvidia.cookpot."
)

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion picks the API version from the Accept header, e.g.
// "application/vnd.nvidia.cookpot.v1+json". Non-vendor media ranges select
// DefaultAPIVersion. It returns false when the client only accepts vendor
// versions this server does not serve.
func negotiateAPIVersion(r *http.Request) (string, bool) {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion, true
	}

	vendorOnly := true
	for _, mediaRange := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(mediaRange), ";")
		rest, ok := strings.CutPrefix(mediaType, vendorMediaPrefix)
		if !ok {
			vendorOnly = false
			continue
		}
		version, _, _ := strings.Cut(rest, "+")
		if supportedAPIVersions[version] {
			return version, true
		}
	}

	if vendorOnly {
		return "", false
	}
	return DefaultAPIVersion, true
}

// SupportedAPIVersions returns the versions accepted in the Accept header.
func SupportedAPIVersions() []string {
	return slices.Sorted(maps.Keys(supportedAPIVersions))
}
