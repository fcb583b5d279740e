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

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// matched returns the matched recipe ids of an outcome document.
func matched(outcome gjson.Result) []string {
	var ids []string
	for _, id := range outcome.Get("result.matchedRecipeIds").Array() {
		ids = append(ids, id.String())
	}
	return ids
}

func TestSimulateCmd(t *testing.T) {
	out, err := run(t, "simulate", "-i", "meat", "-i", "berries", "-i", "berries", "-i", "berries")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "Simulation", doc.Get("kind").String())
	assert.Equal(t, "cookpot", doc.Get("station").String())
	assert.Equal(t, []string{"meatballs"}, matched(doc))
	assert.False(t, doc.Get("result.isAmbiguous").Bool())
}

func TestSimulateCmd_Explain(t *testing.T) {
	out, err := run(t, "simulate", "--explain", "--station", "secondary", "meat", "meat", "meat", "meat")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "portablecookpot", doc.Get("station").String())
	assert.NotEmpty(t, doc.Get("result.matchedRecipeIds").Array())
	assert.GreaterOrEqual(t, len(doc.Get("candidates").Array()), len(doc.Get("result.matchedRecipeIds").Array()))
}

func TestSimulateCmd_Incomplete(t *testing.T) {
	out, err := run(t, "simulate", "-i", "meat", "-i", "meat")
	require.NoError(t, err)

	assert.Empty(t, gjson.Get(out, "result.matchedRecipeIds").Array())
}

func TestSimulateCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no ingredients", []string{"simulate"}, "no ingredients"},
		{"unknown ingredient", []string{"simulate", "meat", "rocks", "meat", "meat"}, "NOT_FOUND"},
		{"too many", []string{"simulate", "meat", "meat", "meat", "meat", "meat"}, "INVALID_REQUEST"},
		{"bad station", []string{"simulate", "--station", "oven", "meat"}, "invalid station"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
