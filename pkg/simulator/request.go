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
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/NVIDIA/cookpot/pkg/recipe"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ParseRequestFromValues parses a simulation from URL query values.
// Ingredients come from repeated "ingredient" parameters or a comma separated
// "ingredients" parameter. "station", "pick" and "explain" are optional.
func ParseRequestFromValues(values url.Values) (Request, error) {
	var req Request

	req.Ingredients = append(req.Ingredients, values["ingredient"]...)
	if raw := values.Get("ingredients"); raw != "" {
		req.Ingredients = append(req.Ingredients, strings.Split(raw, ",")...)
	}
	req.Station = recipe.Station(values.Get("station"))

	var err error
	if req.Pick, err = parseBoolParam(values, "pick"); err != nil {
		return req, err
	}
	if req.Explain, err = parseBoolParam(values, "explain"); err != nil {
		return req, err
	}
	return req, nil
}

func parseBoolParam(values url.Values, key string) (bool, error) {
	raw := values.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: must be true or false", key, raw)
	}
	return v, nil
}

// requestKeys lists the fields a YAML request may carry.
var requestKeys = map[string]bool{
	"ingredients": true,
	"station":     true,
	"pick":        true,
	"explain":     true,
}

// UnmarshalYAML decodes a request, keeping null ingredient entries as empty
// slots in their position. Unknown fields are rejected.
func (r *Request) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: simulation request must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if key := value.Content[i]; !requestKeys[key.Value] {
			return fmt.Errorf("line %d: unknown field %q in simulation request", key.Line, key.Value)
		}
	}

	var raw struct {
		Ingredients []*string      `yaml:"ingredients"`
		Station     recipe.Station `yaml:"station"`
		Pick        bool           `yaml:"pick"`
		Explain     bool           `yaml:"explain"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	r.Ingredients = make([]string, len(raw.Ingredients))
	for i, id := range raw.Ingredients {
		if id != nil {
			r.Ingredients[i] = *id
		}
	}
	r.Station = raw.Station
	r.Pick = raw.Pick
	r.Explain = raw.Explain
	return nil
}

// ParseRequestFromBody parses a simulation from a JSON or YAML body.
// The content type selects the format; anything but YAML is read as JSON.
func ParseRequestFromBody(body io.Reader, contentType string) (Request, error) {
	data, err := readBody(body)
	if err != nil {
		return Request{}, err
	}

	if isYAML(contentType) {
		var req Request
		if err := yaml.Unmarshal(data, &req); err != nil {
			return Request{}, fmt.Errorf("failed to parse YAML body: %w", err)
		}
		return req, nil
	}
	return ParseRequestJSON(data)
}

// ParseRequestJSON parses a simulation from a JSON object such as
//
//	{"ingredients": ["meat", "meat", "berries", null], "station": "cookpot", "pick": true}
//
// A null ingredient is an empty slot.
func ParseRequestJSON(data []byte) (Request, error) {
	if !gjson.ValidBytes(data) {
		return Request{}, fmt.Errorf("failed to parse JSON body: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Request{}, fmt.Errorf("failed to parse JSON body: expected an object")
	}
	return requestFromJSON(doc)
}

func requestFromJSON(doc gjson.Result) (Request, error) {
	var req Request

	ingredients := doc.Get("ingredients")
	if !ingredients.IsArray() {
		return req, fmt.Errorf("ingredients must be an array of ingredient ids")
	}

	var err error
	ingredients.ForEach(func(_, v gjson.Result) bool {
		switch v.Type {
		case gjson.String:
			req.Ingredients = append(req.Ingredients, v.String())
		case gjson.Null:
			req.Ingredients = append(req.Ingredients, "")
		default:
			err = fmt.Errorf("ingredient %s is not a string", v.Raw)
			return false
		}
		return true
	})
	if err != nil {
		return req, err
	}

	if st := doc.Get("station"); st.Exists() {
		if st.Type != gjson.String {
			return req, fmt.Errorf("station must be a string")
		}
		req.Station = recipe.Station(st.String())
	}

	if req.Pick, err = jsonBool(doc, "pick"); err != nil {
		return req, err
	}
	if req.Explain, err = jsonBool(doc, "explain"); err != nil {
		return req, err
	}
	return req, nil
}

func jsonBool(doc gjson.Result, key string) (bool, error) {
	v := doc.Get(key)
	switch v.Type {
	case gjson.True, gjson.False:
		return v.Bool(), nil
	case gjson.Null:
		return false, nil
	default:
		return false, fmt.Errorf("%s must be a boolean", key)
	}
}

// ParseBatchFromBody parses a batch from a JSON or YAML body.
func ParseBatchFromBody(body io.Reader, contentType string) (*BatchRequest, error) {
	data, err := readBody(body)
	if err != nil {
		return nil, err
	}

	if isYAML(contentType) {
		var batch BatchRequest
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to parse YAML body: %w", err)
		}
		return &batch, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse JSON body: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	items := doc.Get("items")
	if !items.IsArray() {
		return nil, fmt.Errorf("items must be an array of simulation requests")
	}

	batch := &BatchRequest{}
	if st := doc.Get("station"); st.Type == gjson.String {
		batch.Station = recipe.Station(st.String())
	}

	var itemErr error
	items.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			itemErr = fmt.Errorf("item %d: expected an object", len(batch.Items))
			return false
		}
		req, err := requestFromJSON(v)
		if err != nil {
			itemErr = fmt.Errorf("item %d: %w", len(batch.Items), err)
			return false
		}
		batch.Items = append(batch.Items, req)
		return true
	})
	if itemErr != nil {
		return nil, itemErr
	}
	return batch, nil
}

func readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}
	return data, nil
}

func isYAML(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	// Extract media type (strip charset and other params)
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return true
	default:
		return false
	}
}
