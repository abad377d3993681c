// Copyright (C) 2025 Cohera Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package present renders deterministic sequences as text or JSON for
// documentation tooling. Every request constructs its own generator from
// the seed query parameter, so no generator state is shared between
// requests and equal URLs always render equal bytes.
package present

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/errhttp"
)

var (
	BadRequest = errors.NewClass("Bad Request", errhttp.SetStatusCode(400))
	NotFound   = errors.NewClass("Not Found", errhttp.SetStatusCode(404))
)

// Func writes a rendered sequence.
type Func func(io.Writer) error

// Response size limits. Rendering is cheap but unbounded counts would let
// one URL stream forever.
const (
	defaultCount = 10
	maxCount     = 100000
	defaultPerm  = 10
	maxPerm      = 10000
)

// FromRequest routes a path and query to a render func and content type.
// Paths:
//
//	/draw, /draw/json  seed, min, max, count
//	/perm, /perm/json  seed, n
//	/ids, /ids/json    seed, count
func FromRequest(path string, query url.Values) (
	f Func, contentType string, err error) {
	first, rest := shift(path)
	second, _ := shift(rest)
	switch first {
	case "draw":
		seed, err := queryInt(query, "seed", 0)
		if err != nil {
			return nil, "", err
		}
		min, err := queryInt(query, "min", 0)
		if err != nil {
			return nil, "", err
		}
		max, err := queryInt(query, "max", 10)
		if err != nil {
			return nil, "", err
		}
		if max <= min {
			return nil, "", BadRequest.New("min %d, max %d", min, max)
		}
		count, err := queryCount(query, "count", defaultCount, maxCount)
		if err != nil {
			return nil, "", err
		}
		switch second {
		case "", "text":
			return drawsText(seed, min, max, count),
				"text/plain; charset=utf-8", nil
		case "json":
			return drawsJSON(seed, min, max, count),
				"application/json; charset=utf-8", nil
		}

	case "perm":
		seed, err := queryInt(query, "seed", 0)
		if err != nil {
			return nil, "", err
		}
		n, err := queryCount(query, "n", defaultPerm, maxPerm)
		if err != nil {
			return nil, "", err
		}
		switch second {
		case "", "text":
			return permText(seed, n), "text/plain; charset=utf-8", nil
		case "json":
			return permJSON(seed, n), "application/json; charset=utf-8", nil
		}

	case "ids":
		seed, err := queryInt(query, "seed", 0)
		if err != nil {
			return nil, "", err
		}
		count, err := queryCount(query, "count", defaultCount, maxCount)
		if err != nil {
			return nil, "", err
		}
		switch second {
		case "", "text":
			return idsText(seed, count), "text/plain; charset=utf-8", nil
		case "json":
			return idsJSON(seed, count), "application/json; charset=utf-8", nil
		}
	}
	return nil, "", NotFound.New("path not found: %s", path)
}

func queryInt(query url.Values, name string, def int64) (int64, error) {
	val := query.Get(name)
	if val == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, BadRequest.New("invalid %s %#v: %v", name, val, err)
	}
	return n, nil
}

func queryCount(query url.Values, name string, def, max int) (int, error) {
	n, err := queryInt(query, name, int64(def))
	if err != nil {
		return 0, err
	}
	if n < 0 || n > int64(max) {
		return 0, BadRequest.New("%s %d outside [0, %d]", name, n, max)
	}
	return int(n), nil
}

func shift(path string) (dir, left string) {
	path = strings.TrimLeft(path, "/")
	split := strings.Index(path, "/")
	if split == -1 {
		return path, ""
	}
	return path[:split], path[split:]
}
