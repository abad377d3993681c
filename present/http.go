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

package present

import (
	"net/http"

	"github.com/spacemonkeygo/errors/errhttp"
)

type handler struct{}

// HTTP returns an http.Handler that serves deterministic sequences using
// this package's FromRequest request router.
func HTTP() http.Handler {
	return handler{}
}

func (h handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f, contentType, err := FromRequest(req.URL.Path, req.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), errhttp.GetStatusCode(err, 500))
		return
	}
	w.Header().Set("Content-Type", contentType)
	_ = f(w)
}
