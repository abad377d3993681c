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

package seqgen

import (
	"github.com/spacemonkeygo/errors"
)

var (
	// Error is the class every error returned by this package belongs to.
	Error = errors.NewClass("seqgen")

	// InvalidRange is returned by Draw when max <= min. Check with
	// InvalidRange.Contains(err).
	InvalidRange = Error.NewClass("invalid range")
)
