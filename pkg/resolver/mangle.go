// Copyright Trident Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package resolver

import (
	"strconv"
	"strings"
)

// Mangle produces a collision-free function label: the module path joined
// with underscores, then "__" and the function name, then (for a
// monomorphized instance) "__" and the size arguments joined with "_"
// (spec.md §4.3 "Label mangling").
func Mangle(modulePath []string, fnName string, sizeArgs []uint64) string {
	var b strings.Builder

	b.WriteString(strings.Join(modulePath, "_"))
	b.WriteString("__")
	b.WriteString(fnName)

	if len(sizeArgs) > 0 {
		parts := make([]string, len(sizeArgs))
		for i, a := range sizeArgs {
			parts[i] = strconv.FormatUint(a, 10)
		}

		b.WriteString("__")
		b.WriteString(strings.Join(parts, "_"))
	}

	return b.String()
}
