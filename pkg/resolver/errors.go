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
	"fmt"
	"strings"

	"github.com/trident-lang/trident/pkg/source"
)

// CircularDependency reports a cycle discovered while the module graph was
// traversed depth-first. CyclePath lists the module names in the order the
// cycle was walked, ending back at its start.
type CircularDependency struct {
	CyclePath []string
	At        source.Span
}

func (e *CircularDependency) Error() string {
	return fmt.Sprintf("circular module dependency: %s", strings.Join(e.CyclePath, " -> "))
}

// DuplicateDefinition reports two items sharing a name within one module.
type DuplicateDefinition struct {
	Module string
	Name   string
	First  source.Span
	Second source.Span
}

func (e *DuplicateDefinition) Error() string {
	return fmt.Sprintf("%q is defined more than once in module %q", e.Name, e.Module)
}

// ModuleNotFound reports a `use` path with no corresponding source file.
type ModuleNotFound struct {
	Path []string
	At   source.Span
}

func (e *ModuleNotFound) Error() string {
	return fmt.Sprintf("module %q not found", strings.Join(e.Path, "."))
}
