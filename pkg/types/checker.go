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

// Package types implements Trident's type checker: width inference,
// operator typing, generic monomorphization, constant folding, recursion
// and dead-code detection, and `#[pure]`/`#[cfg]` enforcement.
package types

import (
	log "github.com/sirupsen/logrus"

	"github.com/trident-lang/trident/pkg/ast"
	"github.com/trident-lang/trident/pkg/resolver"
	"github.com/trident-lang/trident/pkg/source"
	"github.com/trident-lang/trident/pkg/target"
)

// funcEntry pairs a function declaration with the module that declares it
// and whether that module is within the standard library tree.
type funcEntry struct {
	fn       ast.Function
	module   string
	isStdLib bool
}

// Checker walks a resolved module graph in topological order, maintaining
// a symbol table keyed by qualified name and an environment stack for
// local bindings (spec.md §4.4).
type Checker struct {
	cfg   target.Config
	diags *source.Collector

	structs map[string]ast.Struct
	consts  map[string]ast.Const
	funcs   map[string]funcEntry
	events  map[string]ast.Event

	constVals map[string]target.FieldElement

	callGraph map[string][]string
	exports   *Exports

	activeFlags   map[string]bool
	currentModule string

	// Strict promotes UnusedItem and UnreachableCode from warnings to fatal
	// diagnostics (the `--strict` profile flag).
	Strict bool
}

// NewChecker constructs a Checker for one compile invocation against cfg,
// with the given active profile flags (spec.md §4.4 "#[cfg(flag)] filtering").
// A "strict" flag additionally promotes UnusedItem/UnreachableCode warnings
// to fatal diagnostics.
func NewChecker(cfg target.Config, diags *source.Collector, profileFlags []string) *Checker {
	flags := make(map[string]bool, len(profileFlags))
	for _, f := range profileFlags {
		flags[f] = true
	}

	return &Checker{
		cfg:         cfg,
		diags:       diags,
		structs:     map[string]ast.Struct{},
		consts:      map[string]ast.Const{},
		funcs:       map[string]funcEntry{},
		events:      map[string]ast.Event{},
		constVals:   map[string]target.FieldElement{},
		callGraph:   map[string][]string{},
		exports:     newExports(),
		activeFlags: flags,
		Strict:      flags["strict"],
	}
}

// Check type-checks every module in the graph's topological order and
// returns the cfg-filtered modules; the Exports record is read afterwards
// through Exports(). Diagnostics are
// accumulated on the collector supplied to NewChecker; callers should check
// HasErrors() before proceeding to IR building.
func (c *Checker) Check(g *resolver.Graph) map[string]ast.File {
	filtered := c.filterCfg(g)

	c.registerDeclarations(filtered, g)
	c.evalConstants()

	for _, key := range g.Order {
		mod, ok := filtered[key]
		if !ok {
			continue
		}

		c.checkModule(key, mod)
	}

	c.detectRecursion()
	c.detectDeadCode(filtered)

	log.WithFields(log.Fields{"modules": len(filtered)}).Debug("types: check complete")

	return filtered
}

// Exports returns the accumulated Exports record. Valid after Check.
func (c *Checker) Exports() *Exports { return c.exports }

// warnOrError records a diagnostic at Warning severity, or at Error
// severity when the `--strict` profile flag is set (spec.md §9 supplemented
// "--strict profile flag").
func (c *Checker) warnOrError(code, message string, span source.Span) {
	severity := source.SeverityWarning
	if c.Strict {
		severity = source.SeverityError
	}

	c.diags.Add(source.Diagnostic{Severity: severity, Code: code, Message: message, Span: span})

	if severity == source.SeverityWarning {
		log.WithFields(log.Fields{"code": code}).Warn(message)
	}
}

// filterCfg removes items whose `#[cfg(flag)]` attribute names a flag not
// in the active profile, before any other pass observes them.
func (c *Checker) filterCfg(g *resolver.Graph) map[string]ast.File {
	out := make(map[string]ast.File, len(g.Modules))

	for key, mod := range g.Modules {
		f := mod.File

		kept := make([]ast.Item, 0, len(f.Items))

		for _, item := range f.Items {
			if fn, ok := item.(ast.Function); ok {
				if flag, has := fn.CfgFlag(); has && !c.activeFlags[flag] {
					continue
				}
			}

			kept = append(kept, item)
		}

		f.Items = kept
		out[key] = f
	}

	return out
}

func (c *Checker) isStdLibModule(path []string) bool {
	return len(path) > 0 && path[0] == resolver.StdPrefix
}

func (c *Checker) registerDeclarations(filtered map[string]ast.File, g *resolver.Graph) {
	for key, f := range filtered {
		mod := g.Modules[key]
		isStd := mod != nil && c.isStdLibModule(mod.Path)

		for _, item := range f.Items {
			switch v := item.(type) {
			case ast.Struct:
				c.structs[key+"::"+v.Name] = v
			case ast.Const:
				c.consts[key+"::"+v.Name] = v
			case ast.Event:
				c.events[key+"::"+v.Name] = v
			case ast.Function:
				c.funcs[key+"::"+v.Name] = funcEntry{fn: v, module: key, isStdLib: isStd}

				if name, has := v.Intrinsic(); has {
					if !isStd {
						c.diags.Add(source.Diagnostic{
							Severity: source.SeverityError,
							Code:     "IntrinsicOutsideStdLib",
							Message:  (&IntrinsicOutsideStdLib{Func: v.Name}).Error(),
							Span:     v.Span(),
						})
					}

					c.exports.Intrinsics[key+"::"+v.Name] = name
				}

				if v.IsTest() {
					if len(v.Params) > 0 {
						c.diags.Add(diagFromErr(&WrongArity{Func: v.Name, Expected: 0, Got: len(v.Params)}, v.Span()))
					}

					c.exports.TestFunctions = append(c.exports.TestFunctions, QualifiedName{Module: key, Name: v.Name})
				}
			}
		}
	}
}

// lookupStruct resolves a (possibly dotted) named-type path to its
// declaration, relative to the module currently being checked.
func (c *Checker) lookupStruct(path []string) (ast.Struct, bool) {
	name := path[len(path)-1]
	module := c.currentModule

	if len(path) > 1 {
		module = joinPath(path[:len(path)-1])
	}

	if st, ok := c.structs[module+"::"+name]; ok {
		return st, true
	}

	if st, ok := c.structs[c.currentModule+"::"+name]; ok {
		return st, true
	}

	return ast.Struct{}, false
}

func (c *Checker) lookupFunc(callerModule string, path []string) (funcEntry, string, bool) {
	name := path[len(path)-1]
	qualified := callerModule + "::" + name

	if len(path) > 1 {
		qualified = joinPath(path[:len(path)-1]) + "::" + name
	}

	if fe, ok := c.funcs[qualified]; ok {
		return fe, qualified, true
	}

	// Fall back to a same-module lookup for a bare name.
	local := callerModule + "::" + name
	if fe, ok := c.funcs[local]; ok {
		return fe, local, true
	}

	return funcEntry{}, "", false
}
