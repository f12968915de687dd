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

// Package resolver discovers Trident's module graph from a set of parsed
// files, orders it topologically, and mangles function labels.
package resolver

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

// SourceExt is the file extension module paths resolve to on disk.
const SourceExt = ".tri"

// StdPrefix is the reserved first path component routed to the
// standard-library root; ExtPrefix is routed to the extensions root.
const (
	StdPrefix = "std"
	ExtPrefix = "ext"
)

// RootConfig carries the environment overrides for the standard-library and
// extensions search roots (spec.md §4.3, §7 "Environment variables
// recognized"). Parsed with caarlos0/env the same tag-driven way the pack's
// mna/mainer collaborator loads its CLI configuration.
type RootConfig struct {
	StdlibRoot string `env:"STDLIB_ROOT"`
	ExtlibRoot string `env:"EXTLIB_ROOT"`
}

// Roots is the fully-resolved set of search roots used for module path
// resolution.
type Roots struct {
	Stdlib  string
	Extlib  string
	Project string
}

// LoadRootConfig parses RootConfig from the process environment.
func LoadRootConfig() (RootConfig, error) {
	var cfg RootConfig

	if err := env.Parse(&cfg); err != nil {
		return RootConfig{}, err
	}

	return cfg, nil
}

// ResolveRoots computes the standard-library, extensions and project roots
// in the order the specification mandates: environment override, then a
// directory relative to the compiler binary, then the current working
// directory.
func ResolveRoots(cfg RootConfig, projectRoot string) Roots {
	return Roots{
		Stdlib:  firstNonEmpty(cfg.StdlibRoot, binaryRelative("stdlib"), cwdRelative("stdlib")),
		Extlib:  firstNonEmpty(cfg.ExtlibRoot, binaryRelative("extlib"), cwdRelative("extlib")),
		Project: projectRoot,
	}
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return ""
}

func binaryRelative(sub string) string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Join(filepath.Dir(exe), sub)
}

func cwdRelative(sub string) string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return filepath.Join(wd, sub)
}

// FilePath maps a dotted module path to the file it resolves to, per the
// root selected by its first component.
func (r Roots) FilePath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	root := r.Project

	switch path[0] {
	case StdPrefix:
		root = r.Stdlib
	case ExtPrefix:
		root = r.Extlib
	}

	segments := append([]string{root}, path...)

	return filepath.Join(segments...) + SourceExt
}
