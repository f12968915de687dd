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
package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trident-lang/trident/pkg/target"
)

func TestDefaultTritonShape(t *testing.T) {
	cfg := target.DefaultTriton()

	assert.Equal(t, target.StackArchitecture, cfg.Architecture)
	assert.Equal(t, 16, cfg.StackDepth)
	assert.Equal(t, 5, cfg.DigestWidth)
	assert.True(t, cfg.HasCostTable(target.TableHashRows))
	assert.False(t, cfg.HasCostTable("nonsense"))

	addCost := cfg.CostOf("add")
	assert.Equal(t, uint64(1), addCost[target.TableClockCycles])

	hashCost := cfg.CostOf("hash")
	assert.Equal(t, uint64(6), hashCost[target.TableHashRows])
}

func TestDefaultStructuralIsRegisterArch(t *testing.T) {
	cfg := target.DefaultStructural()
	assert.Equal(t, target.RegisterArchitecture, cfg.Architecture)
	assert.Equal(t, []string{target.TableInstructions}, cfg.CostTableNames)
}

func TestCostRecordAddAndDominant(t *testing.T) {
	a := target.CostRecord{target.TableClockCycles: 3, target.TableHashRows: 1}
	b := target.CostRecord{target.TableClockCycles: 2, target.TableU32Rows: 5}

	sum := a.Add(b)
	assert.Equal(t, uint64(5), sum[target.TableClockCycles])
	assert.Equal(t, uint64(1), sum[target.TableHashRows])
	assert.Equal(t, uint64(5), sum[target.TableU32Rows])

	name, rows := sum.Dominant()
	assert.Equal(t, target.TableClockCycles, name)
	assert.Equal(t, uint64(5), rows)
}

func TestCostRecordScale(t *testing.T) {
	a := target.CostRecord{target.TableClockCycles: 2}
	scaled := a.Scale(4)
	assert.Equal(t, uint64(8), scaled[target.TableClockCycles])
}

func TestFieldArithmetic(t *testing.T) {
	a := target.FieldFromUint64(3)
	b := target.FieldFromUint64(4)

	sum := a.Add(b)
	assert.Equal(t, target.FieldFromUint64(7), sum)

	prod := a.Mul(b)
	assert.Equal(t, target.FieldFromUint64(12), prod)

	neg := a.Neg()
	assert.True(t, a.Add(neg).IsZero())

	v, ok := target.FieldFromDecimal("42")
	require.True(t, ok)
	assert.Equal(t, target.FieldFromUint64(42), v)

	_, ok = target.FieldFromDecimal("not-a-number")
	assert.False(t, ok)
}

func TestToUint32RoundTrips(t *testing.T) {
	e := target.FieldFromUint64(123456)
	assert.Equal(t, uint32(123456), e.ToUint32())
}
