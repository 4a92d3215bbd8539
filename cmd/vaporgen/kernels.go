// Copyright 2025 go-vapor Authors
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

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OpInfo describes one kernel family.
type OpInfo struct {
	Doc   string   // completes "<Func> ..." in the generated doc comment
	Elems []string // element types the kernel supports
	Arity int      // number of register operands
	Base  string   // select-form kernel; "%s" is replaced by the element width
	// Accelerated lists the shapes served by a per-shape helper that build
	// constraints bind to a backend.
	Accelerated []string
}

var roundingShapes = []string{"F32x8", "F64x4"}

var opTable = map[string]OpInfo{
	"trunc": {Doc: "rounds every lane toward zero", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseTrunc", Accelerated: roundingShapes},
	"fract": {Doc: "returns x - trunc(x) for every lane", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseFract", Accelerated: roundingShapes},
	"floor": {Doc: "rounds every lane toward negative infinity", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseFloor", Accelerated: roundingShapes},
	"ceil":  {Doc: "rounds every lane toward positive infinity", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseCeil", Accelerated: roundingShapes},
	"round": {Doc: "rounds every lane to the nearest integer, ties to even", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseRound", Accelerated: roundingShapes},
	"sqrt":  {Doc: "returns the correctly rounded square root of every lane", Elems: []string{"float32", "float64"}, Arity: 1, Base: "BaseSqrt%s"},
	"fma":   {Doc: "computes x*y + z with a single rounding in every lane", Elems: []string{"float32"}, Arity: 3, Base: "BaseFMA%s"},
}

// opOrder is the order in which families appear in the generated file.
var opOrder = []string{"trunc", "fract", "floor", "ceil", "round", "sqrt", "fma"}

// acronyms are operation names spelled in upper case in Go identifiers.
var acronyms = map[string]string{"fma": "FMA"}

// AvailableOps returns all operation names in generation order.
func AvailableOps() []string {
	return slices.Clone(opOrder)
}

// Kernel is one exported entry point.
type Kernel struct {
	Op    string
	Elem  string
	Lanes int
	Info  OpInfo
}

// Width returns the element width in bits as a string ("32" or "64").
func (k Kernel) Width() string {
	return strings.TrimPrefix(k.Elem, "float")
}

// TypeName returns the register type, e.g. "F32x4".
func (k Kernel) TypeName() string {
	return fmt.Sprintf("F%sx%d", k.Width(), k.Lanes)
}

// FuncName returns the exported function name, e.g. "TruncF32x4".
func (k Kernel) FuncName() string {
	return opIdent(k.Op) + k.TypeName()
}

// Helper returns the unexported per-shape helper, e.g. "truncF32x8".
func (k Kernel) Helper() string {
	return k.Op + k.TypeName()
}

// Accelerated reports whether the entry point delegates to a per-shape helper.
func (k Kernel) Accelerated() bool {
	return slices.Contains(k.Info.Accelerated, k.TypeName())
}

// BaseFunc returns the select-form kernel the entry point calls.
func (k Kernel) BaseFunc() string {
	if strings.Contains(k.Info.Base, "%s") {
		return fmt.Sprintf(k.Info.Base, k.Width())
	}
	return k.Info.Base
}

// Params returns the parameter list, e.g. "x, y, z F32x4".
func (k Kernel) Params() string {
	return strings.Join(k.operands(), ", ") + " " + k.TypeName()
}

// LoadArgs returns the register arguments, e.g. "Load(x[:]), Load(y[:])".
func (k Kernel) LoadArgs() string {
	return strings.Join(lo.Map(k.operands(), func(name string, _ int) string {
		return "Load(" + name + "[:])"
	}), ", ")
}

// CallArgs returns the plain argument list, e.g. "x, y, z".
func (k Kernel) CallArgs() string {
	return strings.Join(k.operands(), ", ")
}

func (k Kernel) operands() []string {
	return []string{"x", "y", "z"}[:k.Info.Arity]
}

func opIdent(op string) string {
	if a, ok := acronyms[op]; ok {
		return a
	}
	return cases.Title(language.English).String(op)
}

// BuildKernels expands the operation table over element types and lane
// counts. Operations keep table order; duplicates are dropped.
func BuildKernels(ops []string, lanes []int) []Kernel {
	ops = lo.Uniq(ops)
	lanes = lo.Uniq(lanes)
	slices.Sort(lanes)
	ordered := lo.Filter(opOrder, func(op string, _ int) bool {
		return lo.Contains(ops, op)
	})
	return lo.FlatMap(ordered, func(op string, _ int) []Kernel {
		info := opTable[op]
		return lo.FlatMap(info.Elems, func(elem string, _ int) []Kernel {
			return lo.Map(lanes, func(n int, _ int) Kernel {
				return Kernel{Op: op, Elem: elem, Lanes: n, Info: info}
			})
		})
	})
}
