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

// Command vaporgen generates the exported per-shape entry points of package
// vapor from the table of (operation, element type, lane count).
//
// Usage:
//
//	vaporgen -output vapor_gen.go -pkg vapor
//	vaporgen -output sqrt_gen.go -ops sqrt -lanes 4,8
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vaporgen -output vapor_gen.go -pkg vapor
//
// Every entry point loads its array into a portable register, runs the
// select-form kernel and stores the result. The F32x8 and F64x4 rounding
// entry points call an unexported per-shape helper instead, which build
// constraints bind to either the AVX2 or the portable implementation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputFile = flag.String("output", "vapor_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "vapor", "Output package name")
	opsFlag    = flag.String("ops", "all", "Comma-separated operations ("+strings.Join(AvailableOps(), ",")+") or 'all'")
	lanesFlag  = flag.String("lanes", "2,4,8", "Comma-separated lane counts")
)

func main() {
	flag.Parse()

	ops, err := parseOps(*opsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	lanes, err := parseLanes(*lanesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	kernels := BuildKernels(ops, lanes)
	if len(kernels) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no kernels selected\n")
		os.Exit(1)
	}

	src, err := Emit(*packageOut, *outputFile, kernels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d entry points in %s\n", len(kernels), *outputFile)
}

func parseOps(s string) ([]string, error) {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableOps(), nil
	}
	for _, op := range result {
		if _, ok := opTable[op]; !ok {
			return nil, fmt.Errorf("unknown operation %q (available: %s)", op, strings.Join(AvailableOps(), ", "))
		}
	}
	return result, nil
}

func parseLanes(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid lane count %q: %w", p, err)
		}
		if n != 2 && n != 4 && n != 8 {
			return nil, fmt.Errorf("unsupported lane count %d (want 2, 4 or 8)", n)
		}
		result = append(result, n)
	}
	return result, nil
}
