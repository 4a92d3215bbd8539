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

// Command vaporcheck verifies the vapor kernels against reference results.
//
// Usage:
//
//	vaporcheck sweep                          # sampled sweep of every kernel
//	vaporcheck sweep --exhaustive --ops sqrt32,floor32
//	vaporcheck sweep --samples 10000000 --seed 7 --max-ulp 0
//	vaporcheck info                           # compiled backend and CPU features
//
// The reference for the rounding family and sqrt is the math package; fma32
// is checked against the exactly rounded result computed with math/big.
// Exit status is 1 when any kernel differs from its reference by more than
// --max-ulp.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, ErrMismatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
