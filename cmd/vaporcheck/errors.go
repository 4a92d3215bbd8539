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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMismatch is returned when a kernel exceeds the allowed ULP distance.
	ErrMismatch = errors.New("kernel mismatch")

	// ErrInvalidFlag is returned for flag values that cannot be used.
	ErrInvalidFlag = errors.New("invalid flag")
)

// MismatchError lists the kernels that failed a sweep.
//
// It matches ErrMismatch via errors.Is.
type MismatchError struct {
	Kernels []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d kernel(s) exceed their ulp bound: %s", len(e.Kernels), strings.Join(e.Kernels, ", "))
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

func invalidFlag(name, format string, args ...any) error {
	return fmt.Errorf("%w --%s: %s", ErrInvalidFlag, name, fmt.Sprintf(format, args...))
}
