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
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

var fileTemplate = template.Must(template.New("vapor_gen").Parse(`// Code generated by vaporgen. DO NOT EDIT.

package {{.Package}}
{{range .Kernels}}
// {{.FuncName}} {{.Info.Doc}}.
func {{.FuncName}}({{.Params}}) {{.TypeName}} {
{{- if .Accelerated}}
	return {{.Helper}}({{.CallArgs}})
{{- else}}
	var out {{.TypeName}}
	Store({{.BaseFunc}}({{.LoadArgs}}), out[:])
	return out
{{- end}}
}
{{end}}`))

// Emit renders the entry points for kernels as a formatted Go source file.
// filename is only used to resolve imports and in error messages.
func Emit(pkg, filename string, kernels []Kernel) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Kernels []Kernel
	}{pkg, kernels})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", filename, err)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}
