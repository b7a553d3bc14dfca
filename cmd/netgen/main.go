// Copyright 2025 go-netsort Authors
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

// Command netgen derives the per-pass shuffle, offset, and mask constants
// of the vector sorting engines from the comparator schedules, validates
// every network against the zero-one principle, and emits the constant
// tables as a generated Go source file.
//
// Usage:
//
//	netgen -output zpasses.go
//	netgen -check            # validate only, write nothing
//
// Or via go:generate from the netsort package:
//
//	//go:generate go run ../cmd/netgen -output zpasses.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-netsort/netsort"
)

var (
	outputFile = flag.String("output", "zpasses.go", "Output file for the generated constant tables")
	checkOnly  = flag.Bool("check", false, "Validate networks and schedules without writing output")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "netgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := validate(); err != nil {
		return err
	}
	if *checkOnly {
		fmt.Fprintln(os.Stderr, "netgen: all networks and schedules sort correctly")
		return nil
	}

	src, err := emit()
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", *outputFile, err)
	}
	fmt.Fprintf(os.Stderr, "netgen: wrote %s\n", *outputFile)
	return nil
}

// validate checks every canonical network and both pass schedules with the
// zero-one principle. Wrong constants sort silently wrong at runtime, so
// nothing may be emitted from a schedule that fails here.
func validate() error {
	for n := 2; n <= 6; n++ {
		if !netsort.ForSize(n).Sorts(n) {
			return fmt.Errorf("canonical network for %d elements does not sort", n)
		}
	}
	for name, sched := range map[string]struct {
		layers []netsort.Network
		n      int
	}{
		"quad": {netsort.Passes4(), 4},
		"six":  {netsort.Passes6(), 6},
	} {
		var flat netsort.Network
		for _, layer := range sched.layers {
			flat = append(flat, layer...)
		}
		if !flat.Sorts(sched.n) {
			return fmt.Errorf("%s schedule does not sort %d elements", name, sched.n)
		}
	}
	return nil
}

func emit() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by netgen. DO NOT EDIT.\n\n")
	buf.WriteString("package netsort\n\n")
	buf.WriteString("// Pass constants for the vector engines, derived from the comparator\n")
	buf.WriteString("// schedules in network.go. Regenerate with: go generate ./netsort\n\n")

	writeTable(&buf, "quadPasses", "quadPass", "int32", netsort.Passes4(), 4)
	writeTable(&buf, "sixPasses", "sixPass", "int8", netsort.Passes6(), 16)

	formatted, err := imports.Process(*outputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

func writeTable(buf *bytes.Buffer, varName, typeName, elemType string, layers []netsort.Network, lanes int) {
	fmt.Fprintf(buf, "var %s = [%d]%s{\n", varName, len(layers), typeName)
	for _, layer := range layers {
		partner, offset, mask := netsort.DerivePass(layer, lanes)
		buf.WriteString("\t{\n")
		writeRow(buf, "partner", elemType, lanes, partner)
		writeRow(buf, "offset", elemType, lanes, offset)
		writeRow(buf, "mask", elemType, lanes, mask)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")
}

func writeRow(buf *bytes.Buffer, field, elemType string, lanes int, vals []int) {
	fmt.Fprintf(buf, "\t\t%s: [%d]%s{", field, lanes, elemType)
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%d", v)
	}
	buf.WriteString("},\n")
}
