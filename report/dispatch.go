// qcreport: a tool for generating per-sample QC reports with MultiQC.
// Copyright (c) 2021-2022 seqscience.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/seqscience/qcreport/blob/master/LICENSE.txt>.

package report

import (
	"io"
	"log"
	"os/exec"
	"strings"
)

// Dispatcher runs the external report tool once per invocation unit,
// sequentially, blocking until each child process completes. The
// logger is injected so tests can run silently.
type Dispatcher struct {
	Tool    string
	Force   bool
	Suffix  string
	OutRoot string
	DryRun  bool
	Log     *log.Logger
	Stdout  io.Writer
	Stderr  io.Writer
}

// Result records the outcome of a single invocation, for
// observability only; the dispatcher does not aggregate or compare
// outcomes across units.
type Result struct {
	Unit     InvocationUnit
	OutDir   string
	ExitCode int
	Err      error
}

// CommandLine returns the argument list for one invocation unit,
// without the leading tool path.
func (dispatcher *Dispatcher) CommandLine(unit InvocationUnit, outDir string) []string {
	var args []string
	if dispatcher.Force {
		args = append(args, "--force")
	}
	args = append(args, "--outdir", outDir)
	return append(args, unit...)
}

// Run executes the external tool for every invocation unit in order.
// A unit whose child process fails to launch or exits non-zero is
// recorded and logged, and does not stop later units.
func (dispatcher *Dispatcher) Run(units []InvocationUnit) []Result {
	results := make([]Result, 0, len(units))
	for _, unit := range units {
		outDir := OutputDir(unit, dispatcher.Suffix, dispatcher.OutRoot)
		args := dispatcher.CommandLine(unit, outDir)
		dispatcher.Log.Println("Executing command:\n", dispatcher.Tool, strings.Join(args, " "))
		result := Result{Unit: unit, OutDir: outDir}
		if !dispatcher.DryRun {
			cmd := exec.Command(dispatcher.Tool, args...)
			cmd.Stdout = dispatcher.Stdout
			cmd.Stderr = dispatcher.Stderr
			if err := cmd.Run(); err != nil {
				result.Err = err
				if exitErr, ok := err.(*exec.ExitError); ok {
					result.ExitCode = exitErr.ExitCode()
				} else {
					result.ExitCode = -1
				}
				dispatcher.Log.Println("Warning: report generation for", outDir, "failed:", err)
			}
		}
		results = append(results, result)
	}
	return results
}
