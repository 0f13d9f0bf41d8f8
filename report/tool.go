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
	"fmt"
	"os"
	"os/exec"
)

// DefaultToolName is the executable searched for on PATH when no
// explicit tool path is given.
const DefaultToolName = "multiqc"

// ToolNotFoundError is returned when no explicit tool path is given
// and no matching executable exists on PATH.
type ToolNotFoundError struct {
	Name string
}

func (err *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%v not found in the executable search path", err.Name)
}

// InvalidToolError is returned when a tool candidate exists but is
// not a regular file with execute permission.
type InvalidToolError struct {
	Path   string
	Reason string
}

func (err *InvalidToolError) Error() string {
	return fmt.Sprintf("invalid tool %v: %v", err.Path, err.Reason)
}

// ResolveTool validates the explicit tool path, or searches PATH for
// the default tool name when the explicit path is empty. The returned
// path refers to a regular file with execute permission. Resolution
// happens once per run, before any invocation.
func ResolveTool(explicit string) (string, error) {
	tool := explicit
	if tool == "" {
		found, err := exec.LookPath(DefaultToolName)
		if err != nil {
			return "", &ToolNotFoundError{Name: DefaultToolName}
		}
		tool = found
	}
	info, err := os.Stat(tool)
	if err != nil {
		return "", &InvalidToolError{Path: tool, Reason: err.Error()}
	}
	if !info.Mode().IsRegular() {
		return "", &InvalidToolError{Path: tool, Reason: "not a regular file"}
	}
	if info.Mode().Perm()&0111 == 0 {
		return "", &InvalidToolError{Path: tool, Reason: "no execute permission"}
	}
	return tool, nil
}
