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

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/seqscience/qcreport/report"
)

type cmdLine []string

func (cmd *cmdLine) pop() (string, bool) {
	if line := (*[]string)(cmd); len(*line) > 0 {
		entry := (*line)[0]
		*cmd = (*line)[1:]
		return entry, true
	} else {
		return "", false
	}
}

// DeprecatedReportHelp is the help string for the bare command-line surface.
const DeprecatedReportHelp = "Report parameters: (deprecated, please use the report command instead)\n" +
	"qcreport input... | directory\n" +
	"[-f | --force]\n" +
	"[-o dir | --outdir dir]\n" +
	"[-s name | --suffix name]\n" +
	"[-m path | --multiqc path]\n"

/*
DeprecatedReport parses the command line of qcreport in the style of
previous qcreport versions (1.0.x), which had no subcommands, for
backwards compatibility. This surface is deprecated and will be
removed at a later stage.
*/
func DeprecatedReport() error {
	setLogOutput("")
	log.Println("Warning: Calling qcreport without a command to invoke the report functionality is deprecated. Please use the report command instead.")
	cmdLine := cmdLine(os.Args[1:])
	force := false
	suffix := report.DefaultSuffix
	var outdir, multiqc string
	var inputs []string
	for entry, found := cmdLine.pop(); found; entry, found = cmdLine.pop() {
		switch entry {
		case "-f", "--force":
			force = true
		case "-o", "--outdir":
			value, found := cmdLine.pop()
			if !found {
				log.Println("Error: Missing value for", entry)
				fmt.Fprint(os.Stderr, DeprecatedReportHelp)
				os.Exit(1)
			}
			outdir = value
		case "-s", "--suffix":
			value, found := cmdLine.pop()
			if !found {
				log.Println("Error: Missing value for", entry)
				fmt.Fprint(os.Stderr, DeprecatedReportHelp)
				os.Exit(1)
			}
			suffix = value
		case "-m", "--multiqc":
			value, found := cmdLine.pop()
			if !found {
				log.Println("Error: Missing value for", entry)
				fmt.Fprint(os.Stderr, DeprecatedReportHelp)
				os.Exit(1)
			}
			multiqc = value
		default:
			if strings.HasPrefix(entry, "-") {
				log.Println("Error: Unknown command line parameter", entry)
				fmt.Fprint(os.Stderr, DeprecatedReportHelp)
				os.Exit(1)
			}
			inputs = append(inputs, entry)
		}
	}
	if len(inputs) == 0 {
		log.Println("Error: No input files or directory given.")
		fmt.Fprint(os.Stderr, DeprecatedReportHelp)
		os.Exit(1)
	}
	for _, input := range inputs {
		if !checkExist("", input) {
			fmt.Fprint(os.Stderr, DeprecatedReportHelp)
			os.Exit(1)
		}
	}
	return runReport(inputs, force, outdir, suffix, multiqc, false, false, "")
}
