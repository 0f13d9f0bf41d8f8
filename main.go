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

// qcreport generates one MultiQC report per sample from the metric
// and histogram files of a sequencing QC pipeline, and merges
// per-sample metric files into combined summaries.
//
// Please see https://github.com/seqscience/qcreport for a
// documentation of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seqscience/qcreport/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: report, merge-metrics, merge-hists")
	fmt.Fprint(os.Stderr, "\n", cmd.ReportHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.MergeMetricsHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.MergeHistsHelp)
}

func printExtendedHelp() {
	printHelp()
	fmt.Fprint(os.Stderr, "\n", cmd.DeprecatedReportHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "report":
		err = cmd.Report()
	case "merge-metrics":
		err = cmd.MergeMetrics()
	case "merge-hists":
		err = cmd.MergeHists()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	case "help-extended", "-help-extended", "--help-extended", "-he", "--he":
		printExtendedHelp()
	default:
		err = cmd.DeprecatedReport()
	}
	if err != nil {
		log.Fatal(err)
	}
}
