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
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/seqscience/qcreport/internal"
	"github.com/seqscience/qcreport/qc"
)

// MergeHistsHelp is the help string for this command.
const MergeHistsHelp = "\nmerge-hists parameters:\n" +
	"qcreport merge-hists hist-output-file /path/to/hists\n" +
	"[--nr-of-threads nr]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

// MergeHists implements the qcreport merge-hists command.
func MergeHists() error {
	var (
		nrOfThreads      int
		timed            bool
		profile, logPath string
	)

	var flags flag.FlagSet

	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, MergeHistsHelp)

	output := getFilename(os.Args[2], MergeHistsHelp)
	histPath := getFilename(os.Args[3], MergeHistsHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", histPath) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}
	if nrOfThreads < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, MergeHistsHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " merge-hists ", output, " ", histPath)
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	// executing command

	commandString := command.String()

	log.Println("Executing command:\n", commandString)

	var hist *qc.LengthHist
	var err error
	timedRun(timed, profile, "Loading and combining histograms.", 1, func() {
		hist, err = qc.LoadAndCombineHists(internal.FilepathAbs(histPath))
	})
	if err != nil {
		return err
	}
	timedRun(timed, profile, "Printing combined histogram.", 2, func() {
		err = qc.PrintLengthHist(output, commandString, hist)
	})
	return err
}
