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
	"io/ioutil"
	"log"
	"os"

	"github.com/seqscience/qcreport/report"
)

// ReportHelp is the help string for this command.
const ReportHelp = "\nreport parameters:\n" +
	"qcreport report\n" +
	"[-f | --force]\n" +
	"[-o dir | --outdir dir]\n" +
	"[-s name | --suffix name]\n" +
	"[-m path | --multiqc path]\n" +
	"[--dry-run]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n" +
	"input... | directory\n"

// Report implements the qcreport report command.
func Report() error {
	var (
		force, dryRun, timed    bool
		outdir, suffix, multiqc string
		profile, logPath        string
	)

	var flags flag.FlagSet

	flags.BoolVar(&force, "f", false, "pass an overwrite flag through to the external tool")
	flags.BoolVar(&force, "force", false, "pass an overwrite flag through to the external tool")
	flags.StringVar(&outdir, "o", "", "output directory root")
	flags.StringVar(&outdir, "outdir", "", "output directory root")
	flags.StringVar(&suffix, "s", report.DefaultSuffix, "output directory name suffix")
	flags.StringVar(&suffix, "suffix", report.DefaultSuffix, "output directory name suffix")
	flags.StringVar(&multiqc, "m", "", "explicit path to the external tool executable")
	flags.StringVar(&multiqc, "multiqc", "", "explicit path to the external tool executable")
	flags.BoolVar(&dryRun, "dry-run", false, "log the command lines without executing them")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, ReportHelp)
		os.Exit(1)
	}

	flags.SetOutput(ioutil.Discard)
	if err := flags.Parse(os.Args[2:]); err != nil {
		x := 0
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			x = 1
		}
		fmt.Fprint(os.Stderr, ReportHelp)
		os.Exit(x)
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, ReportHelp)
		os.Exit(1)
	}

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	for _, input := range inputs {
		if !checkExist("", input) {
			sanityChecksFailed = true
		}
	}

	if suffix == "" {
		sanityChecksFailed = true
		log.Println("Error: Missing output directory name suffix.")
	}

	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ReportHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " report")
	if force {
		fmt.Fprint(&command, " --force")
	}
	if outdir != "" {
		fmt.Fprint(&command, " --outdir ", outdir)
	}
	fmt.Fprint(&command, " --suffix ", suffix)
	if multiqc != "" {
		fmt.Fprint(&command, " --multiqc ", multiqc)
	}
	if dryRun {
		fmt.Fprint(&command, " --dry-run")
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if profile != "" {
		fmt.Fprint(&command, " --profile ", profile)
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}
	for _, input := range inputs {
		fmt.Fprint(&command, " ", input)
	}

	log.Println("Executing command:\n", command.String())

	return runReport(inputs, force, outdir, suffix, multiqc, dryRun, timed, profile)
}

// runReport resolves the external tool, expands the inputs into
// invocation units, and dispatches the tool once per unit. Shared
// between the report command and the deprecated bare surface.
func runReport(inputs []string, force bool, outdir, suffix, multiqc string, dryRun, timed bool, profile string) error {
	tool, err := report.ResolveTool(multiqc)
	if err != nil {
		return err
	}

	units, err := report.Expand(inputs)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		log.Println("No QC files found; nothing to do.")
		return nil
	}

	dispatcher := &report.Dispatcher{
		Tool:    tool,
		Force:   force,
		Suffix:  suffix,
		OutRoot: outdir,
		DryRun:  dryRun,
		Log:     log.New(log.Writer(), log.Prefix(), log.Flags()),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	var results []report.Result
	timedRun(timed, profile, "Generating reports.", 1, func() {
		results = dispatcher.Run(units)
	})

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		log.Printf("Warning: %v of %v report invocations failed.\n", failed, len(results))
	}
	return nil
}
