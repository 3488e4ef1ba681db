/*******************************************************************************
*
* Copyright 2025 Terra Contributors <contact@fyralabs.com>
*
* This file is part of terra-appstream-helper.
*
* terra-appstream-helper is free software: you can redistribute it and/or
* modify it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or (at your
* option) any later version.
*
* terra-appstream-helper is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General
* Public License for more details.
*
* You should have received a copy of the GNU General Public License along
* with terra-appstream-helper. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	flag "github.com/ogier/pflag"

	"github.com/terrapkg/appstream-helper/src/appstream-helper/metainfo"
)

type options struct {
	overridePath string
	outputPath   string
	valuesPath   string
	envFilePath  string
	buildRoot    string
	toStdout     bool
	noScan       bool
}

func main() {
	opts, earlyExit := parseArgs()
	if earlyExit {
		return
	}

	//an env file is mostly useful for local runs; during an RPM build the
	//macro layer exports the APPSTREAM_* variables directly
	if opts.envFilePath != "" {
		err := godotenv.Load(opts.envFilePath)
		if err != nil {
			showError(err)
			os.Exit(1)
		}
	}

	values := metainfo.ValuesFromEnvironment()
	if opts.valuesPath != "" {
		var err error
		values, err = metainfo.ParseValuesFile(opts.valuesPath, values)
		if err != nil {
			showError(err)
			os.Exit(1)
		}
	}

	synthesized, err := metainfo.Synthesize(values)
	if err != nil {
		showError(err)
		os.Exit(1)
	}

	if opts.overridePath != "" {
		if _, err := os.Stat(opts.overridePath); os.IsNotExist(err) {
			ShowWarning(fmt.Sprintf("override file %s does not exist, continuing without it", opts.overridePath))
		}
	}
	override, err := metainfo.Load(opts.overridePath)
	if err != nil {
		showError(err)
		os.Exit(1)
	}

	upstream, err := metainfo.Load(metainfo.FindInstalledMetainfo(opts.buildRoot))
	if err != nil {
		showError(err)
		os.Exit(1)
	}

	var scanned *metainfo.Component
	if !opts.noScan {
		scanned, err = metainfo.ScanBuildRoot(opts.buildRoot, values.PackageVersion)
		if err != nil {
			showError(err)
			os.Exit(1)
		}
	}

	//precedence: override file > macro-synthesized > upstream-installed >
	//build root scan results
	merged, err := metainfo.Merge([]*metainfo.Component{override, synthesized, upstream, scanned})
	if err != nil {
		showError(err)
		os.Exit(2)
	}

	err = writeOutput(metainfo.Serialize(merged), opts)
	if err != nil {
		showError(err)
		os.Exit(2)
	}
}

//writeOutput writes the serialized document in one go, so that a failed run
//never leaves a partial metainfo file in the build root.
func writeOutput(blob []byte, opts options) error {
	if opts.toStdout || opts.outputPath == "" {
		_, err := os.Stdout.Write(blob)
		return err
	}
	err := os.MkdirAll(filepath.Dir(opts.outputPath), 0777)
	if err != nil {
		return err
	}
	return os.WriteFile(opts.outputPath, blob, 0666)
}

func parseArgs() (result options, exit bool) {
	var opts options
	showVersion := false

	flag.StringVar(&opts.overridePath, "override", "", "path to a human-provided metainfo XML override")
	flag.StringVarP(&opts.outputPath, "output", "o", "", "path to write the merged metainfo XML (default: stdout)")
	flag.StringVar(&opts.valuesPath, "values", "", "path to a TOML file with macro values (wins over environment variables)")
	flag.StringVar(&opts.envFilePath, "env-file", "", "path to a dotenv file to load before reading the environment")
	flag.StringVar(&opts.buildRoot, "buildroot", os.Getenv("RPM_BUILD_ROOT"), "build root to scan (default: $RPM_BUILD_ROOT)")
	flag.BoolVar(&opts.toStdout, "stdout", false, "print the merged metainfo on stdout even when --output is given")
	flag.BoolVar(&opts.noScan, "no-scan", false, "skip scanning the build root for installed files")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(VersionString())
		return opts, true
	}
	if flag.NArg() > 0 {
		showError(fmt.Errorf("unrecognized argument: '%s'", flag.Arg(0)))
		flag.PrintDefaults()
		os.Exit(1)
	}

	return opts, false
}
