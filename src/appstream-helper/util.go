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
)

//runningInGitHubActions reports whether the build runs inside a GitHub
//Actions workflow, in which case warnings and errors are emitted as workflow
//commands so they show up as annotations.
func runningInGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

//ShowWarning prints a warning message on stderr.
func ShowWarning(msg string) {
	if runningInGitHubActions() {
		fmt.Fprintf(os.Stderr, "::warning::%s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "\x1b[33m\x1b[1m>>\x1b[0m %s\n", msg)
	}
}

func showError(err error) {
	if runningInGitHubActions() {
		fmt.Fprintf(os.Stderr, "::error::%s\n", err.Error())
	} else {
		fmt.Fprintf(os.Stderr, "\x1b[31m\x1b[1m!!\x1b[0m %s\n", err.Error())
	}
}
