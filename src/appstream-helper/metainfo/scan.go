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

package metainfo

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//ScanBuildRoot walks the build root and collects metadata that can be
//derived from the installed files: shared libraries and executables become
//<provides> entries, desktop entries and systemd units become <launchable>
//entries, and the package version becomes a <release> entry. The returned
//fragment is meant to be appended to the merge list with the lowest
//precedence, so explicitly authored metadata always wins over scan results.
//
//A missing or empty build root yields a nil fragment without an error.
func ScanBuildRoot(root string, packageVersion string) (*Component, error) {
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	c := Component{}
	if packageVersion != "" {
		c.Releases = append(c.Releases, Release{Version: packageVersion})
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()

		switch {
		case strings.HasSuffix(name, ".so") || strings.Contains(name, ".so."):
			addProvided(&c, "library", name)
		case strings.HasSuffix(name, ".desktop") && strings.Contains(path, "usr/share/applications"):
			addLaunchable(&c, "desktop-id", name)
		case strings.HasSuffix(name, ".service") && strings.Contains(path, "usr/lib/systemd/system"):
			addLaunchable(&c, "service", name)
		default:
			info, err := d.Info()
			if err != nil {
				return err
			}
			if info.Mode()&0111 != 0 {
				addProvided(&c, "binary", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func addProvided(c *Component, kind, value string) {
	entry := Entry{Type: kind, Value: value}
	if !hasProvided(c.Provides, entry) {
		c.Provides = append(c.Provides, entry)
	}
}

//addLaunchable keeps only the first hit per launchable type; WalkDir visits
//files in lexical order, so the result is deterministic.
func addLaunchable(c *Component, launchableType, value string) {
	if !hasEntryType(c.Launchables, launchableType) {
		c.Launchables = append(c.Launchables, Entry{Type: launchableType, Value: value})
	}
}
