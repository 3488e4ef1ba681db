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
)

//metainfoPatterns are the file name patterns for installed metainfo files,
//in priority order. The legacy *.appdata.xml name is still common in the
//wild.
var metainfoPatterns = []string{"*.metainfo.xml", "*.appdata.xml", "metainfo.xml"}

//metainfoDirs are the build-root-relative directories where upstream build
//systems conventionally install metainfo files, in priority order.
var metainfoDirs = []string{
	filepath.Join("usr", "share", "metainfo"),
	filepath.Join("usr", "share", "appdata"),
}

//FindInstalledMetainfo returns the path of the metainfo file that the
//upstream build system installed into the build root, or "" if there is
//none. The well-known metainfo directories are checked first; a recursive
//walk over the whole build root is the last resort.
func FindInstalledMetainfo(root string) string {
	if root == "" {
		return ""
	}

	directCandidate := filepath.Join(root, "metainfo.xml")
	if isRegularFile(directCandidate) {
		return directCandidate
	}

	for _, dir := range metainfoDirs {
		for _, pattern := range metainfoPatterns {
			//Glob returns sorted matches, so the choice is deterministic
			matches, err := filepath.Glob(filepath.Join(root, dir, pattern))
			if err == nil && len(matches) > 0 {
				return matches[0]
			}
		}
	}

	return findMetainfoByWalk(root)
}

func findMetainfoByWalk(root string) string {
	//collect the first match per pattern, then pick by pattern priority
	found := make(map[string]string)
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return nil
		}
		for _, pattern := range metainfoPatterns {
			if ok, _ := filepath.Match(pattern, d.Name()); ok {
				if _, exists := found[pattern]; !exists {
					found[pattern] = path
				}
			}
		}
		return nil
	})
	for _, pattern := range metainfoPatterns {
		if path, ok := found[pattern]; ok {
			return path
		}
	}
	return ""
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
