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

//Merge folds an ordered list of component fragments (highest precedence
//first) into one component. Nil entries in the list are skipped, so callers
//can pass the result of Load() for sources that turned out to be absent.
//
//Scalar fields take the first value seen in precedence order and are never
//overwritten afterwards. Collective fields (urls, launchables, categories,
//provides, releases) are unioned across all sources, keyed by their sub-type;
//a duplicate key is resolved in favor of the source seen first. Opaque
//pass-through blocks are unioned by tag name with the same rule.
//
//Merge fails with MissingIdentifierError when no source contributes an <id>.
func Merge(sources []*Component) (*Component, error) {
	result := Component{}

	for _, source := range sources {
		if source == nil {
			continue
		}

		if result.Type == "" {
			result.Type = source.Type
		}
		mergeScalar(&result.ID, source.ID)
		mergeScalar(&result.Name, source.Name)
		mergeScalar(&result.Summary, source.Summary)
		mergeScalar(&result.ProjectLicense, source.ProjectLicense)
		mergeScalar(&result.MetadataLicense, source.MetadataLicense)
		mergeScalar(&result.Description, source.Description)
		if result.Developer.Name == "" && source.Developer.Name != "" {
			result.Developer = source.Developer
		}

		for _, url := range source.URLs {
			if !hasEntryType(result.URLs, url.Type) {
				result.URLs = append(result.URLs, url)
			}
		}
		for _, launchable := range source.Launchables {
			if !hasEntryType(result.Launchables, launchable.Type) {
				result.Launchables = append(result.Launchables, launchable)
			}
		}
		for _, category := range source.Categories {
			if !result.HasCategory(category) {
				result.Categories = append(result.Categories, category)
			}
		}
		for _, entry := range source.Provides {
			if !hasProvided(result.Provides, entry) {
				result.Provides = append(result.Provides, entry)
			}
		}
		for _, release := range source.Releases {
			if !hasReleaseVersion(result.Releases, release.Version) {
				result.Releases = append(result.Releases, release)
			}
		}

		//tags that were already present before this source were contributed
		//by a higher-precedence source and must not be extended; tags that
		//this source introduces keep all their sibling blocks
		presentBefore := make(map[string]bool)
		for _, block := range result.Blocks {
			presentBefore[block.Name] = true
		}
		for _, block := range source.Blocks {
			if !presentBefore[block.Name] {
				result.Blocks = append(result.Blocks, block)
			}
		}
	}

	if result.ID == "" {
		return nil, &MissingIdentifierError{}
	}
	return &result, nil
}

func mergeScalar(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}

//hasProvided keys provides entries by kind and value: a package can provide
//many binaries, so the kind alone is not a key.
func hasProvided(entries []Entry, entry Entry) bool {
	for _, existing := range entries {
		if existing.Type == entry.Type && existing.Value == entry.Value {
			return true
		}
	}
	return false
}

func hasReleaseVersion(releases []Release, version string) bool {
	for _, release := range releases {
		if release.Version == version {
			return true
		}
	}
	return false
}
