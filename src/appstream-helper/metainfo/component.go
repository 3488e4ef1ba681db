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

import "encoding/xml"

//Component contains all information about a single AppStream metainfo
//document. This representation is produced by Load() and Synthesize(),
//combined by Merge() and rendered back into XML by Serialize().
type Component struct {
	//Type is the value of the type attribute on the <component> root element,
	//e.g. "desktop-application" or "console-application". May be empty.
	Type string
	//ID is the AppStream component identifier in reverse-domain form, e.g.
	//"org.example.App". The merged result must have a non-empty ID.
	ID string
	//Name is the human-readable component name.
	Name string
	//Summary is the one-line summary shown by software centers.
	Summary string
	//Developer identifies the upstream developer or maintainer.
	Developer Developer
	//ProjectLicense is the SPDX license expression for the packaged software.
	ProjectLicense string
	//MetadataLicense is the SPDX license expression for the metainfo document
	//itself.
	MetadataLicense string
	//Description holds the inner XML of the <description> element verbatim,
	//usually one or more <p> blocks. Treated as a single scalar value.
	Description string
	//URLs contains <url> entries, keyed by their type attribute. At most one
	//entry per type.
	URLs []Entry
	//Launchables contains <launchable> entries, keyed by their type
	//attribute. At most one entry per type.
	Launchables []Entry
	//Categories is the set of <category> values below <categories>.
	Categories []string
	//Provides contains the entries below <provides>. The entry type is the
	//tag name (e.g. "binary", "library"), the value is the tag's text.
	Provides []Entry
	//Releases contains the <release> entries below <releases>, keyed by
	//their version attribute.
	Releases []Release
	//Blocks preserves all child elements of <component> that this tool does
	//not actively manage (screenshots, content_rating, keywords, ...), in
	//their original relative order, so that re-serialization does not drop
	//upstream-authored metadata.
	Blocks []RawBlock
}

//Developer bundles the developer name with the optional developer id.
//Both <developer_name>Foo</developer_name> and the current
//<developer id="org.example"><name>Foo</name></developer> form map here.
type Developer struct {
	ID   string
	Name string
}

//Entry is one element of a collective field (url, launchable, provides),
//keyed by its sub-type.
type Entry struct {
	Type  string
	Value string
}

//Release is one <release> entry. Content preserves child elements (release
//descriptions, artifacts) verbatim.
type Release struct {
	Version string
	Date    string
	Content string
}

//RawBlock is an opaque pass-through element that the merge engine carries
//along without interpreting it. Content is the element's inner XML, verbatim.
type RawBlock struct {
	Name    string
	Attrs   []xml.Attr
	Content string
}

//URL returns the value of the url entry with the given type, if present.
func (c *Component) URL(urlType string) (string, bool) {
	return findEntry(c.URLs, urlType)
}

//Launchable returns the value of the launchable entry with the given type,
//if present.
func (c *Component) Launchable(launchableType string) (string, bool) {
	return findEntry(c.Launchables, launchableType)
}

//HasCategory checks whether the given category is part of the category set.
func (c *Component) HasCategory(category string) bool {
	for _, existing := range c.Categories {
		if existing == category {
			return true
		}
	}
	return false
}

func findEntry(entries []Entry, entryType string) (string, bool) {
	for _, entry := range entries {
		if entry.Type == entryType {
			return entry.Value, true
		}
	}
	return "", false
}

func hasEntryType(entries []Entry, entryType string) bool {
	_, ok := findEntry(entries, entryType)
	return ok
}

func hasBlock(blocks []RawBlock, name string) bool {
	for _, block := range blocks {
		if block.Name == name {
			return true
		}
	}
	return false
}
