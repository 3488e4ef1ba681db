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
	"encoding/xml"
	"os"
	"strings"
)

//xmlComponent only needs exported fields for the XML decoder. The fields for
//elements that the merge engine actively manages are listed explicitly; the
//",any" field catches everything else so that no upstream-authored metadata
//is silently dropped on re-serialization.
type xmlComponent struct {
	XMLName         xml.Name       `xml:"component"`
	Type            string         `xml:"type,attr"`
	ID              string         `xml:"id"`
	Name            string         `xml:"name"`
	Summary         string         `xml:"summary"`
	DeveloperName   string         `xml:"developer_name"`
	Developer       *xmlDeveloper  `xml:"developer"`
	ProjectLicense  string         `xml:"project_license"`
	MetadataLicense string         `xml:"metadata_license"`
	Description     *xmlInner      `xml:"description"`
	URLs            []xmlTyped     `xml:"url"`
	Launchables     []xmlTyped     `xml:"launchable"`
	Categories      *xmlCategories `xml:"categories"`
	Provides        *xmlProvides   `xml:"provides"`
	Releases        *xmlReleases   `xml:"releases"`
	Blocks          []xmlRawBlock  `xml:",any"`
}

type xmlDeveloper struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name"`
	//chardata covers the legacy form <developer>Some Name</developer>
	Text string `xml:",chardata"`
}

type xmlTyped struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type xmlInner struct {
	Content string `xml:",innerxml"`
}

type xmlCategories struct {
	Category []string `xml:"category"`
}

type xmlProvides struct {
	Entries []xmlProvideEntry `xml:",any"`
}

type xmlProvideEntry struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlReleases struct {
	Release []xmlRelease `xml:"release"`
}

type xmlRelease struct {
	Version string `xml:"version,attr"`
	Date    string `xml:"date,attr"`
	Content string `xml:",innerxml"`
}

type xmlRawBlock struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

//Load reads a metainfo document from the given path. An empty path or a
//missing file is a normal condition (the "no override file given" and
//"upstream metainfo not found" cases) and yields a nil Component without an
//error. A file that exists but is not well-formed XML, or whose root element
//is not <component>, yields a MalformedInputError.
func Load(path string) (*Component, error) {
	if path == "" {
		return nil, nil
	}
	blob, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(blob, path)
}

//Parse decodes an in-memory metainfo document. The path argument is used for
//error messages only.
func Parse(blob []byte, path string) (*Component, error) {
	var doc xmlComponent
	err := xml.Unmarshal(blob, &doc)
	if err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}
	return doc.toComponent(), nil
}

func (doc *xmlComponent) toComponent() *Component {
	c := Component{
		Type:            strings.TrimSpace(doc.Type),
		ID:              strings.TrimSpace(doc.ID),
		Name:            strings.TrimSpace(doc.Name),
		Summary:         strings.TrimSpace(doc.Summary),
		ProjectLicense:  strings.TrimSpace(doc.ProjectLicense),
		MetadataLicense: strings.TrimSpace(doc.MetadataLicense),
	}

	//the legacy <developer_name> element and the current <developer> form
	//fill the same slot; the current form wins when both are present
	if doc.Developer != nil {
		c.Developer.ID = strings.TrimSpace(doc.Developer.ID)
		c.Developer.Name = strings.TrimSpace(doc.Developer.Name)
		if c.Developer.Name == "" {
			c.Developer.Name = strings.TrimSpace(doc.Developer.Text)
		}
	}
	if c.Developer.Name == "" {
		c.Developer.Name = strings.TrimSpace(doc.DeveloperName)
	}

	if doc.Description != nil {
		c.Description = strings.TrimSpace(doc.Description.Content)
	}

	for _, u := range doc.URLs {
		c.URLs = append(c.URLs, Entry{Type: strings.TrimSpace(u.Type), Value: strings.TrimSpace(u.Value)})
	}
	for _, l := range doc.Launchables {
		c.Launchables = append(c.Launchables, Entry{Type: strings.TrimSpace(l.Type), Value: strings.TrimSpace(l.Value)})
	}
	if doc.Categories != nil {
		for _, category := range doc.Categories.Category {
			c.Categories = append(c.Categories, strings.TrimSpace(category))
		}
	}
	if doc.Provides != nil {
		for _, entry := range doc.Provides.Entries {
			c.Provides = append(c.Provides, Entry{Type: entry.XMLName.Local, Value: strings.TrimSpace(entry.Value)})
		}
	}
	if doc.Releases != nil {
		for _, release := range doc.Releases.Release {
			c.Releases = append(c.Releases, Release{
				Version: strings.TrimSpace(release.Version),
				Date:    strings.TrimSpace(release.Date),
				Content: strings.TrimSpace(release.Content),
			})
		}
	}
	for _, block := range doc.Blocks {
		c.Blocks = append(c.Blocks, RawBlock{
			Name:    block.XMLName.Local,
			Attrs:   block.Attrs,
			Content: strings.TrimSpace(block.Content),
		})
	}

	return &c
}
