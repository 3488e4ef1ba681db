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
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
)

//Serialize renders the component as an XML document. Child elements appear
//in a stable, human-diffable order; collective entries are sorted by their
//sub-type key, so that identical merge inputs always produce byte-identical
//output. The result round-trips through Load() modulo whitespace.
func Serialize(c *Component) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	if c.Type == "" {
		buf.WriteString("<component>\n")
	} else {
		fmt.Fprintf(&buf, "<component type=\"%s\">\n", escape(c.Type))
	}

	writeTextElement(&buf, "id", c.ID)
	writeTextElement(&buf, "name", c.Name)
	writeTextElement(&buf, "summary", c.Summary)

	if c.Developer.Name != "" {
		if c.Developer.ID == "" {
			buf.WriteString("  <developer>\n")
		} else {
			fmt.Fprintf(&buf, "  <developer id=\"%s\">\n", escape(c.Developer.ID))
		}
		fmt.Fprintf(&buf, "    <name>%s</name>\n", escape(c.Developer.Name))
		buf.WriteString("  </developer>\n")
	}

	writeTextElement(&buf, "project_license", c.ProjectLicense)
	writeTextElement(&buf, "metadata_license", c.MetadataLicense)

	for _, url := range sortedByType(c.URLs) {
		fmt.Fprintf(&buf, "  <url type=\"%s\">%s</url>\n", escape(url.Type), escape(url.Value))
	}
	for _, launchable := range sortedByType(c.Launchables) {
		fmt.Fprintf(&buf, "  <launchable type=\"%s\">%s</launchable>\n", escape(launchable.Type), escape(launchable.Value))
	}

	if c.Description != "" {
		fmt.Fprintf(&buf, "  <description>%s</description>\n", c.Description)
	}

	if len(c.Categories) > 0 {
		categories := append([]string(nil), c.Categories...)
		sort.Strings(categories)
		buf.WriteString("  <categories>\n")
		for _, category := range categories {
			fmt.Fprintf(&buf, "    <category>%s</category>\n", escape(category))
		}
		buf.WriteString("  </categories>\n")
	}

	//pass-through blocks keep their original relative order
	for _, block := range c.Blocks {
		writeRawBlock(&buf, block)
	}

	if len(c.Provides) > 0 {
		provides := append([]Entry(nil), c.Provides...)
		sort.Slice(provides, func(i, j int) bool {
			if provides[i].Type != provides[j].Type {
				return provides[i].Type < provides[j].Type
			}
			return provides[i].Value < provides[j].Value
		})
		buf.WriteString("  <provides>\n")
		for _, entry := range provides {
			fmt.Fprintf(&buf, "    <%s>%s</%s>\n", entry.Type, escape(entry.Value), entry.Type)
		}
		buf.WriteString("  </provides>\n")
	}

	if len(c.Releases) > 0 {
		releases := append([]Release(nil), c.Releases...)
		sort.Slice(releases, func(i, j int) bool {
			return releases[i].Version < releases[j].Version
		})
		buf.WriteString("  <releases>\n")
		for _, release := range releases {
			buf.WriteString("    <release")
			if release.Version != "" {
				fmt.Fprintf(&buf, " version=\"%s\"", escape(release.Version))
			}
			if release.Date != "" {
				fmt.Fprintf(&buf, " date=\"%s\"", escape(release.Date))
			}
			if release.Content == "" {
				buf.WriteString("/>\n")
			} else {
				fmt.Fprintf(&buf, ">%s</release>\n", release.Content)
			}
		}
		buf.WriteString("  </releases>\n")
	}

	buf.WriteString("</component>\n")
	return buf.Bytes()
}

func writeTextElement(buf *bytes.Buffer, tag, value string) {
	if value != "" {
		fmt.Fprintf(buf, "  <%s>%s</%s>\n", tag, escape(value), tag)
	}
}

func writeRawBlock(buf *bytes.Buffer, block RawBlock) {
	fmt.Fprintf(buf, "  <%s", block.Name)
	for _, attr := range block.Attrs {
		fmt.Fprintf(buf, " %s=\"%s\"", attrName(attr.Name), escape(attr.Value))
	}
	if block.Content == "" {
		buf.WriteString("/>\n")
	} else {
		fmt.Fprintf(buf, ">%s</%s>\n", block.Content, block.Name)
	}
}

func attrName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func sortedByType(entries []Entry) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Type < sorted[j].Type })
	return sorted
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) //cannot fail on a bytes.Buffer
	return buf.String()
}
