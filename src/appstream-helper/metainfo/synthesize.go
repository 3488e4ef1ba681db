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
	"strings"
)

//componentTypes is the set of component types recognized by the AppStream
//specification. Anything else in APPSTREAM_COMPONENT_TYPE is a packaging
//mistake and must not end up in the merged document.
var componentTypes = map[string]bool{
	"generic":             true,
	"desktop-application": true,
	"console-application": true,
	"web-application":     true,
	"service":             true,
	"addon":               true,
	"font":                true,
	"codec":               true,
	"icon-theme":          true,
	"input-method":        true,
	"runtime":             true,
	"firmware":            true,
	"driver":              true,
	"localization":        true,
	"repository":          true,
	"operating-system":    true,
}

//stockIconForType maps non-desktop component types to a stock icon, so that
//software centers have something to show for components that do not ship
//their own icon.
var stockIconForType = map[string]string{
	"runtime":             "application-x-executable",
	"console-application": "terminal",
	"addon":               "package",
	"icon-theme":          "preferences-desktop-theme",
	"codec":               "multimedia-codec",
	"driver":              "computer",
	"repository":          "folder",
}

//Synthesize constructs the component fragment that represents the
//macro-derived metadata. Options that were not supplied produce absent
//fields; the Merger treats absence as "do not overwrite". The fragment may
//lack an id when the appid option was not given; the non-empty-id invariant
//is enforced on the final merged output only.
//
//Synthesize fails with UnsupportedOptionError when the component type is not
//in the recognized set.
func Synthesize(v Values) (*Component, error) {
	if v.ComponentType != "" && !componentTypes[v.ComponentType] {
		return nil, &UnsupportedOptionError{Option: "component_type", Value: v.ComponentType}
	}

	c := Component{
		Type: v.ComponentType,
		//metainfo that this tool generates is always freely redistributable
		MetadataLicense: "CC0-1.0",
		ProjectLicense:  v.License,
		Summary:         v.Summary,
	}

	c.ID = synthesizeID(v)

	//a pretty name from the macros wins; the plain package name is good
	//enough when the maintainer did not bother
	if v.NamePretty != "" {
		c.Name = v.NamePretty
	} else {
		c.Name = v.PackageName
	}

	if v.URL != "" {
		c.URLs = append(c.URLs, Entry{Type: "homepage", Value: v.URL})
		if looksLikeForgeURL(v.URL) {
			c.URLs = append(c.URLs, Entry{Type: "vcs-browser", Value: v.URL})
		}
	}

	switch {
	case v.Description != "":
		c.Description = "<p>" + escape(v.Description) + "</p>"
	case v.Summary != "":
		//fallback: reuse the summary so that the merged document always has
		//a description when it has a summary
		c.Description = "<p>" + escape(v.Summary) + "</p>"
	}

	if v.Developer != "" {
		c.Developer.Name = v.Developer
		if v.Org != "" {
			c.Developer.ID = v.Org
		} else {
			c.Developer.ID = c.ID
		}
	}

	if icon, ok := stockIconForType[defaultedType(v.ComponentType)]; ok {
		c.Blocks = append(c.Blocks, RawBlock{
			Name:    "icon",
			Attrs:   []xml.Attr{{Name: xml.Name{Local: "type"}, Value: "stock"}},
			Content: icon,
		})
	}

	return &c, nil
}

//synthesizeID derives the component id from the appid option. Nightly and
//git snapshot packages get a matching id suffix so that they can be
//installed alongside the release package.
func synthesizeID(v Values) string {
	if v.AppID == "" {
		return ""
	}
	switch {
	case strings.HasSuffix(v.PackageName, "-nightly"):
		return v.AppID + "-nightly"
	case strings.HasSuffix(v.PackageName, "-git"):
		return v.AppID + "-git"
	default:
		return v.AppID
	}
}

func defaultedType(componentType string) string {
	if componentType == "" {
		return "console-application"
	}
	return componentType
}

func looksLikeForgeURL(url string) bool {
	return strings.HasSuffix(url, ".git") ||
		strings.Contains(url, "github.com") ||
		strings.Contains(url, "gitlab.com")
}
