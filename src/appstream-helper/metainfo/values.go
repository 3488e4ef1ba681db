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
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//Values holds the recognized macro options that the RPM macro layer supplies,
//either through APPSTREAM_* environment variables or through a TOML values
//file. Options that were not supplied stay empty; the Synthesizer skips
//empty options instead of inventing placeholder values.
type Values struct {
	//AppID is the AppStream component identifier. This is the only option
	//that the final merge cannot do without, unless an input file supplies
	//the identifier instead.
	AppID string
	//NamePretty is the human-friendly application name.
	NamePretty string
	//Summary is the one-line summary.
	Summary string
	//Description is a plain-text long description. It is wrapped in a <p>
	//block during synthesis.
	Description string
	//URL is the project homepage.
	URL string
	//License is the SPDX license expression for the packaged software.
	License string
	//Developer is the name of the developer or maintainer.
	Developer string
	//Org is the developer organization, used as the id attribute on the
	//<developer> element.
	Org string
	//ComponentType is the AppStream component type for the type attribute on
	//the root element. Validated against the recognized type set.
	ComponentType string
	//PackageName and PackageVersion come from RPM itself rather than from
	//our macros. The name provides the -nightly/-git identifier suffix and
	//the fallback component name; the version seeds the release list.
	PackageName    string
	PackageVersion string
}

//ValuesFromEnvironment reads the recognized options from the environment
//variables that the RPM macro layer exports.
func ValuesFromEnvironment() Values {
	return Values{
		AppID:          os.Getenv("APPSTREAM_APPID"),
		NamePretty:     os.Getenv("APPSTREAM_NAME_PRETTY"),
		Summary:        os.Getenv("APPSTREAM_SUMMARY"),
		Description:    os.Getenv("APPSTREAM_DESCRIPTION"),
		URL:            os.Getenv("APPSTREAM_URL"),
		License:        os.Getenv("APPSTREAM_LICENSE"),
		Developer:      os.Getenv("APPSTREAM_DEVELOPER_NAME"),
		Org:            os.Getenv("APPSTREAM_DEVELOPER_ORG_NAME"),
		ComponentType:  os.Getenv("APPSTREAM_COMPONENT_TYPE"),
		PackageName:    os.Getenv("RPM_PACKAGE_NAME"),
		PackageVersion: os.Getenv("RPM_PACKAGE_VERSION"),
	}
}

//valuesFile only needs a nice exported name for the TOML parser to produce
//more meaningful error messages on malformed input data.
type valuesFile struct {
	Metainfo MetainfoSection
}

//MetainfoSection only needs a nice exported name for the TOML parser to
//produce more meaningful error messages on malformed input data.
type MetainfoSection struct {
	AppID         string `toml:"appid"`
	Name          string `toml:"name"`
	Summary       string
	Description   string
	URL           string `toml:"url"`
	License       string
	Developer     string
	Org           string
	ComponentType string `toml:"component_type"`
}

//ParseValuesFile reads macro options from a TOML values file and overlays
//them onto the given base values. File values win over base (environment)
//values for options that the file supplies.
func ParseValuesFile(path string, base Values) (Values, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var parsed valuesFile
	_, err = toml.Decode(string(blob), &parsed)
	if err != nil {
		return base, &MalformedInputError{Path: path, Err: err}
	}

	section := parsed.Metainfo
	overlayValue(&base.AppID, section.AppID)
	overlayValue(&base.NamePretty, section.Name)
	overlayValue(&base.Summary, section.Summary)
	overlayValue(&base.Description, section.Description)
	overlayValue(&base.URL, section.URL)
	overlayValue(&base.License, section.License)
	overlayValue(&base.Developer, section.Developer)
	overlayValue(&base.Org, section.Org)
	overlayValue(&base.ComponentType, section.ComponentType)
	return base, nil
}

func overlayValue(dst *string, src string) {
	src = strings.TrimSpace(src)
	if src != "" {
		*dst = src
	}
}
