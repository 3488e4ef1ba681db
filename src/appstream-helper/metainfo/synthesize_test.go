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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeBasicMapping(t *testing.T) {
	c, err := Synthesize(Values{
		AppID:         "org.example.App",
		NamePretty:    "Example",
		Summary:       "An example app",
		URL:           "https://example.com",
		License:       "MIT",
		Developer:     "Example Dev",
		Org:           "org.example",
		ComponentType: "desktop-application",
	})
	require.NoError(t, err)

	assert.Equal(t, "desktop-application", c.Type)
	assert.Equal(t, "org.example.App", c.ID)
	assert.Equal(t, "Example", c.Name)
	assert.Equal(t, "An example app", c.Summary)
	assert.Equal(t, "MIT", c.ProjectLicense)
	assert.Equal(t, "CC0-1.0", c.MetadataLicense, "generated metadata is implicitly CC0-1.0")
	assert.Equal(t, Developer{ID: "org.example", Name: "Example Dev"}, c.Developer)

	homepage, ok := c.URL("homepage")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", homepage)
}

func TestSynthesizeAbsentOptionsStayAbsent(t *testing.T) {
	c, err := Synthesize(Values{AppID: "org.example.App"})
	require.NoError(t, err)

	assert.Empty(t, c.Type)
	assert.Empty(t, c.Name)
	assert.Empty(t, c.Summary)
	assert.Empty(t, c.Description)
	assert.Empty(t, c.ProjectLicense)
	assert.Empty(t, c.URLs)
	assert.Equal(t, Developer{}, c.Developer)
}

func TestSynthesizeWithoutAppID(t *testing.T) {
	//a fragment without an id is fine at this stage; the invariant is
	//enforced on the merged result
	c, err := Synthesize(Values{Summary: "no id yet"})
	require.NoError(t, err)
	assert.Empty(t, c.ID)

	var idErr *MissingIdentifierError
	_, err = Merge([]*Component{c})
	require.ErrorAs(t, err, &idErr)
}

func TestSynthesizeSnapshotSuffix(t *testing.T) {
	testCases := []struct {
		packageName string
		expectedID  string
	}{
		{"example", "org.example.App"},
		{"example-nightly", "org.example.App-nightly"},
		{"example-git", "org.example.App-git"},
	}

	for _, tc := range testCases {
		c, err := Synthesize(Values{AppID: "org.example.App", PackageName: tc.packageName})
		require.NoError(t, err)
		assert.Equal(t, tc.expectedID, c.ID, "package name: %s", tc.packageName)
	}
}

func TestSynthesizeNameFallsBackToPackageName(t *testing.T) {
	c, err := Synthesize(Values{AppID: "org.example.App", PackageName: "example"})
	require.NoError(t, err)
	assert.Equal(t, "example", c.Name)
}

func TestSynthesizeForgeURLGetsVCSBrowser(t *testing.T) {
	testCases := []struct {
		url        string
		vcsBrowser bool
	}{
		{"https://example.com", false},
		{"https://github.com/example/app", true},
		{"https://gitlab.com/example/app", true},
		{"https://git.example.com/app.git", true},
	}

	for _, tc := range testCases {
		c, err := Synthesize(Values{AppID: "org.example.App", URL: tc.url})
		require.NoError(t, err)

		homepage, ok := c.URL("homepage")
		require.True(t, ok)
		assert.Equal(t, tc.url, homepage)

		vcs, ok := c.URL("vcs-browser")
		if tc.vcsBrowser {
			require.True(t, ok, "url: %s", tc.url)
			assert.Equal(t, tc.url, vcs)
		} else {
			assert.False(t, ok, "url: %s", tc.url)
		}
	}
}

func TestSynthesizeDescription(t *testing.T) {
	c, err := Synthesize(Values{AppID: "org.example.App", Description: "Long text with <markup> & such"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Long text with &lt;markup&gt; &amp; such</p>", c.Description)

	//the summary stands in when no description was given
	c, err = Synthesize(Values{AppID: "org.example.App", Summary: "Short text"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Short text</p>", c.Description)
}

func TestSynthesizeStockIcon(t *testing.T) {
	c, err := Synthesize(Values{AppID: "org.example.App", ComponentType: "runtime"})
	require.NoError(t, err)
	require.Len(t, c.Blocks, 1)
	assert.Equal(t, "icon", c.Blocks[0].Name)
	assert.Equal(t, "application-x-executable", c.Blocks[0].Content)

	//no component type means console-application for icon purposes
	c, err = Synthesize(Values{AppID: "org.example.App"})
	require.NoError(t, err)
	require.Len(t, c.Blocks, 1)
	assert.Equal(t, "terminal", c.Blocks[0].Content)

	//desktop applications ship their own icon
	c, err = Synthesize(Values{AppID: "org.example.App", ComponentType: "desktop-application"})
	require.NoError(t, err)
	assert.Empty(t, c.Blocks)
}

func TestSynthesizeUnsupportedComponentType(t *testing.T) {
	_, err := Synthesize(Values{AppID: "org.example.App", ComponentType: "flatpak-thingy"})

	var unsupported *UnsupportedOptionError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "component_type", unsupported.Option)
	assert.Equal(t, "flatpak-thingy", unsupported.Value)
}

func TestSynthesizeDeveloperIDFallsBackToAppID(t *testing.T) {
	c, err := Synthesize(Values{AppID: "org.example.App", Developer: "Example Dev"})
	require.NoError(t, err)
	assert.Equal(t, Developer{ID: "org.example.App", Name: "Example Dev"}, c.Developer)
}
