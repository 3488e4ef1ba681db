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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoadAbsentInput(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = Load(filepath.Join(t.TempDir(), "does-not-exist.metainfo.xml"))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestLoadFullDocument(t *testing.T) {
	path := writeTestFile(t, "org.example.App.metainfo.xml", `<?xml version="1.0" encoding="UTF-8"?>
<component type="desktop-application">
  <id>org.example.App</id>
  <name>Example</name>
  <summary>An example app</summary>
  <developer id="org.example">
    <name>Example Org</name>
  </developer>
  <project_license>MIT</project_license>
  <metadata_license>CC0-1.0</metadata_license>
  <url type="homepage">https://example.com</url>
  <launchable type="desktop-id">org.example.App.desktop</launchable>
  <description><p>Hello.</p></description>
  <categories>
    <category>Game</category>
    <category>Utility</category>
  </categories>
  <provides>
    <binary>example</binary>
    <library>libexample.so.1</library>
  </provides>
  <releases>
    <release version="1.2" date="2025-01-01"/>
  </releases>
  <keywords>
    <keyword>demo</keyword>
  </keywords>
  <content_rating type="oars-1.1"/>
</component>
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "desktop-application", c.Type)
	assert.Equal(t, "org.example.App", c.ID)
	assert.Equal(t, "Example", c.Name)
	assert.Equal(t, "An example app", c.Summary)
	assert.Equal(t, Developer{ID: "org.example", Name: "Example Org"}, c.Developer)
	assert.Equal(t, "MIT", c.ProjectLicense)
	assert.Equal(t, "CC0-1.0", c.MetadataLicense)
	assert.Equal(t, "<p>Hello.</p>", c.Description)
	assert.Equal(t, []Entry{{Type: "homepage", Value: "https://example.com"}}, c.URLs)
	assert.Equal(t, []Entry{{Type: "desktop-id", Value: "org.example.App.desktop"}}, c.Launchables)
	assert.Equal(t, []string{"Game", "Utility"}, c.Categories)
	assert.Equal(t, []Entry{
		{Type: "binary", Value: "example"},
		{Type: "library", Value: "libexample.so.1"},
	}, c.Provides)
	assert.Equal(t, []Release{{Version: "1.2", Date: "2025-01-01"}}, c.Releases)

	//unmanaged elements survive as opaque blocks, in document order
	require.Len(t, c.Blocks, 2)
	assert.Equal(t, "keywords", c.Blocks[0].Name)
	assert.Equal(t, "<keyword>demo</keyword>", c.Blocks[0].Content)
	assert.Equal(t, "content_rating", c.Blocks[1].Name)
}

func TestLoadLegacyDeveloperName(t *testing.T) {
	path := writeTestFile(t, "legacy.metainfo.xml", `<component>
  <id>org.example.App</id>
  <developer_name>Example Org</developer_name>
</component>
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Example Org", c.Developer.Name)
	assert.Empty(t, c.Developer.ID)
}

func TestLoadMalformedXML(t *testing.T) {
	for _, content := range []string{
		"this is not XML at all",
		"<component><id>org.example.App</component>",
		"<component><id>unterminated",
	} {
		path := writeTestFile(t, "broken.metainfo.xml", content)
		_, err := Load(path)

		var malformed *MalformedInputError
		require.ErrorAs(t, err, &malformed, "content: %q", content)
		assert.Equal(t, path, malformed.Path)
	}
}

func TestLoadUnrecognizedRootElement(t *testing.T) {
	path := writeTestFile(t, "wrong-root.xml", `<application><id>org.example.App</id></application>`)
	_, err := Load(path)

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
}
