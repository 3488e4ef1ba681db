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

import "fmt"

//MalformedInputError is returned when an input file exists but cannot be
//parsed, or its root element is not a recognized component root.
type MalformedInputError struct {
	Path string
	Err  error
}

//Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("cannot parse %s: %s", e.Path, e.Err.Error())
}

//Unwrap exposes the underlying parse error.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

//MissingIdentifierError is returned by Merge() when the merged component has
//no <id>. Packaging cannot proceed without an AppStream identifier.
type MissingIdentifierError struct{}

//Error implements the error interface.
func (e *MissingIdentifierError) Error() string {
	return "merged metainfo has no <id> element; set APPSTREAM_APPID (or the appid key in the values file), or provide an override file with an <id>"
}

//UnsupportedOptionError is returned when a macro option carries a value
//outside its recognized domain, e.g. an unknown component type.
type UnsupportedOptionError struct {
	Option string
	Value  string
}

//Error implements the error interface.
func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("unsupported value \"%s\" for option %s", e.Value, e.Option)
}
