/*
 * errors.go, part of gopocket
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package pocket

// Error is the interface for errors that the packages in this library
// implement. The Decorate method allows adding information to the error as it
// goes up the call stack, without changing its type or wrapping it into
// something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (concrete Error) is the error type returned by this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. If given an empty string it just returns the current
// decorations. Each element of the slice should be a function in the calling
// stack, optionally followed by extra information, as in "FuncName: info".
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements Error, decorates it with the
// caller's name and returns it. It will panic if used on an error that
// does not implement Error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
