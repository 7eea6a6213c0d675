/*
 * errors.go, part of the computational-chemistry library.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mm

import "fmt"

//Error is the error type of the mm package. Errors accumulate a
//"decoration" trail of the callers they crossed, which helps locating
//the failing operation without a full stack trace.
type Error struct {
	message string
	deco    []string
	wrapped error
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Unwrap returns the underlying error, if any, so errors.Is/As see
//through the decoration.
func (err *Error) Unwrap() error {
	return err.wrapped
}

//errorf builds an *Error with a formatted message.
func errorf(format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...)}
}

type decorable interface {
	Error() string
	Decorate(string) []string
}

//errDecorate adds the caller's name to err's decoration trail. Errors
//from other packages are wrapped into an *Error first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(decorable)
	if !ok {
		err2 = &Error{message: err.Error(), wrapped: err}
	}
	err2.Decorate(caller)
	return err2
}
