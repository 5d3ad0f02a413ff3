// This file is part of Snescore.
//
// Snescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Snescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Snescore.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectInequality() and ExpectApproximate() functions
// test values of the same comparable type. ExpectSuccess() and
// ExpectFailure() test bool and error values for the expected condition.
//
// The Demand*() functions are the same except that they end the test
// immediately on failure. They are useful when later assertions depend on an
// earlier value being correct.
//
// Optional tags are appended to failure messages to help identify which
// iteration of a table driven test failed.
//
// CompareWriter is an implementation of io.Writer that collects output for
// comparison against an expected string.
package test
