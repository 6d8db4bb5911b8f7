/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package golift holds the process-wide lifecycle of the library.
//
// The library works without any explicit initialization: the synchronous
// perform path brackets itself with the init pair, and clients own their
// transports. Long running applications issuing many synchronous requests
// can keep the process-wide connection pool warm across calls by taking a
// reference for the lifetime of main:
//
//	defer golift.Scoped()()
package golift

import (
	libtrp "github.com/nabbar/golift/transport"
)

// GlobalInit takes one reference on the process-wide transport state.
// The first reference creates the state.
func GlobalInit() {
	libtrp.GlobalInit()
}

// GlobalCleanup releases one reference on the process-wide transport
// state. The last release tears it down.
func GlobalCleanup() {
	libtrp.GlobalCleanup()
}

// Scoped takes one reference and returns the matching release function,
// for deferred use in main.
func Scoped() func() {
	GlobalInit()
	return GlobalCleanup
}
