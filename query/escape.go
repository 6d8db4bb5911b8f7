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

package query

import "net/url"

// Escape returns a percent-encoded copy of the given string suitable for
// use in a url query parameter.
func Escape(str string) string {
	return url.QueryEscape(str)
}

// Unescape decodes one level of percent-encoding of the given string.
// Input that cannot be decoded is returned verbatim.
func Unescape(str string) string {
	if s, e := url.QueryUnescape(str); e == nil {
		return s
	}

	return str
}

// UnescapeRecurse decodes the given string until no further decoding is
// possible.
func UnescapeRecurse(str string) string {
	for {
		s := Unescape(str)
		if s == str {
			return s
		}
		str = s
	}
}
