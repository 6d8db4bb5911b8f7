/*
 *  MIT License
 *
 *  Copyright (c) 2024 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package query_test

import (
	libqry "github.com/nabbar/golift/query"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Query", func() {
	Context("Builder", func() {
		It("must emit a full url from its parts", func() {
			u := libqry.New().
				Scheme("http").
				Hostname("www.example.com").
				Port(8080).
				AddPathPart("test").
				AddPathPart("path").
				AddQueryParameter("param1", "value1").
				AddQueryParameter("param2", "value 2").
				Fragment("frag").
				Build()

			Expect(u).To(Equal("http://www.example.com:8080/test/path?param1=value1&param2=value+2#frag"))
		})
		It("must omit a zero port and empty sections", func() {
			u := libqry.New().
				Scheme("https").
				Hostname("example.com").
				Build()

			Expect(u).To(Equal("https://example.com"))
		})
		It("must keep the parameter insertion order and duplicates", func() {
			u := libqry.New().
				Scheme("http").
				Hostname("example.com").
				AddQueryParameter("k", "1").
				AddQueryParameter("k", "2").
				Build()

			Expect(u).To(Equal("http://example.com?k=1&k=2"))
		})
		It("must reset on build and be reusable", func() {
			b := libqry.New()

			Expect(b.Scheme("http").Hostname("one.example.com").Build()).To(Equal("http://one.example.com"))
			Expect(b.Scheme("http").Hostname("two.example.com").Build()).To(Equal("http://two.example.com"))
		})
	})

	Context("Escape", func() {
		It("must be inverted by a single unescape for printable ascii", func() {
			for c := byte(0x20); c < 0x7f; c++ {
				s := string([]byte{c})
				Expect(libqry.Unescape(libqry.Escape(s))).To(Equal(s))
			}
		})
		It("must decode only one level per unescape", func() {
			twice := libqry.Escape(libqry.Escape("a b&c"))

			Expect(libqry.Unescape(twice)).To(Equal(libqry.Escape("a b&c")))
			Expect(libqry.Unescape(libqry.Unescape(twice))).To(Equal("a b&c"))
		})
		It("must decode until stable with the recursive unescape", func() {
			twice := libqry.Escape(libqry.Escape("a b&c"))

			Expect(libqry.UnescapeRecurse(twice)).To(Equal("a b&c"))
			Expect(libqry.UnescapeRecurse("plain")).To(Equal("plain"))
		})
	})
})
