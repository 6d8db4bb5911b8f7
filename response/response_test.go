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

package response_test

import (
	"time"

	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
	libres "github.com/nabbar/golift/response"
	libsts "github.com/nabbar/golift/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Response", func() {
	Context("Accessors", func() {
		It("must expose every field it was built from", func() {
			r := libres.New(libres.Data{
				Result:       libsts.Success,
				Code:         libhtt.Status200OK,
				Version:      libhtt.Version1_1,
				Headers:      []libhdr.Header{libhdr.New("Content-Type", "text/plain")},
				Body:         []byte("hello"),
				TotalTime:    125 * time.Millisecond,
				NumConnects:  1,
				NumRedirects: 0,
			})

			Expect(r.Result()).To(Equal(libsts.Success))
			Expect(r.StatusCode()).To(Equal(libhtt.Status200OK))
			Expect(r.Version()).To(Equal(libhtt.Version1_1))
			Expect(r.Headers()).To(HaveLen(1))
			Expect(r.Body()).To(Equal([]byte("hello")))
			Expect(r.TotalTime()).To(Equal(125 * time.Millisecond))
			Expect(r.NumConnects()).To(Equal(uint8(1)))
			Expect(r.NumRedirects()).To(Equal(uint8(0)))
		})
	})

	Context("Dump", func() {
		It("must render the raw HTTP format", func() {
			r := libres.New(libres.Data{
				Result:  libsts.Success,
				Code:    libhtt.Status200OK,
				Version: libhtt.Version1_1,
				Headers: []libhdr.Header{
					libhdr.New("Content-Length", "5"),
					libhdr.New("Content-Type", "text/plain"),
				},
				Body: []byte("hello"),
			})

			Expect(string(r.Dump())).To(Equal("HTTP/1.1 200 OK\r\nContent-Length: 5\r\nContent-Type: text/plain\r\n\r\nhello"))
		})
		It("must render an empty body as headers and a blank line only", func() {
			r := libres.New(libres.Data{
				Result:  libsts.Timeout,
				Code:    libhtt.Status504GatewayTimeout,
				Version: libhtt.Version1_1,
			})

			Expect(r.String()).To(Equal("HTTP/1.1 504 Gateway Timeout\r\n\r\n"))
		})
	})
})
