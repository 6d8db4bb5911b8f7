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

package transport_test

import (
	"io"
	"net/http"
	"sync/atomic"

	libtrp "github.com/nabbar/golift/transport"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transport", func() {
	Context("Dial with resolve override", func() {
		It("must route a fake hostname to the local server", func() {
			tr := libtrp.New(libtrp.Config{}, nil, nil)
			defer tr.CloseIdleConnections()

			req, err := http.NewRequestWithContext(
				libtrp.WithResolve(ctx, []string{"test.me.example.com:8090:127.0.0.1"}),
				http.MethodGet,
				"http://test.me.example.com:8090/path/any/thing",
				nil,
			)
			Expect(err).ToNot(HaveOccurred())

			cli := &http.Client{Transport: tr}
			rsp, err := cli.Do(req)
			Expect(err).ToNot(HaveOccurred())
			Expect(rsp).ToNot(BeNil())

			defer func() {
				_ = rsp.Body.Close()
			}()

			p, err := io.ReadAll(rsp.Body)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(p)).To(ContainSubstring("Requested Hostname: test.me.example.com"))
		})
		It("must fail the dial without the override", func() {
			tr := libtrp.New(libtrp.Config{}, nil, nil)
			defer tr.CloseIdleConnections()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://test.me.invalid:8090/", nil)
			Expect(err).ToNot(HaveOccurred())

			cli := &http.Client{Transport: tr}
			rsp, err := cli.Do(req)
			Expect(err).To(HaveOccurred())
			Expect(rsp).To(BeNil())
		})
	})

	Context("Dial counter", func() {
		It("must count one connection for a simple request", func() {
			tr := libtrp.New(libtrp.Config{}, nil, nil)
			defer tr.CloseIdleConnections()

			var ctr atomic.Uint32

			req, err := http.NewRequestWithContext(
				libtrp.WithConnCount(ctx, &ctr),
				http.MethodGet,
				"http://127.0.0.1:8090/",
				nil,
			)
			Expect(err).ToNot(HaveOccurred())

			cli := &http.Client{Transport: tr}
			rsp, err := cli.Do(req)
			Expect(err).ToNot(HaveOccurred())

			_, _ = io.Copy(io.Discard, rsp.Body)
			_ = rsp.Body.Close()

			Expect(ctr.Load()).To(Equal(uint32(1)))
		})
	})

	Context("Global transport", func() {
		It("must hand out one transport per init window", func() {
			libtrp.GlobalInit()
			defer libtrp.GlobalCleanup()

			Expect(libtrp.Global()).ToNot(BeNil())
			Expect(libtrp.Global()).To(BeIdenticalTo(libtrp.Global()))
		})
	})

	Context("Config", func() {
		It("must validate the default configuration", func() {
			Expect(libtrp.Config{}.Validate()).To(BeNil())
		})
		It("must reject a negative pool size", func() {
			Expect(libtrp.Config{MaxIdleConns: -1}.Validate()).ToNot(BeNil())
		})
	})
})
