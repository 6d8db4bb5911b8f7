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

package share_test

import (
	libshr "github.com/nabbar/golift/share"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Share", func() {
	Context("Options", func() {
		It("must expose each class in every union", func() {
			Expect(libshr.OptAll.Has(libshr.OptDNS)).To(BeTrue())
			Expect(libshr.OptAll.Has(libshr.OptSSL)).To(BeTrue())
			Expect(libshr.OptAll.Has(libshr.OptData)).To(BeTrue())

			Expect(libshr.OptDNSSSL.Has(libshr.OptDNS)).To(BeTrue())
			Expect(libshr.OptDNSSSL.Has(libshr.OptSSL)).To(BeTrue())
			Expect(libshr.OptDNSSSL.Has(libshr.OptData)).To(BeFalse())

			Expect(libshr.OptSSLData.Has(libshr.OptDNS)).To(BeFalse())
			Expect(libshr.OptNothing.Has(libshr.OptDNS)).To(BeFalse())
		})
		It("must render readable class lists", func() {
			Expect(libshr.OptNothing.String()).To(Equal("nothing"))
			Expect(libshr.OptDNSData.String()).To(Equal("dns+data"))
			Expect(libshr.OptAll.String()).To(Equal("dns+ssl+data"))
		})
	})

	Context("Resource classes", func() {
		It("must carry only the selected classes", func() {
			s := libshr.New(libshr.OptSSL)
			defer func() {
				_ = s.Close()
			}()

			Expect(s.Options()).To(Equal(libshr.OptSSL))
			Expect(s.SessionCache()).ToNot(BeNil())
			Expect(s.Resolver()).To(BeNil())
			Expect(s.Transport()).To(BeNil())
		})
		It("must carry everything with the all union", func() {
			s := libshr.New(libshr.OptAll)
			defer func() {
				_ = s.Close()
			}()

			Expect(s.SessionCache()).ToNot(BeNil())
			Expect(s.Resolver()).ToNot(BeNil())
			Expect(s.Transport()).ToNot(BeNil())
		})
	})

	Context("Reference counting", func() {
		It("must survive a close while still acquired", func() {
			s := libshr.New(libshr.OptAll)
			s.Acquire()

			Expect(s.Close()).ToNot(HaveOccurred())
			Expect(s.Transport()).ToNot(BeNil())
			Expect(s.Close()).ToNot(HaveOccurred())
		})
	})

	Context("Resolver", func() {
		It("must pass literal addresses through untouched", func() {
			s := libshr.New(libshr.OptDNS)
			defer func() {
				_ = s.Close()
			}()

			dst, err := s.Resolver()("127.0.0.1:8080")
			Expect(err).ToNot(HaveOccurred())
			Expect(dst).To(Equal("127.0.0.1:8080"))
		})
	})
})
