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

package client_test

import (
	"encoding/json"
	"time"

	libdur "github.com/nabbar/golib/duration"
	libcli "github.com/nabbar/golift/client"
	librqs "github.com/nabbar/golift/request"
	libsts "github.com/nabbar/golift/status"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client Options", func() {
	Context("Configuration", func() {
		It("must validate the default options", func() {
			Expect(libcli.Options{}.Validate()).To(BeNil())
		})
		It("must emit a parsable default configuration", func() {
			var m map[string]interface{}
			Expect(json.Unmarshal(libcli.DefaultConfig(""), &m)).ToNot(HaveOccurred())
			Expect(m).To(HaveKey("transport"))
		})
		It("must reject malformed client-wide resolve hosts", func() {
			_, err := libcli.New(ctx, libcli.Options{
				ResolveHosts: []string{"missing-parts"},
			}, nil, nil, nil)
			Expect(err).ToNot(BeNil())
		})
	})

	Context("Bounded and reserved connections", func() {
		It("must run a burst through a small connection bound", func() {
			c, err := libcli.New(ctx, libcli.Options{
				ReserveConnections: 4,
				MaxConnections:     2,
				TimeoutConnect:     libdur.ParseDuration(time.Second),
			}, nil, nil, nil)
			Expect(err).To(BeNil())

			defer func() {
				_ = c.Close()
			}()

			reqs := make([]librqs.Request, 0, 20)
			for i := 0; i < 20; i++ {
				r := librqs.New("http://" + srvAddr + "/")
				r.SetTimeout(2 * time.Second)
				reqs = append(reqs, r)
			}

			fut, err := c.StartRequests(reqs)
			Expect(err).To(BeNil())

			for _, f := range fut {
				res := <-f
				Expect(res.Response.Result()).To(Equal(libsts.Success))
			}
		})
	})

	Context("Metrics", func() {
		It("must count completions in the registry", func() {
			reg := prometheus.NewRegistry()

			c, err := libcli.New(ctx, libcli.Options{PromRegistry: reg}, nil, nil, nil)
			Expect(err).To(BeNil())

			defer func() {
				_ = c.Close()
			}()

			fut, err := c.StartRequest(librqs.New("http://" + srvAddr + "/"))
			Expect(err).To(BeNil())
			<-fut

			mfs, err2 := reg.Gather()
			Expect(err2).ToNot(HaveOccurred())

			var found bool
			for _, mf := range mfs {
				if mf.GetName() == "golift_client_completions_total" {
					found = true
				}
			}
			Expect(found).To(BeTrue())
		})
	})
})
