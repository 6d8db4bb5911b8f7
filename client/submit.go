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

package client

import (
	liberr "github.com/nabbar/golib/errors"
	librqs "github.com/nabbar/golift/request"
	libres "github.com/nabbar/golift/response"
)

func (c *cli) StartRequest(req librqs.Request) (<-chan Result, liberr.Error) {
	if req == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	ch := make(chan Result, 1)

	c.submit([]submission{{
		req: req,
		snk: promise(ch),
	}})

	return ch, nil
}

func (c *cli) StartRequestFunc(req librqs.Request, fct librqs.CompleteHandler) liberr.Error {
	if req == nil || fct == nil {
		return ErrorParamEmpty.Error(nil)
	}

	req.OnComplete(fct)

	c.submit([]submission{{
		req: req,
		snk: fct,
	}})

	return nil
}

func (c *cli) StartRequests(reqs []librqs.Request) ([]<-chan Result, liberr.Error) {
	var (
		fut  []<-chan Result
		subs []submission
	)

	// Prep each request's promise prior to acquiring the lock. Nil
	// entries are ignored.
	for _, req := range reqs {
		if req == nil {
			continue
		}

		ch := make(chan Result, 1)
		fut = append(fut, ch)
		subs = append(subs, submission{
			req: req,
			snk: promise(ch),
		})
	}

	c.submit(subs)

	return fut, nil
}

func (c *cli) StartRequestsFunc(reqs []librqs.Request, fct librqs.CompleteHandler) liberr.Error {
	if fct == nil {
		return ErrorParamEmpty.Error(nil)
	}

	var subs []submission

	// Prep each request's callback prior to acquiring the lock. Nil
	// entries are ignored.
	for _, req := range reqs {
		if req == nil {
			continue
		}

		req.OnComplete(fct)
		subs = append(subs, submission{
			req: req,
			snk: fct,
		})
	}

	c.submit(subs)

	return nil
}

// promise wraps a one-shot result channel into a completion sink. The
// channel is buffered so the loop never blocks fulfilling it, and closed
// after the single send so further receives do not hang.
func promise(ch chan Result) librqs.CompleteHandler {
	return func(req librqs.Request, rsp libres.Response) {
		ch <- Result{
			Request:  req,
			Response: rsp,
		}
		close(ch)
	}
}
