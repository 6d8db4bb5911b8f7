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

// Package client executes many asynchronous HTTP requests simultaneously
// on one background loop goroutine.
//
// Requests are submitted from any goroutine; the loop picks them up,
// installs them on the transport, enforces the two-tier timeout policy and
// delivers each completion exactly once, either through a one-shot result
// channel or a user callback. Completions run on the loop goroutine:
// callers must avoid heavy work inside them or it will block other
// in-flight requests.
package client

import (
	"context"
	"runtime"

	liberr "github.com/nabbar/golib/errors"
	librqs "github.com/nabbar/golift/request"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
	"github.com/sirupsen/logrus"
)

// FctLog provides the logger entry used to trace the client, or nil to
// disable logging.
type FctLog func() *logrus.Entry

// FctThread is called on the loop goroutine when it starts (true) and
// stops (false). It can be used to tune the goroutine or mark it in
// traces.
type FctThread func(start bool)

// Result pairs a completed request with its response. Ownership of the
// request comes back to the caller with it.
type Result struct {
	Request  librqs.Request
	Response libres.Response
}

// Client drives many asynchronous HTTP requests on a background loop.
//
// All submission methods are thread safe and can be called from any
// goroutine.
type Client interface {
	// IsRunning returns true while the background loop is running.
	IsRunning() bool

	// IsStopping returns true once the client stopped accepting new
	// requests.
	IsStopping() bool

	// Size returns the number of active requests, including pending
	// requests that haven't been started yet.
	Size() int

	// Empty returns true if there are no requests pending or executing.
	Empty() bool

	// Stop makes the client reject new requests. Requests already
	// submitted keep processing until they complete; Stop does not
	// block.
	Stop()

	// Close stops the client, blocks until every active request has
	// flushed, then tears the background loop down.
	Close() error

	// StartRequest starts processing the given request. Ownership of the
	// request is transferred into the loop during execution and returned
	// to the caller through the result channel on completion.
	StartRequest(req librqs.Request) (<-chan Result, liberr.Error)

	// StartRequestFunc starts processing the given request; the callback
	// is invoked on the loop goroutine when it completes.
	StartRequestFunc(req librqs.Request, fct librqs.CompleteHandler) liberr.Error

	// StartRequests starts processing the given batch. Nil entries are
	// skipped. Submission order is preserved into the queue; completion
	// order depends on network outcomes.
	StartRequests(reqs []librqs.Request) ([]<-chan Result, liberr.Error)

	// StartRequestsFunc starts processing the given batch with one
	// shared completion callback. Nil entries are skipped.
	StartRequestsFunc(reqs []librqs.Request, fct librqs.CompleteHandler) liberr.Error
}

// New creates a client and spawns its background loop. The constructor
// only returns once the loop is running, so requests can be submitted
// immediately.
//
// The given share, when not nil, is mounted so connection, TLS session and
// DNS state can be reused across clients. The thr hook is called on loop
// start and stop.
func New(ctx context.Context, opt Options, shr libshr.Share, thr FctThread, log FctLog) (Client, liberr.Error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := opt.Validate(); err != nil {
		return nil, err
	}

	c := &cli{
		opt: opt,
		thr: thr,
		log: log,
	}

	for _, s := range opt.ResolveHosts {
		if rh, err := librqs.ParseResolveHost(s); err != nil {
			return nil, err
		} else {
			c.rsv = append(c.rsv, rh)
		}
	}

	if err := c.init(ctx, shr); err != nil {
		return nil, err
	}

	go c.loop()

	// Spin until the loop goroutine runs so the caller can start adding
	// requests immediately.
	for !c.IsRunning() {
		runtime.Gosched()
	}

	return c, nil
}
