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
	"context"
	"crypto/tls"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	liberr "github.com/nabbar/golib/errors"
	libhtt "github.com/nabbar/golift/httptype"
	librqs "github.com/nabbar/golift/request"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
	libsts "github.com/nabbar/golift/status"
	libtrp "github.com/nabbar/golift/transport"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// submission carries one request and its completion sink from the
// submitter to the loop goroutine.
type submission struct {
	req librqs.Request
	snk librqs.CompleteHandler
}

// completion carries one finished transfer from its goroutine back to the
// loop goroutine.
type completion struct {
	exe librqs.Executor
	err error
}

type cli struct {
	opt Options
	shr libshr.Share
	thr FctThread
	log FctLog

	ctx context.Context
	cnl context.CancelFunc

	run atomic.Bool
	stp atomic.Bool
	act atomic.Int64

	// mux guards only the pending vector. It is held briefly by the
	// submitter and by the loop to swap, never across a transport call.
	mux sync.Mutex
	pnd []submission
	grb []submission

	wak chan struct{}
	cmp chan completion
	don chan struct{}

	trn    *http.Transport
	ownTrn bool
	rsv    []librqs.ResolveHost
	sem    *semaphore.Weighted
	tmr    *timerIndex
	pol    []librqs.Executor
	met    *metrics
	epo    time.Time
}

func (c *cli) init(ctx context.Context, shr libshr.Share) liberr.Error {
	if shr != nil {
		c.shr = shr.Acquire()
	}

	cfg := c.opt.Transport
	if c.opt.MaxConnections > 0 {
		cfg.MaxIdleConns = int(c.opt.MaxConnections)
		c.sem = semaphore.NewWeighted(int64(c.opt.MaxConnections))
	}

	if c.shr != nil && c.shr.Transport() != nil {
		c.trn = c.shr.Transport()
	} else {
		var (
			ses = sessionCache(c.shr)
			rsl = resolver(c.shr)
		)
		c.trn = libtrp.New(cfg, ses, rsl)
		c.ownTrn = true
	}

	c.ctx, c.cnl = context.WithCancel(ctx)
	c.wak = make(chan struct{}, 1)
	c.cmp = make(chan completion, 128)
	c.don = make(chan struct{})
	c.tmr = newTimerIndex()
	c.epo = time.Now()

	for i := uint64(0); i < c.opt.ReserveConnections; i++ {
		c.pol = append(c.pol, librqs.NewExecutor(c.env()))
	}

	if c.opt.PromRegistry != nil {
		c.met = newMetrics(c.opt.PromRegistry)
	}

	return nil
}

func sessionCache(shr libshr.Share) tls.ClientSessionCache {
	if shr == nil {
		return nil
	}

	return shr.SessionCache()
}

func resolver(shr libshr.Share) libtrp.FctResolve {
	if shr == nil {
		return nil
	}

	return shr.Resolver()
}

func (c *cli) env() librqs.Env {
	return librqs.Env{
		Transport:      c.trn,
		TransportCfg:   c.opt.Transport,
		ResolveHosts:   c.rsv,
		ConnectTimeout: c.opt.TimeoutConnect.Time(),
		Share:          c.shr,
		Log:            c.log,
	}
}

func (c *cli) IsRunning() bool {
	return c.run.Load()
}

func (c *cli) IsStopping() bool {
	return c.stp.Load()
}

func (c *cli) Size() int {
	return int(c.act.Load())
}

func (c *cli) Empty() bool {
	return c.Size() == 0
}

func (c *cli) Stop() {
	c.stp.Store(true)
}

func (c *cli) Close() error {
	c.Stop()

	// Block until all requests are completed.
	tck := time.NewTicker(time.Millisecond)
	defer tck.Stop()

drain:
	for !c.Empty() {
		select {
		case <-c.ctx.Done():
			break drain
		case <-tck.C:
		}
	}

	c.cnl()
	<-c.don

	c.pol = nil

	if c.ownTrn && c.trn != nil {
		c.trn.CloseIdleConnections()
	}

	if c.shr != nil {
		_ = c.shr.Close()
	}

	return nil
}

// loop is the background goroutine driving the client.
func (c *cli) loop() {
	if c.thr != nil {
		c.thr(true)
	}

	c.run.Store(true)

	defer func() {
		c.run.Store(false)

		if c.thr != nil {
			c.thr(false)
		}

		close(c.don)
	}()

	if l := c.logEntry(); l != nil {
		l.Debug("client loop started")
	}

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.wak:
			c.acceptPending()
		case cpl := <-c.cmp:
			c.completeNormal(cpl.exe, cpl.err)
		case <-c.tmr.C():
			c.fireDue()
		}
	}
}

func (c *cli) logEntry() *logrus.Entry {
	if c.log == nil {
		return nil
	}

	return c.log()
}

func (c *cli) wake() {
	select {
	case c.wak <- struct{}{}:
	default:
	}
}

func (c *cli) monoNow() int64 {
	return time.Since(c.epo).Milliseconds()
}

// acceptPending swaps the pending vector out under the lock and installs
// each grabbed request on the transport. No transport call is made while
// the pending lock is held.
func (c *cli) acceptPending() {
	c.mux.Lock()
	c.grb, c.pnd = c.pnd, c.grb[:0]
	c.mux.Unlock()

	for i := range c.grb {
		sub := c.grb[i]

		exe := c.acquireExecutor()
		exe.StartAsync(sub.req)

		if sub.snk != nil {
			exe.SetSink(sub.snk)
		}

		if err := exe.Prepare(); err != nil {
			if l := c.logEntry(); l != nil {
				l.WithField("url", sub.req.URL()).WithError(err).Debug("request failed to start")
			}

			c.completeNormal(exe, librqs.ErrFailedToStart)
			continue
		}

		bud, due, tmr := c.timeoutPlan(sub.req)

		// The timeout entry must exist before the transfer launches, or
		// a very fast request could complete before it is indexed.
		if tmr {
			c.addTimeout(exe, due)
		}

		go c.transfer(exe, bud)
	}

	for i := range c.grb {
		c.grb[i] = submission{}
	}
	c.grb = c.grb[:0]
}

// timeoutPlan applies the two-tier timeout rule. The effective connect
// timeout is the request's one, else the client-wide one. When it exceeds
// the request timeout, the transport gets the longer budget and the timer
// index delivers the user visible timeout at the shorter one; otherwise
// the transport budget is the request timeout itself.
func (c *cli) timeoutPlan(req librqs.Request) (budget time.Duration, due time.Duration, useTimer bool) {
	tmo, hasT := req.Timeout()

	cto, hasC := req.ConnectTimeout()
	if !hasC && c.opt.TimeoutConnect > 0 {
		cto = c.opt.TimeoutConnect.Time()
		hasC = true
	}

	if !hasT {
		return 0, 0, false
	}

	if tmo < 0 {
		tmo = 0
	}

	if hasC && cto > tmo {
		return cto, tmo, true
	}

	if tmo <= 0 {
		tmo = time.Millisecond
	}

	return tmo, 0, false
}

func (c *cli) addTimeout(exe librqs.Executor, due time.Duration) {
	now := c.monoNow()

	ms := due.Milliseconds()
	if due > 0 && ms < 1 {
		// Sub-millisecond timeouts round up to one millisecond.
		ms = 1
	} else if ms < 0 {
		ms = 0
	}

	c.tmr.insert(now+ms, exe)
	c.tmr.updateNextFire(now)
}

// transfer drives one prepared request on its own goroutine and hands the
// outcome back to the loop.
func (c *cli) transfer(exe librqs.Executor, budget time.Duration) {
	if c.sem != nil {
		if err := c.sem.Acquire(c.ctx, 1); err != nil {
			select {
			case c.cmp <- completion{exe: exe, err: librqs.ErrFailedToStart}:
			case <-c.don:
			}
			return
		}
		defer c.sem.Release(1)
	}

	err := exe.Do(c.ctx, budget)

	select {
	case c.cmp <- completion{exe: exe, err: err}:
	case <-c.don:
	}
}

// completeNormal finalizes a request on the loop goroutine: it notifies
// the user at most once, recycles the executor and decrements the active
// counter. The failed-to-start and end-of-transfer paths both run here.
func (c *cli) completeNormal(exe librqs.Executor, err error) {
	if !exe.HandlerProcessed() {
		exe.SetHandlerProcessed()

		// The request completed, remove it from the timeout index if it
		// is there.
		now := c.monoNow()
		if c.tmr.remove(exe) {
			c.tmr.updateNextFire(now)
		}

		rsp := exe.Response(err)

		if c.met != nil {
			c.met.completed(rsp)
		}

		if snk := exe.TakeSink(); snk != nil {
			snk(exe.Request(), rsp)
		}
	}

	c.returnExecutor(exe)
	c.act.Add(-1)

	if c.met != nil {
		c.met.released()
	}
}

// completeTimeout delivers the user visible timeout of a request whose
// connection budget is still running. The transfer stays installed on the
// transport until it winds down on its own; the eventual normal completion
// skips the user notification and does the bookkeeping.
func (c *cli) completeTimeout(exe librqs.Executor) {
	if exe.HandlerProcessed() {
		return
	}

	exe.SetHandlerProcessed()

	req := exe.Request()
	tmo, _ := req.Timeout()

	rsp := exe.TimesUpResponse(tmo)

	if c.met != nil {
		c.met.completed(rsp)
	}

	// The transport keeps pointers into the original request's buffers
	// until it releases the transfer, so the user receives a copy; the
	// original stays pinned on the executor until normal completion.
	cpy := req.Clone()

	if snk := exe.TakeSink(); snk != nil {
		snk(cpy, rsp)
	}

	// The active counter is not decremented here: the transport will
	// still complete the transfer and the normal path does the decrement.
}

// fireDue walks the timer index and times out every entry whose deadline
// has passed.
func (c *cli) fireDue() {
	now := c.monoNow()

	for {
		exe, ok := c.tmr.popDue(now)
		if !ok {
			break
		}

		c.completeTimeout(exe)
	}

	c.tmr.updateNextFire(now)
}

// notifyFailedStart fulfills a sink with a synthetic failed-to-start
// response when a request cannot even be queued.
func notifyFailedStart(sub submission) {
	snk := sub.snk
	if snk == nil {
		snk = sub.req.CompleteHandler()
	}

	if snk == nil {
		// No way to actually report the client is shutting down.
		return
	}

	snk(sub.req, libres.New(libres.Data{
		Result:  libsts.ErrorFailedToStart,
		Code:    libhtt.Status500InternalServerError,
		Version: libhtt.Version1_1,
	}))
}

// submit enqueues a batch under the pending lock and wakes the loop.
func (c *cli) submit(subs []submission) {
	// Whoops, this client is actually shutting down.
	if c.stp.Load() {
		for _, sub := range subs {
			notifyFailedStart(sub)
		}
		return
	}

	c.act.Add(int64(len(subs)))

	if c.met != nil {
		c.met.submitted(len(subs))
	}

	c.mux.Lock()
	c.pnd = append(c.pnd, subs...)
	c.mux.Unlock()

	c.wake()
}
