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

package transport

import (
	"context"
	"net"
	"strings"
	"sync/atomic"
	"time"
)

type ctxKey uint8

const (
	ctxResolve ctxKey = iota
	ctxConnectTimeout
	ctxHappyEyeballs
	ctxConnCount
)

// WithResolve attaches dial-time address overrides to the context. Each
// entry must be formatted as "host:port:ip"; a dial to "host:port" then
// connects to "ip:port" instead. Entries are matched in order, first match
// wins.
func WithResolve(ctx context.Context, resolve []string) context.Context {
	if len(resolve) < 1 {
		return ctx
	}

	return context.WithValue(ctx, ctxResolve, resolve)
}

// WithConnectTimeout attaches a per-dial connect timeout to the context,
// overriding the transport's configured dialer timeout.
func WithConnectTimeout(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, ctxConnectTimeout, timeout)
}

// WithHappyEyeballs attaches a happy-eyeballs fallback delay to the
// context. A zero delay races the second address family immediately; a
// negative delay disables the racing.
func WithHappyEyeballs(ctx context.Context, delay time.Duration) context.Context {
	return context.WithValue(ctx, ctxHappyEyeballs, delay)
}

// WithConnCount attaches a dial counter to the context. The dialer
// increments it once per connection attempt made under this context.
func WithConnCount(ctx context.Context, counter *atomic.Uint32) context.Context {
	if counter == nil {
		return ctx
	}

	return context.WithValue(ctx, ctxConnCount, counter)
}

type dialer struct {
	cfg Config
	rsv FctResolve
}

func (o *dialer) netDialer(ctx context.Context) *net.Dialer {
	d := &net.Dialer{
		Timeout:   o.cfg.TimeoutDialer.Time(),
		KeepAlive: o.cfg.TimeoutKeepAlive.Time(),
	}

	if v, k := ctx.Value(ctxConnectTimeout).(time.Duration); k {
		d.Timeout = v
	}

	if v, k := ctx.Value(ctxHappyEyeballs).(time.Duration); k {
		switch {
		case v < 0:
			d.FallbackDelay = -1
		case v == 0:
			d.FallbackDelay = time.Nanosecond
		default:
			d.FallbackDelay = v
		}
	}

	return d
}

func (o *dialer) resolve(ctx context.Context, address string) (string, error) {
	if lst, k := ctx.Value(ctxResolve).([]string); k {
		for _, entry := range lst {
			if dst, ok := matchResolve(entry, address); ok {
				return dst, nil
			}
		}
	}

	if o.rsv != nil {
		return o.rsv(address)
	}

	return address, nil
}

// matchResolve checks one "host:port:ip" entry against the dialed
// "host:port" address and returns the "ip:port" destination on match.
func matchResolve(entry, address string) (string, bool) {
	pos := strings.LastIndex(entry, ":")
	if pos < 0 {
		return "", false
	}

	hostport := entry[:pos]
	ip := entry[pos+1:]

	if len(ip) < 1 || !strings.EqualFold(hostport, address) {
		return "", false
	}

	_, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", false
	}

	return net.JoinHostPort(ip, port), true
}

func (o *dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	dst, err := o.resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	if ctr, k := ctx.Value(ctxConnCount).(*atomic.Uint32); k {
		ctr.Add(1)
	}

	return o.netDialer(ctx).DialContext(ctx, network, dst)
}
