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

package request

import (
	"context"
	"time"

	liberr "github.com/nabbar/golib/errors"
	libres "github.com/nabbar/golift/response"
	libshr "github.com/nabbar/golift/share"
	libtrp "github.com/nabbar/golift/transport"
)

func (r *rqs) Perform(ctx context.Context, shr libshr.Share) (libres.Response, liberr.Error) {
	libtrp.GlobalInit()
	defer libtrp.GlobalCleanup()

	if shr != nil {
		shr.Acquire()
		defer func() {
			_ = shr.Close()
		}()
	}

	env := Env{
		Share: shr,
	}

	if shr != nil && shr.Transport() != nil {
		env.Transport = shr.Transport()
	} else {
		env.Transport = libtrp.Global()
	}

	e := NewExecutor(env)
	e.StartSync(r)
	defer e.Reset()

	if err := e.Prepare(); err != nil {
		return e.Response(ErrFailedToStart), err
	}

	var budget time.Duration
	if t, k := r.Timeout(); k {
		if budget = t; budget <= 0 {
			budget = time.Millisecond
		}
	}

	return e.Response(e.Do(ctx, budget)), nil
}
