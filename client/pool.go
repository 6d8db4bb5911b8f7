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
	librqs "github.com/nabbar/golift/request"
)

// acquireExecutor takes an executor from the free list, allocating a new
// one when the list is empty. Owned by the loop goroutine.
func (c *cli) acquireExecutor() librqs.Executor {
	if n := len(c.pol); n > 0 {
		e := c.pol[n-1]
		c.pol[n-1] = nil
		c.pol = c.pol[:n-1]
		return e
	}

	return librqs.NewExecutor(c.env())
}

// returnExecutor resets the executor and puts it back on the free list so
// repeated submissions do not allocate.
func (c *cli) returnExecutor(exe librqs.Executor) {
	exe.Reset()
	c.pol = append(c.pol, exe)
}
