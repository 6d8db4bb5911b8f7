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
	"net/http"
	"sync"

	libatm "github.com/nabbar/golib/atomic"
)

// global is the process-wide default transport published in an atomic
// value for thread safety. It carries the connection pool used by requests
// performed without an explicit share or client.
var (
	global = libatm.NewValue[*http.Transport]()

	globalMux  sync.Mutex
	globalRefs int
)

// Global returns the process-wide default transport, creating it with the
// default configuration on first use.
func Global() *http.Transport {
	if t := global.Load(); t != nil {
		return t
	}

	global.Store(New(Config{}, nil, nil))

	return global.Load()
}

// GlobalInit takes one reference on the process-wide default transport,
// creating it on the first reference.
func GlobalInit() {
	globalMux.Lock()
	defer globalMux.Unlock()

	globalRefs++
	if globalRefs == 1 && global.Load() == nil {
		global.Store(New(Config{}, nil, nil))
	}
}

// GlobalCleanup releases one reference on the process-wide default
// transport; the last release drops it and closes its idle connections.
func GlobalCleanup() {
	globalMux.Lock()
	defer globalMux.Unlock()

	if globalRefs > 0 {
		globalRefs--
	}

	if globalRefs == 0 {
		if t := global.Swap(nil); t != nil {
			t.CloseIdleConnections()
		}
	}
}
