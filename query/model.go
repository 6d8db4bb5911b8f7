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

package query

import (
	"strconv"
	"strings"
)

type queryParam struct {
	key string
	val string
}

type builder struct {
	buf strings.Builder

	scheme   string
	hostname string
	port     uint16
	parts    []string
	params   []queryParam
	fragment string
}

func (o *builder) Scheme(scheme string) Builder {
	o.scheme = scheme
	return o
}

func (o *builder) Hostname(host string) Builder {
	o.hostname = host
	return o
}

func (o *builder) Port(port uint16) Builder {
	o.port = port
	return o
}

func (o *builder) AddPathPart(part string) Builder {
	o.parts = append(o.parts, part)
	return o
}

func (o *builder) AddQueryParameter(name, value string) Builder {
	o.params = append(o.params, queryParam{key: name, val: value})
	return o
}

func (o *builder) Fragment(fragment string) Builder {
	o.fragment = fragment
	return o
}

func (o *builder) Build() string {
	o.buf.Reset()

	if len(o.scheme) > 0 {
		o.buf.WriteString(o.scheme)
		o.buf.WriteString("://")
	}

	o.buf.WriteString(o.hostname)

	if o.port > 0 {
		o.buf.WriteByte(':')
		o.buf.WriteString(strconv.FormatUint(uint64(o.port), 10))
	}

	for _, p := range o.parts {
		o.buf.WriteByte('/')
		o.buf.WriteString(p)
	}

	for i, p := range o.params {
		if i == 0 {
			o.buf.WriteByte('?')
		} else {
			o.buf.WriteByte('&')
		}
		o.buf.WriteString(p.key)
		o.buf.WriteByte('=')
		o.buf.WriteString(Escape(p.val))
	}

	if len(o.fragment) > 0 {
		o.buf.WriteByte('#')
		o.buf.WriteString(o.fragment)
	}

	res := o.buf.String()
	o.reset()

	return res
}

func (o *builder) reset() {
	o.scheme = ""
	o.hostname = ""
	o.port = 0
	o.parts = o.parts[:0]
	o.params = o.params[:0]
	o.fragment = ""
}
