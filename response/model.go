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

package response

import (
	"bytes"
	"time"

	libhdr "github.com/nabbar/golift/header"
	libhtt "github.com/nabbar/golift/httptype"
	libsts "github.com/nabbar/golift/status"
)

type rsp struct {
	d Data
}

func (o *rsp) Result() libsts.Status {
	return o.d.Result
}

func (o *rsp) StatusCode() libhtt.StatusCode {
	return o.d.Code
}

func (o *rsp) Version() libhtt.Version {
	return o.d.Version
}

func (o *rsp) Headers() []libhdr.Header {
	return o.d.Headers
}

func (o *rsp) Body() []byte {
	return o.d.Body
}

func (o *rsp) TotalTime() time.Duration {
	return o.d.TotalTime
}

func (o *rsp) NumConnects() uint8 {
	return o.d.NumConnects
}

func (o *rsp) NumRedirects() uint8 {
	return o.d.NumRedirects
}

func (o *rsp) Dump() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 256+len(o.d.Body)))

	buf.WriteString(o.d.Version.String())
	buf.WriteByte(' ')
	buf.WriteString(o.d.Code.String())
	buf.WriteString("\r\n")

	for _, h := range o.d.Headers {
		buf.WriteString(h.Data())
		buf.WriteString("\r\n")
	}

	buf.WriteString("\r\n")

	if len(o.d.Body) > 0 {
		buf.Write(o.d.Body)
	}

	return buf.Bytes()
}

func (o *rsp) String() string {
	return string(o.Dump())
}
