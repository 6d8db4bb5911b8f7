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
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const (
	ErrorParamEmpty liberr.CodeError = iota + liberr.MinAvailable // At least one given parameter is empty
	ErrorParamInvalid                                             // At least one given parameter is invalid
	ErrorBodyMimeExclusive                                        // POST body and mime fields are mutually exclusive
	ErrorMimeFileNotFound                                         // The mime field file path does not exist
	ErrorURLInvalid                                               // The request URL cannot be parsed
	ErrorResolveInvalid                                           // Resolve entry is not 'host:port:ip'
	ErrorTLSCertInvalid                                           // The client certificate or key cannot be loaded
	ErrorTLSStatusUnsupported                                     // Certificate status verification is not available
	ErrorPrepareFailed                                            // The request cannot be applied to the transport
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamEmpty) {
		panic(fmt.Errorf("error code collision with package golift/request"))
	}
	liberr.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamEmpty:
		return "at least one given parameters is empty"
	case ErrorParamInvalid:
		return "at least one given parameters is invalid"
	case ErrorBodyMimeExclusive:
		return "a request body is mutually exclusive with mime fields"
	case ErrorMimeFileNotFound:
		return "the mime field file path does not exist on disk"
	case ErrorURLInvalid:
		return "the request url seems to be invalid"
	case ErrorResolveInvalid:
		return "resolve entry must be formatted as 'host:port:ip'"
	case ErrorTLSCertInvalid:
		return "the client certificate or key cannot be loaded"
	case ErrorTLSStatusUnsupported:
		return "certificate status verification is not supported by this transport"
	case ErrorPrepareFailed:
		return "the request cannot be applied to the transport"
	}

	return liberr.NullMessage
}
