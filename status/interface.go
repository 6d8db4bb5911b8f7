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

// Package status exposes the library's terminal outcome of a request.
//
// This status describes how a request/response pair ended up inside the
// library. It has nothing in common with the HTTP status code returned by
// the remote server: a request may carry a 404 HTTP code and still be a
// Success here, while a request that never reached the wire will be a
// ConnectError, ConnectDNSError, Timeout, etc. Always check this value on a
// response before using any other field of it.
package status

import "strings"

// Status is the completion status of a request as seen by the library.
type Status uint8

const (
	// Building means the request is under construction.
	Building Status = iota
	// Executing means the request is being executed.
	Executing
	// Success means the request completed successfully. This is the one you want.
	Success
	// ConnectError means the request had a connect error.
	ConnectError
	// ConnectDNSError means the request couldn't lookup the DNS for the url.
	ConnectDNSError
	// ConnectSSLError means the request has an SSL connection error.
	ConnectSSLError
	// Timeout means the request timed out.
	Timeout
	// ResponseEmpty means the request has an empty response (socket severed).
	ResponseEmpty
	// Error means the request had an error and failed.
	Error
	// ErrorFailedToStart means the request failed to start, did the client shutdown?
	ErrorFailedToStart
	// DownloadError means the request had an error when reading data off the socket.
	DownloadError
)

const (
	strBuilding           = "building"
	strExecuting          = "executing"
	strSuccess            = "success"
	strConnectError       = "connect_error"
	strConnectDNSError    = "connect_dns_error"
	strConnectSSLError    = "connect_ssl_error"
	strTimeout            = "timeout"
	strResponseEmpty      = "response_empty"
	strError              = "error"
	strErrorFailedToStart = "error_failed_to_start"
	strDownloadError      = "download_error"
)

// String returns the human readable representation of the status.
func (s Status) String() string {
	switch s {
	case Building:
		return strBuilding
	case Executing:
		return strExecuting
	case Success:
		return strSuccess
	case ConnectError:
		return strConnectError
	case ConnectDNSError:
		return strConnectDNSError
	case ConnectSSLError:
		return strConnectSSLError
	case Timeout:
		return strTimeout
	case ResponseEmpty:
		return strResponseEmpty
	case ErrorFailedToStart:
		return strErrorFailedToStart
	case DownloadError:
		return strDownloadError
	default:
		return strError
	}
}

// Parse returns the Status matching the given string, case insensitive.
// Any unknown input maps to Error.
func Parse(str string) Status {
	switch {
	case strings.EqualFold(str, strBuilding):
		return Building
	case strings.EqualFold(str, strExecuting):
		return Executing
	case strings.EqualFold(str, strSuccess):
		return Success
	case strings.EqualFold(str, strConnectError):
		return ConnectError
	case strings.EqualFold(str, strConnectDNSError):
		return ConnectDNSError
	case strings.EqualFold(str, strConnectSSLError):
		return ConnectSSLError
	case strings.EqualFold(str, strTimeout):
		return Timeout
	case strings.EqualFold(str, strResponseEmpty):
		return ResponseEmpty
	case strings.EqualFold(str, strErrorFailedToStart):
		return ErrorFailedToStart
	case strings.EqualFold(str, strDownloadError):
		return DownloadError
	default:
		return Error
	}
}

// IsTerminal returns true when the status is a final outcome and not one of
// the in-flight states Building or Executing.
func (s Status) IsTerminal() bool {
	return s != Building && s != Executing
}
