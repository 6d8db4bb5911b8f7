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

package httptype

// StatusCode is the HTTP response status code.
// See https://en.wikipedia.org/wiki/List_of_HTTP_status_codes
type StatusCode uint16

const (
	StatusUnknown StatusCode = 0

	Status100Continue           StatusCode = 100
	Status101SwitchingProtocols StatusCode = 101
	Status102Processing         StatusCode = 102
	Status103EarlyHints         StatusCode = 103

	Status200OK                          StatusCode = 200
	Status201Created                     StatusCode = 201
	Status202Accepted                    StatusCode = 202
	Status203NonAuthoritativeInformation StatusCode = 203
	Status204NoContent                   StatusCode = 204
	Status205ResetContent                StatusCode = 205
	Status206PartialContent              StatusCode = 206
	Status207MultiStatus                 StatusCode = 207
	Status208AlreadyReported             StatusCode = 208
	Status226IMUsed                      StatusCode = 226

	Status300MultipleChoices  StatusCode = 300
	Status301MovedPermanently StatusCode = 301
	Status302Found            StatusCode = 302
	Status303SeeOther         StatusCode = 303
	Status304NotModified      StatusCode = 304
	Status305UseProxy         StatusCode = 305
	// Status306SwitchProxy is unused and reserved per RFC 7231 but
	// originally meant 'switch proxy', so kept for backwards compatibility.
	Status306SwitchProxy       StatusCode = 306
	Status307TemporaryRedirect StatusCode = 307
	Status308PermanentRedirect StatusCode = 308

	Status400BadRequest                  StatusCode = 400
	Status401Unauthorized                StatusCode = 401
	Status402PaymentRequired             StatusCode = 402
	Status403Forbidden                   StatusCode = 403
	Status404NotFound                    StatusCode = 404
	Status405MethodNotAllowed            StatusCode = 405
	Status406NotAcceptable               StatusCode = 406
	Status407ProxyAuthenticationRequired StatusCode = 407
	Status408RequestTimeout              StatusCode = 408
	Status409Conflict                    StatusCode = 409
	Status410Gone                        StatusCode = 410
	Status411LengthRequired              StatusCode = 411
	Status412PreconditionFailed          StatusCode = 412
	Status413PayloadTooLarge             StatusCode = 413
	Status414URITooLong                  StatusCode = 414
	Status415UnsupportedMediaType        StatusCode = 415
	Status416RangeNotSatisfiable         StatusCode = 416
	Status417ExpectationFailed           StatusCode = 417
	Status418ImATeapot                   StatusCode = 418
	Status421MisdirectedRequest          StatusCode = 421
	Status422UnprocessableEntity         StatusCode = 422
	Status423Locked                      StatusCode = 423
	Status424FailedDependency            StatusCode = 424
	Status425TooEarly                    StatusCode = 425
	Status426UpgradeRequired             StatusCode = 426
	Status428PreconditionRequired        StatusCode = 428
	Status429TooManyRequests             StatusCode = 429
	Status431RequestHeaderFieldsTooLarge StatusCode = 431
	Status451UnavailableForLegalReasons  StatusCode = 451

	Status500InternalServerError           StatusCode = 500
	Status501NotImplemented                StatusCode = 501
	Status502BadGateway                    StatusCode = 502
	Status503ServiceUnavailable            StatusCode = 503
	Status504GatewayTimeout                StatusCode = 504
	Status505HTTPVersionNotSupported       StatusCode = 505
	Status506VariantAlsoNegotiates         StatusCode = 506
	Status507InsufficientStorage           StatusCode = 507
	Status508LoopDetected                  StatusCode = 508
	Status510NotExtended                   StatusCode = 510
	Status511NetworkAuthenticationRequired StatusCode = 511
)

var statusCodeString = map[StatusCode]string{
	Status100Continue:           "100 Continue",
	Status101SwitchingProtocols: "101 Switching Protocols",
	Status102Processing:         "102 Processing",
	Status103EarlyHints:         "103 Early Hints",

	Status200OK:                          "200 OK",
	Status201Created:                     "201 Created",
	Status202Accepted:                    "202 Accepted",
	Status203NonAuthoritativeInformation: "203 Non-Authoritative Information",
	Status204NoContent:                   "204 No Content",
	Status205ResetContent:                "205 Reset Content",
	Status206PartialContent:              "206 Partial Content",
	Status207MultiStatus:                 "207 Multi-Status",
	Status208AlreadyReported:             "208 Already Reported",
	Status226IMUsed:                      "226 IM Used",

	Status300MultipleChoices:   "300 Multiple Choices",
	Status301MovedPermanently:  "301 Moved Permanently",
	Status302Found:             "302 Found",
	Status303SeeOther:          "303 See Other",
	Status304NotModified:       "304 Not Modified",
	Status305UseProxy:          "305 Use Proxy",
	Status306SwitchProxy:       "306 Switch Proxy",
	Status307TemporaryRedirect: "307 Temporary Redirect",
	Status308PermanentRedirect: "308 Permanent Redirect",

	Status400BadRequest:                  "400 Bad Request",
	Status401Unauthorized:                "401 Unauthorized",
	Status402PaymentRequired:             "402 Payment Required",
	Status403Forbidden:                   "403 Forbidden",
	Status404NotFound:                    "404 Not Found",
	Status405MethodNotAllowed:            "405 Method Not Allowed",
	Status406NotAcceptable:               "406 Not Acceptable",
	Status407ProxyAuthenticationRequired: "407 Proxy Authentication Required",
	Status408RequestTimeout:              "408 Request Timeout",
	Status409Conflict:                    "409 Conflict",
	Status410Gone:                        "410 Gone",
	Status411LengthRequired:              "411 Length Required",
	Status412PreconditionFailed:          "412 Precondition Failed",
	Status413PayloadTooLarge:             "413 Payload Too Large",
	Status414URITooLong:                  "414 URI Too Long",
	Status415UnsupportedMediaType:        "415 Unsupported Media Type",
	Status416RangeNotSatisfiable:         "416 Range Not Satisfiable",
	Status417ExpectationFailed:           "417 Expectation Failed",
	Status418ImATeapot:                   "418 I'm a teapot",
	Status421MisdirectedRequest:          "421 Misdirected Request",
	Status422UnprocessableEntity:         "422 Unprocessable Entity",
	Status423Locked:                      "423 Locked",
	Status424FailedDependency:            "424 Failed Dependency",
	Status425TooEarly:                    "425 Too Early",
	Status426UpgradeRequired:             "426 Upgrade Required",
	Status428PreconditionRequired:        "428 Precondition Required",
	Status429TooManyRequests:             "429 Too Many Requests",
	Status431RequestHeaderFieldsTooLarge: "431 Request Header Fields Too Large",
	Status451UnavailableForLegalReasons:  "451 Unavailable For Legal Reasons",

	Status500InternalServerError:           "500 Internal Server Error",
	Status501NotImplemented:                "501 Not Implemented",
	Status502BadGateway:                    "502 Bad Gateway",
	Status503ServiceUnavailable:            "503 Service Unavailable",
	Status504GatewayTimeout:                "504 Gateway Timeout",
	Status505HTTPVersionNotSupported:       "505 HTTP Version Not Supported",
	Status506VariantAlsoNegotiates:         "506 Variant Also Negotiates",
	Status507InsufficientStorage:           "507 Insufficient Storage",
	Status508LoopDetected:                  "508 Loop Detected",
	Status510NotExtended:                   "510 Not Extended",
	Status511NetworkAuthenticationRequired: "511 Network Authentication Required",
}

const strStatusUnknown = "unknown"

// String returns the "<code> <reason>" representation of the status code,
// e.g. "200 OK", or "unknown" for any code outside the table.
func (s StatusCode) String() string {
	if v, k := statusCodeString[s]; k {
		return v
	}

	return strStatusUnknown
}

// Int returns the status code as a plain int.
func (s StatusCode) Int() int {
	return int(s)
}

// ParseStatusCode converts an integer HTTP status code into a StatusCode.
// The conversion round-trips for every known code and returns StatusUnknown
// for anything else.
func ParseStatusCode(code int) StatusCode {
	if code < 0 || code > int(^uint16(0)) {
		return StatusUnknown
	}

	if _, k := statusCodeString[StatusCode(code)]; k {
		return StatusCode(code)
	}

	return StatusUnknown
}
