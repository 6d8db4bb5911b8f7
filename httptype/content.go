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

import "strings"

// ContentType is a convenience enum over common HTTP 'Content-Type' values.
// The library does not parse these from wire headers; the design here is to
// reduce string copies for applications that want to set them.
type ContentType uint16

const (
	ContentTypeUnknown ContentType = iota

	ContentTypeNoContent

	ContentTypeTextCSS
	ContentTypeTextCSV
	ContentTypeTextHTML
	ContentTypeTextPlain
	ContentTypeTextXML

	ContentTypeImageGIF
	ContentTypeImageJPEG
	ContentTypeImagePNG
	ContentTypeImageTIFF
	ContentTypeImageXIcon
	ContentTypeImageSVGXML

	ContentTypeVideoMPEG
	ContentTypeVideoMP4
	ContentTypeVideoXFLV
	ContentTypeVideoWebM

	ContentTypeMultipartMixed
	ContentTypeMultipartAlternative
	ContentTypeMultipartRelated
	ContentTypeMultipartFormData

	ContentTypeAudioMPEG
	ContentTypeAudioXMSWMA
	ContentTypeAudioXWav

	ContentTypeApplicationJavascript
	ContentTypeApplicationOctetStream
	ContentTypeApplicationOgg
	ContentTypeApplicationPDF
	ContentTypeApplicationXHTMLXML
	ContentTypeApplicationXShockwaveFlash
	ContentTypeApplicationJSON
	ContentTypeApplicationLDJSON
	ContentTypeApplicationXML
	ContentTypeApplicationZip
	ContentTypeApplicationXWWWFormURLEncoded
)

var contentTypeString = map[ContentType]string{
	ContentTypeNoContent: "",

	ContentTypeTextCSS:   "text/css",
	ContentTypeTextCSV:   "text/csv",
	ContentTypeTextHTML:  "text/html",
	ContentTypeTextPlain: "text/plain",
	ContentTypeTextXML:   "text/xml",

	ContentTypeImageGIF:    "image/gif",
	ContentTypeImageJPEG:   "image/jpeg",
	ContentTypeImagePNG:    "image/png",
	ContentTypeImageTIFF:   "image/tiff",
	ContentTypeImageXIcon:  "image/x-icon",
	ContentTypeImageSVGXML: "image/svg+xml",

	ContentTypeVideoMPEG: "video/mpeg",
	ContentTypeVideoMP4:  "video/mp4",
	ContentTypeVideoXFLV: "video/x-flv",
	ContentTypeVideoWebM: "video/webm",

	ContentTypeMultipartMixed:       "multipart/mixed",
	ContentTypeMultipartAlternative: "multipart/alternative",
	ContentTypeMultipartRelated:     "multipart/related",
	ContentTypeMultipartFormData:    "multipart/form-data",

	ContentTypeAudioMPEG:   "audio/mpeg",
	ContentTypeAudioXMSWMA: "audio/x-ms-wma",
	ContentTypeAudioXWav:   "audio/x-wav",

	ContentTypeApplicationJavascript:         "application/javascript",
	ContentTypeApplicationOctetStream:        "application/octet-stream",
	ContentTypeApplicationOgg:                "application/ogg",
	ContentTypeApplicationPDF:                "application/pdf",
	ContentTypeApplicationXHTMLXML:           "application/xhtml+xml",
	ContentTypeApplicationXShockwaveFlash:    "application/x-shockwave-flash",
	ContentTypeApplicationJSON:               "application/json",
	ContentTypeApplicationLDJSON:             "application/ld+json",
	ContentTypeApplicationXML:                "application/xml",
	ContentTypeApplicationZip:                "application/zip",
	ContentTypeApplicationXWWWFormURLEncoded: "application/x-www-form-urlencoded",
}

// String returns the mime representation of the content type.
func (c ContentType) String() string {
	if v, k := contentTypeString[c]; k {
		return v
	}

	return strMethodUnknown
}

// ParseContentType returns the ContentType matching the given mime string,
// case insensitive. Any unknown input maps to ContentTypeUnknown.
func ParseContentType(str string) ContentType {
	for c, v := range contentTypeString {
		if len(v) > 0 && strings.EqualFold(str, v) {
			return c
		}
	}

	return ContentTypeUnknown
}

// ConnectionType is the HTTP 'Connection' header behavior.
type ConnectionType uint8

const (
	ConnectionClose ConnectionType = iota
	ConnectionKeepAlive
	ConnectionUpgrade
)

const (
	strConnectionClose     = "close"
	strConnectionKeepAlive = "keep-alive"
	strConnectionUpgrade   = "upgrade"
)

// String returns the wire representation of the connection type.
func (c ConnectionType) String() string {
	switch c {
	case ConnectionKeepAlive:
		return strConnectionKeepAlive
	case ConnectionUpgrade:
		return strConnectionUpgrade
	default:
		return strConnectionClose
	}
}

// ParseConnectionType returns the ConnectionType matching the given string,
// case insensitive. Any unknown input maps to ConnectionClose.
func ParseConnectionType(str string) ConnectionType {
	switch {
	case strings.EqualFold(str, strConnectionKeepAlive):
		return ConnectionKeepAlive
	case strings.EqualFold(str, strConnectionUpgrade):
		return ConnectionUpgrade
	default:
		return ConnectionClose
	}
}
