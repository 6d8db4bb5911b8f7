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

// Package transport builds the http.Transport instances driving the
// library's requests.
//
// The transports produced here carry a custom dialer honoring per-call
// context values: dial-time host:port:ip address overrides, a per-dial
// connect timeout, a happy-eyeballs fallback delay, and a dial counter.
// This lets many requests with different network policies share one
// pooled transport instead of each allocating its own.
package transport

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	libval "github.com/go-playground/validator/v10"
	libtls "github.com/nabbar/golib/certificates"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"
)

// FctResolve is a resolver hook consulted by the dialer when no context
// override matches the dialed address. It receives the "host:port" address
// and returns the address to dial instead. Returning the input unchanged
// means no override.
type FctResolve func(address string) (string, error)

// Config defines the HTTP transport options.
//
// All fields support JSON, YAML, TOML, and Viper configuration through
// struct tags.
type Config struct {
	Proxy     *url.URL       `json:"proxy,omitempty" yaml:"proxy,omitempty" toml:"proxy,omitempty" mapstructure:"proxy,omitempty"`
	TLSConfig *libtls.Config `json:"tls-config,omitempty" yaml:"tls-config,omitempty" toml:"tls-config,omitempty" mapstructure:"tls-config,omitempty"`

	DisableHTTP2       bool `json:"disable-http2" yaml:"disable-http2" toml:"disable-http2" mapstructure:"disable-http2"`
	DisableKeepAlive   bool `json:"disable-keepalive" yaml:"disable-keepalive" toml:"disable-keepalive" mapstructure:"disable-keepalive"`
	DisableCompression bool `json:"disable-compression" yaml:"disable-compression" toml:"disable-compression" mapstructure:"disable-compression"`

	MaxIdleConns        int `json:"max-idle-conns" yaml:"max-idle-conns" toml:"max-idle-conns" mapstructure:"max-idle-conns" validate:"gte=0"`
	MaxIdleConnsPerHost int `json:"max-idle-conns-per-host" yaml:"max-idle-conns-per-host" toml:"max-idle-conns-per-host" mapstructure:"max-idle-conns-per-host" validate:"gte=0"`
	MaxConnsPerHost     int `json:"max-conns-per-host" yaml:"max-conns-per-host" toml:"max-conns-per-host" mapstructure:"max-conns-per-host" validate:"gte=0"`

	TimeoutDialer         libdur.Duration `json:"timeout-dialer,omitempty" yaml:"timeout-dialer,omitempty" toml:"timeout-dialer,omitempty" mapstructure:"timeout-dialer,omitempty"`
	TimeoutKeepAlive      libdur.Duration `json:"timeout-keepalive,omitempty" yaml:"timeout-keepalive,omitempty" toml:"timeout-keepalive,omitempty" mapstructure:"timeout-keepalive,omitempty"`
	TimeoutTLSHandshake   libdur.Duration `json:"timeout-tls-handshake,omitempty" yaml:"timeout-tls-handshake,omitempty" toml:"timeout-tls-handshake,omitempty" mapstructure:"timeout-tls-handshake,omitempty"`
	TimeoutExpectContinue libdur.Duration `json:"timeout-expect-continue,omitempty" yaml:"timeout-expect-continue,omitempty" toml:"timeout-expect-continue,omitempty" mapstructure:"timeout-expect-continue,omitempty"`
	TimeoutIdleConn       libdur.Duration `json:"timeout-idle-conn,omitempty" yaml:"timeout-idle-conn,omitempty" toml:"timeout-idle-conn,omitempty" mapstructure:"timeout-idle-conn,omitempty"`
	TimeoutResponseHeader libdur.Duration `json:"timeout-response-header,omitempty" yaml:"timeout-response-header,omitempty" toml:"timeout-response-header,omitempty" mapstructure:"timeout-response-header,omitempty"`
}

// DefaultConfig generates a default transport configuration in JSON format.
func DefaultConfig(indent string) []byte {
	var (
		res = bytes.NewBuffer(make([]byte, 0))
		def = []byte(`{
  "proxy": null,
  "disable-http2": false,
  "disable-keepalive": false,
  "disable-compression": false,
  "max-idle-conns": 50,
  "max-idle-conns-per-host": 5,
  "max-conns-per-host": 25,
  "timeout-dialer": "30s",
  "timeout-keepalive": "15s",
  "timeout-tls-handshake": "10s",
  "timeout-expect-continue": "3s",
  "timeout-idle-conn": "90s",
  "timeout-response-header": "0s"
}`)
	)
	if err := json.Indent(res, def, indent, "  "); err != nil {
		return def
	} else {
		return res.Bytes()
	}
}

// Validate checks if the Config is valid according to struct tag constraints.
func (o Config) Validate() liberr.Error {
	var e = ErrorValidatorError.Error(nil)

	if err := libval.New().Struct(o); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		}

		for _, er := range err.(libval.ValidationErrors) {
			//nolint #goerr113
			e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
		}
	}

	if !e.HasParent() {
		e = nil
	}

	return e
}

// New builds an http.Transport from the given configuration.
//
// The sess cache, when not nil, is mounted as the TLS client session cache
// so TLS session state can be shared across transports. The rsv resolver,
// when not nil, is consulted by the dialer for every dial that has no
// context-level resolve override.
func New(cfg Config, sess tls.ClientSessionCache, rsv FctResolve) *http.Transport {
	var prx func(*http.Request) (*url.URL, error)
	if cfg.Proxy == nil {
		prx = http.ProxyFromEnvironment
	} else {
		prx = http.ProxyURL(cfg.Proxy)
	}

	var (
		err error
		ssl libtls.TLSConfig
	)

	if cfg.TLSConfig == nil {
		ssl = libtls.New()
		ssl.SetVersionMin(tls.VersionTLS12)
		ssl.SetVersionMax(tls.VersionTLS13)
	} else if ssl, err = cfg.TLSConfig.New(); err != nil {
		ssl = libtls.New()
		ssl.SetVersionMin(tls.VersionTLS12)
		ssl.SetVersionMax(tls.VersionTLS13)
	}

	cfg = cfg.withDefaults()

	tcl := ssl.TlsConfig("")
	if sess != nil {
		tcl.ClientSessionCache = sess
	}

	dia := &dialer{
		cfg: cfg,
		rsv: rsv,
	}

	return &http.Transport{
		Proxy:                 prx,
		DialContext:           dia.DialContext,
		TLSClientConfig:       tcl,
		TLSHandshakeTimeout:   cfg.TimeoutTLSHandshake.Time(),
		DisableKeepAlives:     cfg.DisableKeepAlive,
		DisableCompression:    cfg.DisableCompression,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       cfg.TimeoutIdleConn.Time(),
		ResponseHeaderTimeout: cfg.TimeoutResponseHeader.Time(),
		ExpectContinueTimeout: cfg.TimeoutExpectContinue.Time(),
		ForceAttemptHTTP2:     !cfg.DisableHTTP2,
	}
}

func (o Config) withDefaults() Config {
	if o.TimeoutDialer == 0 {
		o.TimeoutDialer = libdur.ParseDuration(30 * time.Second)
	}

	if o.TimeoutKeepAlive == 0 {
		o.TimeoutKeepAlive = libdur.ParseDuration(15 * time.Second)
	}

	if o.TimeoutTLSHandshake == 0 {
		o.TimeoutTLSHandshake = libdur.ParseDuration(10 * time.Second)
	}

	if o.TimeoutExpectContinue == 0 {
		o.TimeoutExpectContinue = libdur.ParseDuration(3 * time.Second)
	}

	if o.TimeoutIdleConn == 0 {
		o.TimeoutIdleConn = libdur.ParseDuration(90 * time.Second)
	}

	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 50
	}

	if o.MaxIdleConnsPerHost == 0 {
		o.MaxIdleConnsPerHost = 5
	}

	return o
}
