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
	"bytes"
	"encoding/json"
	"fmt"

	libval "github.com/go-playground/validator/v10"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"
	libtrp "github.com/nabbar/golift/transport"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a client.
//
// All fields but PromRegistry support JSON, YAML, TOML, and Viper
// configuration through struct tags.
type Options struct {
	// ReserveConnections is the number of executors prepared upfront so
	// the first submissions do not allocate.
	ReserveConnections uint64 `json:"reserve-connections" yaml:"reserve-connections" toml:"reserve-connections" mapstructure:"reserve-connections"`

	// MaxConnections bounds both the connection cache of the transport
	// and the number of transfers in flight at any given time. Zero
	// means no bound.
	MaxConnections uint64 `json:"max-connections" yaml:"max-connections" toml:"max-connections" mapstructure:"max-connections"`

	// TimeoutConnect is the time new connections are allowed to setup,
	// applied to every request executed through this client unless the
	// request carries its own connect timeout. It may be larger than the
	// request timeouts to allow long tail connects but very short
	// requests once the keep-alive connection is established.
	TimeoutConnect libdur.Duration `json:"timeout-connect,omitempty" yaml:"timeout-connect,omitempty" toml:"timeout-connect,omitempty" mapstructure:"timeout-connect,omitempty"`

	// ResolveHosts are "host:port:ip" overrides bypassing DNS resolution
	// for every request executed through this client.
	ResolveHosts []string `json:"resolve-hosts,omitempty" yaml:"resolve-hosts,omitempty" toml:"resolve-hosts,omitempty" mapstructure:"resolve-hosts,omitempty"`

	// Transport configures the pooled transport of this client and the
	// dedicated transports built for requests carrying overrides.
	Transport libtrp.Config `json:"transport,omitempty" yaml:"transport,omitempty" toml:"transport,omitempty" mapstructure:"transport,omitempty"`

	// PromRegistry enables client metrics when not nil.
	PromRegistry prometheus.Registerer `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

// DefaultConfig generates a default client configuration in JSON format.
func DefaultConfig(indent string) []byte {
	var (
		res = bytes.NewBuffer(make([]byte, 0))
		def = []byte(`{
  "reserve-connections": 0,
  "max-connections": 0,
  "timeout-connect": "0s",
  "resolve-hosts": [],
  "transport": ` + string(libtrp.DefaultConfig("  ")) + `
}`)
	)
	if err := json.Indent(res, def, indent, "  "); err != nil {
		return def
	} else {
		return res.Bytes()
	}
}

// Validate checks if the Options are valid according to struct tag
// constraints.
func (o Options) Validate() liberr.Error {
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
