// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

// Package serial provides the physical transport between a ril.Cmd/ril.Rsp
// pair and a UART-attached modem, using github.com/tarm/serial.
package serial

import (
	"time"

	tserial "github.com/tarm/serial"
	"github.com/warthog618/ril"
)

// Config is the serial port configuration. The zero value for each field
// takes the platform default defined in defaultConfig.
type Config struct {
	port        string
	baud        int
	readTimeout time.Duration
}

// Option modifies the Config used by New.
type Option func(*Config)

// WithPort overrides the default serial device name.
func WithPort(port string) Option {
	return func(c *Config) {
		c.port = port
	}
}

// WithBaud overrides the default baud rate.
func WithBaud(baud int) Option {
	return func(c *Config) {
		c.baud = baud
	}
}

// WithReadTimeout sets the per-byte read deadline armed on the underlying
// port. tarm/serial only supports a read timeout fixed at open, and the
// ReadFunc ignores the timeout passed by State.SetTimeout, so this is the
// deadline every byte read through this transport is held to.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.readTimeout = d
	}
}

// Modem is an open serial connection to a modem, exposing the
// ril.WriteFunc/ril.ReadFunc pair a Cmd/Rsp State is constructed from.
type Modem struct {
	port *tserial.Port
	buf  [1]byte
}

// New opens a serial port per the given options, defaulting to the
// platform's usual modem device at 115200 baud with a 100ms read timeout.
func New(options ...Option) (*Modem, error) {
	cfg := defaultConfig
	cfg.readTimeout = 100 * time.Millisecond
	for _, o := range options {
		o(&cfg)
	}
	p, err := tserial.OpenPort(&tserial.Config{
		Name:        cfg.port,
		Baud:        cfg.baud,
		ReadTimeout: cfg.readTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &Modem{port: p}, nil
}

// Close closes the underlying port.
func (m *Modem) Close() error {
	return m.port.Close()
}

// WriteFunc returns the ril.WriteFunc bound to this port.
func (m *Modem) WriteFunc() ril.WriteFunc {
	return func(b byte) error {
		m.buf[0] = b
		_, err := m.port.Write(m.buf[:])
		return err
	}
}

// ReadFunc returns the ril.ReadFunc bound to this port.
//
// tarm/serial has no per-call deadline, only the fixed ReadTimeout set at
// open, so timeoutMs is ignored here; a read that gets no byte within that
// ReadTimeout returns ErrReadTimeout, which ends the ril operation.
func (m *Modem) ReadFunc() ril.ReadFunc {
	buf := make([]byte, 1)
	return func(timeoutMs int) (int, error) {
		n, err := m.port.Read(buf)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ril.ErrReadTimeout
		}
		return int(buf[0]), nil
	}
}
