// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

package trace_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/ril"
	"github.com/warthog618/ril/trace"
)

func nullWrite(b byte) error { return nil }

func constRead(data []byte) ril.ReadFunc {
	i := 0
	return func(timeoutMs int) (int, error) {
		if i >= len(data) {
			return 0, ril.ErrReadTimeout
		}
		b := data[i]
		i++
		return int(b), nil
	}
}

func TestNew(t *testing.T) {
	l := log.New(&bytes.Buffer{}, "", log.LstdFlags)
	tr := trace.New(nullWrite, constRead(nil), l)
	assert.NotNil(t, tr)

	tr = trace.New(nullWrite, constRead(nil), l, trace.ReadFormat("r: %v"))
	assert.NotNil(t, tr)
}

func TestTraceReadFunc(t *testing.T) {
	b := bytes.Buffer{}
	l := log.New(&b, "", 0)
	tr := trace.New(nullWrite, constRead([]byte("ab\n")), l)
	require.NotNil(t, tr)
	read := tr.ReadFunc()
	for i := 0; i < 3; i++ {
		_, err := read(0)
		assert.Nil(t, err)
	}
	assert.Equal(t, "r: ab\n", b.String())
}

func TestTraceWriteFunc(t *testing.T) {
	b := bytes.Buffer{}
	l := log.New(&b, "", 0)
	tr := trace.New(nullWrite, constRead(nil), l)
	require.NotNil(t, tr)
	write := tr.WriteFunc()
	for _, c := range []byte("cd\n") {
		err := write(c)
		assert.Nil(t, err)
	}
	assert.Equal(t, "w: cd\n", b.String())
}

func TestTraceReadFormat(t *testing.T) {
	b := bytes.Buffer{}
	l := log.New(&b, "", 0)
	tr := trace.New(nullWrite, constRead([]byte("a\n")), l, trace.ReadFormat("R: %v\n"))
	require.NotNil(t, tr)
	read := tr.ReadFunc()
	for i := 0; i < 2; i++ {
		_, err := read(0)
		assert.Nil(t, err)
	}
	assert.Equal(t, "R: [97 10]\n", b.String())
}

func TestTraceWriteFormat(t *testing.T) {
	b := bytes.Buffer{}
	l := log.New(&b, "", 0)
	tr := trace.New(nullWrite, constRead(nil), l, trace.WriteFormat("W: %v\n"))
	require.NotNil(t, tr)
	write := tr.WriteFunc()
	for _, c := range []byte("b\n") {
		err := write(c)
		assert.Nil(t, err)
	}
	assert.Equal(t, "W: [98 10]\n", b.String())
}
