//go:build !linux

package quickack

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestFDUnsupported(t *testing.T) {
	if err := SetQuickAckFD(0, true); err != ErrPlatformUnsupported {
		t.Errorf("SetQuickAckFD: expected ErrPlatformUnsupported, got %v", err)
	}
	quickack, err := QuickAckFD(0)
	if err != ErrPlatformUnsupported {
		t.Errorf("QuickAckFD: expected ErrPlatformUnsupported, got %v", err)
	}
	if quickack {
		t.Error("QuickAckFD: expected false")
	}
}

func TestConnUnsupported(t *testing.T) {
	var (
		lc ListenConfig
		d  Dialer
	)
	client, _ := newLoopbackPair(t, &lc, &d)
	c := NewConn(client)

	if err := c.SetQuickAck(true); err != ErrPlatformUnsupported {
		t.Errorf("SetQuickAck: expected ErrPlatformUnsupported, got %v", err)
	}
	if _, err := c.QuickAck(); err != ErrPlatformUnsupported {
		t.Errorf("QuickAck: expected ErrPlatformUnsupported, got %v", err)
	}
}

func TestDialListenUnsupported(t *testing.T) {
	var plain ListenConfig
	ln, err := plain.ListenTCP(context.Background(), "tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	for _, quickack := range []bool{true, false} {
		c, err := Dial("tcp4", ln.Addr().String(), quickack)
		if c != nil {
			c.Close()
			t.Error("Expected nil connection")
		}
		if !errors.Is(err, ErrPlatformUnsupported) {
			t.Errorf("Dial: expected ErrPlatformUnsupported, got %v", err)
		}

		l, err := Listen("tcp4", "127.0.0.1:0", quickack)
		if l != nil {
			l.Close()
			t.Error("Expected nil listener")
		}
		if !errors.Is(err, ErrPlatformUnsupported) {
			t.Errorf("Listen: expected ErrPlatformUnsupported, got %v", err)
		}
	}
}

func TestAcceptUnsupported(t *testing.T) {
	var plain ListenConfig
	pln, err := plain.ListenTCP(context.Background(), "tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer pln.Close()

	ln := &Listener{TCPListener: pln.TCPListener, quickack: statusEnabled}

	var d Dialer
	c, err := d.Dial("tcp4", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ac, err := ln.AcceptConn()
	if ac != nil {
		ac.Close()
		t.Error("Expected nil connection")
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) || opErr.Op != "accept" {
		t.Fatalf("Expected accept *net.OpError, got %v", err)
	}
	if !errors.Is(err, ErrPlatformUnsupported) {
		t.Errorf("Expected ErrPlatformUnsupported, got %v", err)
	}

	// The accepted conn is closed, so the client sees EOF.
	c.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err = c.Read(make([]byte, 1)); err != io.EOF {
		t.Errorf("Expected io.EOF on client, got %v", err)
	}
}
