package quickack

import (
	"context"
	"net"
	"syscall"
)

// Dialer wraps Go's net.Dialer and sets TCP_QUICKACK on the TCP connections it dials.
//
// The zero value leaves the option alone and behaves exactly like net.Dialer.
// Call [Dialer.SetQuickAck] to request a mode.
type Dialer struct {
	net.Dialer

	quickack status
}

// QuickAck reports whether TCP_QUICKACK is enabled on connections dialed by d.
// It returns false if no mode has been requested.
func (d *Dialer) QuickAck() bool {
	return d.quickack.get()
}

// SetQuickAck requests that TCP_QUICKACK be set to quickack on every
// TCP connection dialed by d.
func (d *Dialer) SetQuickAck(quickack bool) {
	d.quickack.set(quickack)
}

// DialContext connects to the address on the named network using
// the provided context.
//
// See [net.Dialer.DialContext] for a description of the parameters.
//
// For TCP networks, if a mode has been requested with [Dialer.SetQuickAck],
// the socket is checked for TCP_QUICKACK support before connecting and the
// option is set once the connection is established.
// The returned connection is a [*net.TCPConn].
func (d *Dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
		if d.quickack.configured() {
			c, err := d.dialQuickAck(ctx, network, address)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	return d.Dialer.DialContext(ctx, network, address)
}

// Dial connects to the address on the named network.
//
// Dial uses context.Background internally; to specify the context, use
// DialContext.
func (d *Dialer) Dial(network, address string) (net.Conn, error) {
	return d.DialContext(context.Background(), network, address)
}

// DialTCP acts like DialContext for TCP networks and returns a [*Conn].
func (d *Dialer) DialTCP(ctx context.Context, network, address string) (*Conn, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
	default:
		return nil, &net.OpError{Op: "dial", Net: network, Source: nil, Addr: nil, Err: net.UnknownNetworkError(network)}
	}
	c, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	return NewConn(c.(*net.TCPConn)), nil
}

func (d *Dialer) dialQuickAck(ctx context.Context, network, address string) (*net.TCPConn, error) {
	quickack := d.quickack.get()
	ctrlCtxFn := d.ControlContext
	ctrlFn := d.Control
	ld := *d
	ld.Control = nil
	ld.ControlContext = func(ctx context.Context, network, address string, c syscall.RawConn) error {
		switch {
		case ctrlCtxFn != nil:
			if err := ctrlCtxFn(ctx, network, address, c); err != nil {
				return err
			}
		case ctrlFn != nil:
			if err := ctrlFn(network, address, c); err != nil {
				return err
			}
		}

		// Delayed-ACK mode before connect holds back the handshake's final ACK,
		// so the socket is only probed here and the mode is set once connected.
		_, err := QuickAckRawConn(c)
		return err
	}

	nc, err := ld.Dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	tc := nc.(*net.TCPConn)

	if err = SetQuickAck(tc, quickack); err != nil {
		tc.Close()
		return nil, &net.OpError{Op: "dial", Net: network, Source: tc.LocalAddr(), Addr: tc.RemoteAddr(), Err: err}
	}
	return tc, nil
}

// Dial connects to the address on the named TCP network and
// sets TCP_QUICKACK on the connection to quickack.
func Dial(network, address string, quickack bool) (*Conn, error) {
	var d Dialer
	d.SetQuickAck(quickack)
	return d.DialTCP(context.Background(), network, address)
}
