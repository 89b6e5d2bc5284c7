package quickack

import (
	"context"
	"net"
	"syscall"
)

// ListenConfig wraps Go's net.ListenConfig and sets TCP_QUICKACK on accepted connections.
//
// The zero value leaves the option alone and behaves exactly like net.ListenConfig.
// Call [ListenConfig.SetQuickAck] to request a mode.
type ListenConfig struct {
	net.ListenConfig

	quickack status
}

// QuickAck reports whether TCP_QUICKACK is enabled on connections accepted
// by listeners created from lc. It returns false if no mode has been requested.
func (lc *ListenConfig) QuickAck() bool {
	return lc.quickack.get()
}

// SetQuickAck requests that TCP_QUICKACK be set to quickack on every
// connection accepted by listeners created from lc.
func (lc *ListenConfig) SetQuickAck(quickack bool) {
	lc.quickack.set(quickack)
}

// Listen announces on the local network address.
//
// See [net.ListenConfig.Listen] for a description of the parameters.
//
// For TCP networks, the returned listener is a [*Listener]. If a mode has been
// requested with [ListenConfig.SetQuickAck], Listen fails if the option
// cannot be read on the listening socket.
func (lc *ListenConfig) Listen(ctx context.Context, network, address string) (net.Listener, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
		ln, err := lc.listenTCP(ctx, network, address)
		if err != nil {
			return nil, err
		}
		return ln, nil
	}
	return lc.ListenConfig.Listen(ctx, network, address)
}

// ListenTCP acts like Listen for TCP networks and returns a [*Listener].
func (lc *ListenConfig) ListenTCP(ctx context.Context, network, address string) (*Listener, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
	default:
		return nil, &net.OpError{Op: "listen", Net: network, Source: nil, Addr: nil, Err: net.UnknownNetworkError(network)}
	}
	return lc.listenTCP(ctx, network, address)
}

func (lc *ListenConfig) listenTCP(ctx context.Context, network, address string) (*Listener, error) {
	llc := *lc
	if lc.quickack.configured() {
		ctrlFn := lc.Control
		llc.Control = func(network, address string, c syscall.RawConn) error {
			if ctrlFn != nil {
				if err := ctrlFn(network, address, c); err != nil {
					return err
				}
			}

			// Accepted sockets start in the kernel's default mode, so the
			// listening socket is only probed for support.
			_, err := QuickAckRawConn(c)
			return err
		}
	}

	ln, err := llc.ListenConfig.Listen(ctx, network, address)
	if err != nil {
		return nil, err
	}
	return &Listener{
		TCPListener: ln.(*net.TCPListener),
		quickack:    lc.quickack,
	}, nil
}

// Listener is a TCP listener that sets TCP_QUICKACK on accepted connections.
type Listener struct {
	*net.TCPListener

	quickack status
}

// Accept waits for and returns the next connection to the listener.
// The returned connection is a [*net.TCPConn].
func (ln *Listener) Accept() (net.Conn, error) {
	c, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AcceptTCP accepts the next incoming call and returns the new connection
// with TCP_QUICKACK set to the requested mode.
func (ln *Listener) AcceptTCP() (*net.TCPConn, error) {
	c, err := ln.TCPListener.AcceptTCP()
	if err != nil {
		return nil, err
	}
	if !ln.quickack.configured() {
		return c, nil
	}
	if err = SetQuickAck(c, ln.quickack.get()); err != nil {
		c.Close()
		return nil, &net.OpError{Op: "accept", Net: ln.Addr().Network(), Source: c.LocalAddr(), Addr: c.RemoteAddr(), Err: err}
	}
	return c, nil
}

// AcceptConn acts like AcceptTCP and returns a [*Conn].
func (ln *Listener) AcceptConn() (*Conn, error) {
	c, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	return NewConn(c), nil
}

// Listen announces on the local TCP network address and sets TCP_QUICKACK
// to quickack on every accepted connection.
func Listen(network, address string, quickack bool) (*Listener, error) {
	var lc ListenConfig
	lc.SetQuickAck(quickack)
	return lc.ListenTCP(context.Background(), network, address)
}
