// Package quickack exposes the Linux TCP_QUICKACK socket option on TCP connections.
//
// When TCP_QUICKACK is set, ACKs are sent immediately rather than delayed as
// they would be in normal TCP operation. The flag is not permanent: it only
// switches the socket into or out of quickack mode. Later protocol processing
// in the kernel may enter or leave quickack mode again on its own, so a value
// read back with [QuickAck] only reflects the state at the time of the call.
//
// TCP_QUICKACK is available since Linux 2.4.4. On other platforms, every
// option call returns [ErrPlatformUnsupported]. [Dialer] and [ListenConfig]
// only touch the option when a mode has been requested with SetQuickAck,
// and otherwise behave exactly like their counterparts in package net.
package quickack

import (
	"errors"
	"net"
	"os"
	"syscall"
)

// ErrPlatformUnsupported is returned on platforms without TCP_QUICKACK.
// It matches [errors.ErrUnsupported].
var ErrPlatformUnsupported error = platformUnsupportedError{}

type platformUnsupportedError struct{}

func (platformUnsupportedError) Error() string {
	return "quickack-go does not support TCP_QUICKACK on this platform"
}

func (platformUnsupportedError) Is(target error) bool {
	return target == errors.ErrUnsupported
}

// Conn is a TCP connection with access to the TCP_QUICKACK option.
type Conn struct {
	*net.TCPConn
}

// NewConn returns c as a [*Conn].
func NewConn(c *net.TCPConn) *Conn {
	return &Conn{TCPConn: c}
}

// SetQuickAck sets the value of the TCP_QUICKACK option on this connection.
//
// If set, ACKs are sent immediately, rather than delayed if needed in
// accordance to normal TCP operation. This only switches the connection to
// or from quickack mode.
func (c *Conn) SetQuickAck(quickack bool) error {
	if c == nil {
		return syscall.EINVAL
	}
	return SetQuickAck(c.TCPConn, quickack)
}

// QuickAck gets the value of the TCP_QUICKACK option on this connection.
//
// See [Conn.SetQuickAck] for more information about this option.
func (c *Conn) QuickAck() (bool, error) {
	if c == nil {
		return false, syscall.EINVAL
	}
	return QuickAck(c.TCPConn)
}

// SetQuickAck sets the value of the TCP_QUICKACK option on c.
func SetQuickAck(c *net.TCPConn, quickack bool) error {
	if c == nil {
		return syscall.EINVAL
	}
	rawConn, err := c.SyscallConn()
	if err != nil {
		return err
	}
	return SetQuickAckRawConn(rawConn, quickack)
}

// QuickAck gets the value of the TCP_QUICKACK option on c.
func QuickAck(c *net.TCPConn) (bool, error) {
	if c == nil {
		return false, syscall.EINVAL
	}
	rawConn, err := c.SyscallConn()
	if err != nil {
		return false, err
	}
	return QuickAckRawConn(rawConn)
}

// SetQuickAckRawConn sets the value of the TCP_QUICKACK option on the socket
// behind rawConn.
func SetQuickAckRawConn(rawConn syscall.RawConn, quickack bool) error {
	var err error
	if cerr := rawConn.Control(func(fd uintptr) {
		err = setQuickAck(fd, quickack)
	}); cerr != nil {
		return cerr
	}
	return wrapSyscallError("setsockopt(TCP_QUICKACK)", err)
}

// QuickAckRawConn gets the value of the TCP_QUICKACK option on the socket
// behind rawConn.
func QuickAckRawConn(rawConn syscall.RawConn) (quickack bool, err error) {
	if cerr := rawConn.Control(func(fd uintptr) {
		quickack, err = getQuickAck(fd)
	}); cerr != nil {
		return false, cerr
	}
	return quickack, wrapSyscallError("getsockopt(TCP_QUICKACK)", err)
}

// wrapSyscallError takes an error and a syscall name. If the error is
// a syscall.Errno, it wraps it in a os.SyscallError using the syscall name.
func wrapSyscallError(name string, err error) error {
	if _, ok := err.(syscall.Errno); ok {
		err = os.NewSyscallError(name, err)
	}
	return err
}
