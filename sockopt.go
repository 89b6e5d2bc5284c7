package quickack

// SetQuickAckFD sets the value of the TCP_QUICKACK option on the socket fd.
// The returned error, if any, is the raw errno from setsockopt(2).
func SetQuickAckFD(fd uintptr, quickack bool) error {
	return setQuickAck(fd, quickack) // sockopt_linux.go, sockopt_stub.go
}

// QuickAckFD gets the value of the TCP_QUICKACK option on the socket fd.
// The returned error, if any, is the raw errno from getsockopt(2).
func QuickAckFD(fd uintptr) (bool, error) {
	return getQuickAck(fd) // sockopt_linux.go, sockopt_stub.go
}
