package quickack

import "golang.org/x/sys/unix"

func setQuickAck(fd uintptr, quickack bool) error {
	return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_QUICKACK, boolint(quickack))
}

func getQuickAck(fd uintptr) (bool, error) {
	v, err := unix.GetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_QUICKACK)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func boolint(b bool) int {
	if b {
		return 1
	}
	return 0
}
