//go:build !linux

package quickack

func setQuickAck(fd uintptr, quickack bool) error {
	return ErrPlatformUnsupported
}

func getQuickAck(fd uintptr) (bool, error) {
	return false, ErrPlatformUnsupported
}
