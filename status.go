package quickack

// status is the TCP_QUICKACK mode requested on a [Dialer] or [ListenConfig].
type status uint8

const (
	// statusUseDefault leaves the option alone.
	statusUseDefault status = iota
	statusEnabled
	statusDisabled
)

func (s status) configured() bool {
	return s != statusUseDefault
}

func (s status) get() bool {
	return s == statusEnabled
}

func (s *status) set(quickack bool) {
	if quickack {
		*s = statusEnabled
	} else {
		*s = statusDisabled
	}
}
