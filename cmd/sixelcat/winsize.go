package main

import (
	"syscall"
	"unsafe"
)

const tiocgwinsz = 0x5413

type winSize struct {
	rows   int16
	cols   int16
	xPixel int16
	yPixel int16
}

func ioctl(fd, op, arg uintptr) error {
	_, _, ep := syscall.Syscall(syscall.SYS_IOCTL, fd, op, arg)
	if ep != 0 {
		return syscall.Errno(ep)
	}
	return nil
}

// getWinSize queries the controlling terminal for its geometry, including
// the pixel dimensions some terminals report.
func getWinSize() (sz winSize, err error) {
	for fd := uintptr(0); fd < 3; fd++ {
		if err = ioctl(fd, tiocgwinsz, uintptr(unsafe.Pointer(&sz))); err == nil && sz.xPixel != 0 && sz.yPixel != 0 {
			return sz, nil
		}
	}
	return sz, err
}

// cellSize derives the per-cell pixel dimensions, or zeros when the
// terminal does not report pixels and the caller should fall back.
func (sz winSize) cellSize() (int, int) {
	if sz.cols <= 0 || sz.rows <= 0 {
		return 0, 0
	}
	return int(sz.xPixel) / int(sz.cols), int(sz.yPixel) / int(sz.rows)
}
