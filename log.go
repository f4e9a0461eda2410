package tcellsixel

type logger struct {
	fn func(string, ...interface{})
}

var sxlog logger

// SetLogger installs a Printf-style sink for diagnostic output. Logging is
// off until one is set.
func SetLogger(l func(string, ...interface{})) {
	sxlog.fn = l
}

func (l *logger) Printf(s string, args ...interface{}) {
	if l.fn == nil {
		return
	}
	l.fn(s, args...)
}
