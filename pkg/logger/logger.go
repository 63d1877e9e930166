package logger

import "log"

// Init sets up the bootstrap printf logger used before the structured
// logger is configured.
func Init() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[clubhub] ")
}

// Info logs a printf-style message via the bootstrap logger.
func Info(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// Fatal logs a printf-style message and exits.
func Fatal(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
