package logging

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics to keep the
// normal crash behavior. Call it with defer at the start of main.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, r)
	panic(r)
}

func logPanic(logger zerolog.Logger, r any) {
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Str("stack", string(debug.Stack())).
		Msg("PANIC")
}
