package gc

import (
	"fmt"
	"os"
)

// fatal reports an unrecoverable runtime condition and aborts the process.
// Per spec §7, fatal runtime errors are not recoverable and are never
// surfaced as Go error values across the collector's API.
func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "typepy runtime: fatal:", msg)
	panic(msg)
}
