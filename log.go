package tempo

import (
	"fmt"
	"io"
	"os"
)

// reportOut receives diagnostics from tick-time code paths that have no error
// return: track write failures, frame persist failures, listener panics, and
// easing selector fallback. Tests may swap it out.
var reportOut io.Writer = os.Stderr

// reportf writes one diagnostic line with the [tempo] prefix.
func reportf(format string, args ...any) {
	_, _ = fmt.Fprintf(reportOut, "[tempo] "+format+"\n", args...)
}
