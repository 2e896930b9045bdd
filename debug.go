package tweenjump

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Stage debug flag so that node and
// motion code (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage.
var globalDebug bool

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf writes one prefixed line to debugOut when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[tweenjump] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("tweenjump debug: %s on disposed node %q", op, n.Name))
	}
}
