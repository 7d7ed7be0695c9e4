package bench

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"runtime/pprof"
)

// Debug enables Debugf output.
var Debug = false

var debugOut io.Writer = os.Stderr

// SetDebugOutput redirects Debugf, stderr by default.
func SetDebugOutput(w io.Writer) { debugOut = w }

func Debugf(format string, args ...any) {
	if !Debug {
		return
	}
	fmt.Fprintf(debugOut, "[DEBUG] "+format+"\n", args...)
}

// StartProfile writes a CPU profile to path until the returned stop
// function is called.
func StartProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

// PrintGCStats writes the collector totals accumulated so far.
func PrintGCStats(w io.Writer) {
	var st debug.GCStats
	debug.ReadGCStats(&st)
	recent := st.Pause
	if len(recent) > 7 {
		recent = recent[:7]
	}
	fmt.Fprintf(w, "Total GC Time: %s\n", st.PauseTotal)
	fmt.Fprintf(w, "Recent GC Times: %+v\n", recent)
	fmt.Fprintf(w, "Total GC Runs: %d\n", st.NumGC)
}
