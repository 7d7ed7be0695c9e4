package bench

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
)

// CPUFeatures lists the vector extensions relevant to the kernels.
func CPUFeatures() []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return fs
}

// Header describes the machine and the SIMD target the batch kernels run on.
func Header() string {
	fs := "none"
	if f := CPUFeatures(); len(f) > 0 {
		fs = strings.Join(f, " ")
	}
	return fmt.Sprintf("%s/%s %s, cpu: %s, hwy: %s (%d x float64, %d x int32)",
		runtime.GOOS, runtime.GOARCH, runtime.Version(), fs,
		hwy.CurrentName(), hwy.MaxLanes[float64](), hwy.MaxLanes[int32]())
}
