// Package sysinfo reports the host characteristics that matter when reading
// benchmark numbers: core count and the CPU extensions the multiword kernels
// can profit from (math/bits compiles to MULX/ADCX on amd64 with BMI2/ADX).
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info describes the machine a benchmark ran on.
type Info struct {
	GOOS       string   `json:"os"`
	GOARCH     string   `json:"arch"`
	NumCPU     int      `json:"num_cpu"`
	GOMAXPROCS int      `json:"gomaxprocs"`
	Features   []string `json:"features"`
}

// Detect inspects the running host.
func Detect() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   features(runtime.GOARCH),
	}
}

func features(arch string) []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch arch {
	case "amd64", "386":
		add(cpu.X86.HasBMI2, "bmi2")
		add(cpu.X86.HasADX, "adx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ, "avx512")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return out
}

// String renders the info on one line, e.g.
// "linux/amd64, 8 CPUs (GOMAXPROCS 8), features: bmi2 adx avx2".
func (i Info) String() string {
	feat := "none"
	if len(i.Features) > 0 {
		feat = strings.Join(i.Features, " ")
	}
	return fmt.Sprintf("%s/%s, %d CPUs (GOMAXPROCS %d), features: %s",
		i.GOOS, i.GOARCH, i.NumCPU, i.GOMAXPROCS, feat)
}
