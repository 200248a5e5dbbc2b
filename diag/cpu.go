// Package diag reports whether the running CPU exposes AES-NI and
// carryless-multiply instructions. The standard library's AES used by
// mayo/xof.go picks up AES-NI when present; the GF(16) code in
// mayo-go/field is plain shift/XOR Go and uses no carryless-multiply
// instruction.
package diag

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUFeatures summarizes the hardware acceleration available to this
// process: AES (used by the AES-128-CTR pk_seed expansion) and carryless
// multiply (reported only; no code in this module uses it).
type CPUFeatures struct {
	Arch            string
	HasAES          bool
	HasCarrylessMul bool
}

// DetectCPUFeatures inspects the running CPU via golang.org/x/sys/cpu.
func DetectCPUFeatures() CPUFeatures {
	switch runtime.GOARCH {
	case "amd64":
		return CPUFeatures{
			Arch:            runtime.GOARCH,
			HasAES:          cpu.X86.HasAES,
			HasCarrylessMul: cpu.X86.HasPCLMULQDQ,
		}
	case "arm64":
		return CPUFeatures{
			Arch:            runtime.GOARCH,
			HasAES:          cpu.ARM64.HasAES,
			HasCarrylessMul: cpu.ARM64.HasPMULL,
		}
	default:
		return CPUFeatures{Arch: runtime.GOARCH}
	}
}

func (f CPUFeatures) String() string {
	return fmt.Sprintf("arch=%s aes=%t carryless_mul=%t", f.Arch, f.HasAES, f.HasCarrylessMul)
}
