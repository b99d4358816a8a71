package cmd

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
)

// hostInfo returns the CPU model name and the number of logical cores
func hostInfo() (string, int) {
	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		logger.Debugf("falling back to runtime core count: %v", err)
		cores = runtime.NumCPU()
	}

	model := "unknown CPU"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		model = infos[0].ModelName
	}

	return model, cores
}
