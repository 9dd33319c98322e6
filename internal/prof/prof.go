package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiles names the files to write; an empty path skips that profile.
type Profiles struct {
	CPU   string
	Mem   string
	Trace string
}

// Start begins the CPU profile and the runtime trace. The returned stop
// ends both and then captures the heap profile. Stop must be called once.
func Start(p Profiles) (stop func() error, err error) {
	var cpuFile, traceFile *os.File
	closeAll := func() error {
		var errs []error
		if cpuFile != nil {
			pprof.StopCPUProfile()
			errs = append(errs, cpuFile.Close())
		}
		if traceFile != nil {
			trace.Stop()
			errs = append(errs, traceFile.Close())
		}
		return errors.Join(errs...)
	}

	if p.CPU != "" {
		f, err := os.Create(p.CPU)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		cpuFile = f
	}
	if p.Trace != "" {
		f, err := os.Create(p.Trace)
		if err != nil {
			_ = closeAll()
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			_ = closeAll()
			return nil, fmt.Errorf("runtime trace: %w", err)
		}
		traceFile = f
	}

	return func() error {
		err := closeAll()
		if p.Mem != "" {
			err = errors.Join(err, writeMem(p.Mem))
		}
		return err
	}, nil
}

// writeMem captures a heap profile after a forced GC.
func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
