package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flint/internal/prof"
)

// stopProfiles is replaced once profiling starts; main calls it after the
// command returns, whatever its result.
var stopProfiles = func() error { return nil }

func startProfiles(cmd *cobra.Command, _ []string) error {
	var p prof.Profiles
	var err error
	flags := cmd.Flags()
	if p.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if p.Mem, err = flags.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if p.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if p == (prof.Profiles{}) {
		return nil
	}
	stop, err := prof.Start(p)
	if err != nil {
		return err
	}
	stopProfiles = func() error {
		stopProfiles = func() error { return nil }
		return stop()
	}
	return nil
}
