package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// benchProfile mirrors the [bench] section of a profile file.
type benchProfile struct {
	Iters   uint64 `toml:"iters"`
	Payload int    `toml:"payload"`
	Readers int    `toml:"readers"`
}

type profileFile struct {
	Bench benchProfile `toml:"bench"`
}

// benchSettings resolves the effective bench profile: flag defaults, then the
// TOML profile if one is given, then explicitly set flags on top.
func benchSettings(cmd *cobra.Command) (benchProfile, error) {
	prof := benchProfile{}
	var err error
	if prof.Iters, err = cmd.Flags().GetUint64("iters"); err != nil {
		return prof, fmt.Errorf("failed to get iters flag: %w", err)
	}
	if prof.Payload, err = cmd.Flags().GetInt("payload"); err != nil {
		return prof, fmt.Errorf("failed to get payload flag: %w", err)
	}
	if prof.Readers, err = cmd.Flags().GetInt("readers"); err != nil {
		return prof, fmt.Errorf("failed to get readers flag: %w", err)
	}

	path, err := cmd.Flags().GetString("profile")
	if err != nil {
		return prof, fmt.Errorf("failed to get profile flag: %w", err)
	}
	if path == "" {
		return prof, nil
	}

	fromFile, err := loadProfile(path, prof)
	if err != nil {
		return prof, err
	}
	// Flags set on the command line win over the file.
	if cmd.Flags().Changed("iters") {
		fromFile.Iters = prof.Iters
	}
	if cmd.Flags().Changed("payload") {
		fromFile.Payload = prof.Payload
	}
	if cmd.Flags().Changed("readers") {
		fromFile.Readers = prof.Readers
	}
	return fromFile, nil
}

// loadProfile reads the [bench] section from a TOML profile. Absent keys keep
// the passed-in defaults.
func loadProfile(path string, def benchProfile) (benchProfile, error) {
	cfg := profileFile{Bench: def}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return def, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("bench") {
		return def, nil
	}
	return cfg.Bench, nil
}
