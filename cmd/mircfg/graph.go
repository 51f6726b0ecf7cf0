package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"mircfg/internal/config"
	"mircfg/internal/objfile"
	"mircfg/internal/observ"
	"mircfg/internal/pack"
	"mircfg/internal/render"
)

func init() {
	rootCmd.Flags().String("out-dir", render.DefaultOutDir, "directory for graph and image files")
	rootCmd.Flags().String("format", render.DefaultFormat, "renderer output format")
	rootCmd.Flags().String("renderer", render.DefaultProgram, "graph layout program to invoke")
	rootCmd.Flags().String("section", objfile.MIRSection, "artifact section holding the MIR pack")
}

func runGraph(cmd *cobra.Command, args []string) error {
	artifact := args[0]

	cfg, _, err := config.Load(config.FileName)
	if err != nil {
		return err
	}

	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	section := settingFor(cmd, "section", cfg.Section, objfile.MIRSection)
	r := &render.Renderer{
		Program: settingFor(cmd, "renderer", cfg.Renderer, render.DefaultProgram),
		Format:  settingFor(cmd, "format", cfg.Format, render.DefaultFormat),
		OutDir:  settingFor(cmd, "out-dir", cfg.OutDir, render.DefaultOutDir),
	}

	timer := observ.NewTimer()
	phase := timer.Begin("extract section")
	data, err := objfile.SectionData(artifact, section)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d bytes", len(data)))

	dec := pack.NewDecoder(bytes.NewReader(data))
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to decode %s section: %w", section, err)
		}
		body := rec.Body

		phase = timer.Begin(body.DefID.String())
		fmt.Fprintln(cmd.OutOrStdout(), body.DefID)
		res, err := r.Render(body)
		if err != nil {
			return err
		}
		timer.End(phase, filepath.Base(res.ImagePath))
	}

	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return nil
}

// settingFor resolves one renderer setting: an explicitly set flag wins,
// then the config file, then the built-in default.
func settingFor(cmd *cobra.Command, flag, fromConfig, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fallback
}
