// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/animator/base/logx"
	"cogentcore.org/animator/cli"
	"cogentcore.org/animator/cmd/animator/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigFiles are the config files read when no config
// file is given, in order of preference.
var DefaultConfigFiles = []string{"animator.toml", "animator.yaml", "animator.yml"}

// Root returns the root command of the animator tool, with its
// flags bound to the fields of c.
func Root(c *config.Config) *cobra.Command {
	var configFile string
	var vv, v, q bool
	cli.SetFromDefaults(c)

	root := &cobra.Command{
		Use:           "animator",
		Short:         "Render, check, and play animation documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.SetDefault(logx.LevelFromFlags(vv, v, q))
			return loadConfig(cmd, c, configFile)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default animator.toml or animator.yaml if present)")
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	pf.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	pf.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	pf.StringVar(&c.Background, "background", c.Background, "background color")

	render := &cobra.Command{
		Use:   "render <file>",
		Short: "Render frames of a document to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := Render(c, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), logx.SuccessColor(fmt.Sprintf("wrote %d frames", len(names))), logx.CmdColor(c.Render.OutDir))
			return nil
		},
	}
	render.Flags().StringVarP(&c.Render.OutDir, "out", "o", c.Render.OutDir, "output directory")
	render.Flags().Float32Var(&c.Render.FPS, "fps", c.Render.FPS, "frames per second")
	render.Flags().Float32VarP(&c.Render.Duration, "duration", "d", c.Render.Duration, "seconds of document time to render")
	render.Flags().IntVarP(&c.Render.Jobs, "jobs", "j", c.Render.Jobs, "frames encoded at the same time")

	check := &cobra.Command{
		Use:   "check <file or dir>...",
		Short: "Report the problems in documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad, err := Check(c, cmd.OutOrStdout(), args...)
			if err != nil {
				return err
			}
			if bad > 0 {
				return fmt.Errorf("%d documents have problems", bad)
			}
			return nil
		},
	}
	check.Flags().StringVar(&c.Check.Include, "include", c.Check.Include, "pattern of documents to check in directories")
	check.Flags().StringVarP(&c.Check.Format, "format", "f", c.Check.Format, "output format (table or yaml)")

	play := &cobra.Command{
		Use:   "play <file>",
		Short: "Run a document in real time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := Play(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames, %d changed, %d host events, ended at %dms\n", st.Frames, st.Changed, st.Posts, st.End)
			return nil
		},
	}
	play.Flags().Float32Var(&c.Play.FPS, "fps", c.Play.FPS, "maximum frames per second")
	play.Flags().Float32VarP(&c.Play.Duration, "duration", "d", c.Play.Duration, "seconds of document time to play")
	play.Flags().BoolVar(&c.Play.Realtime, "realtime", c.Play.Realtime, "pace frames against the wall clock")

	watch := &cobra.Command{
		Use:   "watch <file>",
		Short: "Write a snapshot of a document each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Watch(cmd.Context(), c, args[0])
		},
	}
	watch.Flags().StringVarP(&c.Watch.Output, "out", "o", c.Watch.Output, "output image file")
	watch.Flags().Float32Var(&c.Watch.Debounce, "debounce", c.Watch.Debounce, "seconds to wait for more changes")

	var at float32
	dump := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print an outline of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Dump(cmd.OutOrStdout(), args[0], at)
		},
	}
	dump.Flags().Float32Var(&at, "at", 0, "seconds to run the document before dumping")

	root.AddCommand(render, check, play, watch, dump)
	return root
}

// loadConfig reads the config file into c and then applies the flags
// set on the command line again, so that they take precedence.
func loadConfig(cmd *cobra.Command, c *config.Config, file string) error {
	set := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return err
		}
		if err := cli.Open(c, file); err != nil {
			return fmt.Errorf("config file %s: %w", file, err)
		}
	} else {
		found, err := cli.OpenDefault(c, DefaultConfigFiles...)
		if err != nil {
			return err
		}
		if found != "" {
			slog.Debug("loaded config", "file", found)
		}
	}
	for name, value := range set {
		if err := cmd.Flags().Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
