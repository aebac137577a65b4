package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promisetracker/internal/render"
)

var (
	resolveFiles      []string
	resolveCompressed bool
	resolveNoColor    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <behavior>",
	Short: "Resolve a behavior against the declared network and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringArrayVarP(&resolveFiles, "file", "f", nil, "Declaration YAML file (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveCompressed, "compressed", false, "Use compressed layout")
	resolveCmd.Flags().BoolVar(&resolveNoColor, "no-color", false, "Disable colorized output")
	resolveCmd.MarkFlagRequired("file")
}

func runResolve(cmd *cobra.Command, args []string) error {
	behaviorName := args[0]

	t, err := loadFiles(resolveFiles)
	if err != nil {
		return err
	}

	compressed := resolveCompressed
	if cfg != nil && !cmd.Flags().Changed("compressed") {
		compressed = cfg.Render.Compressed
	}
	color := !resolveNoColor
	if cfg != nil && !cmd.Flags().Changed("no-color") {
		color = cfg.Render.Color
	}

	r := t.Resolve(behaviorName)

	var lines []string
	switch {
	case compressed && color:
		lines = render.ToColorizedCompressedStrings(r)
	case compressed:
		lines = render.ToStringsCompressed(r, false)
	case color:
		lines = render.ToColorizedStrings(r)
	default:
		lines = render.ToStrings(r)
	}

	fmt.Println(strings.Join(lines, "\n"))
	return nil
}
