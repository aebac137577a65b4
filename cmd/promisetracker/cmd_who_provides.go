package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoProvidesFiles []string

var whoProvidesCmd = &cobra.Command{
	Use:   "who-provides <agent>",
	Short: "Print the sorted list of behaviors a working agent provides",
	Args:  cobra.ExactArgs(1),
	RunE:  runWhoProvides,
}

func init() {
	whoProvidesCmd.Flags().StringArrayVarP(&whoProvidesFiles, "file", "f", nil, "Declaration YAML file (repeatable)")
	whoProvidesCmd.MarkFlagRequired("file")
}

func runWhoProvides(cmd *cobra.Command, args []string) error {
	agentName := args[0]

	t, err := loadFiles(whoProvidesFiles)
	if err != nil {
		return err
	}

	provides, err := t.GetAgentProvides(agentName)
	if err != nil {
		return err
	}
	for _, b := range provides {
		fmt.Println(b)
	}
	return nil
}
