package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"promisetracker/internal/diagram"
)

var diagramFiles []string

var diagramCmd = &cobra.Command{
	Use:   "diagram <component> <behavior>",
	Short: "Print the Mermaid sequence-diagram IR for a resolved behavior",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiagram,
}

func init() {
	diagramCmd.Flags().StringArrayVarP(&diagramFiles, "file", "f", nil, "Declaration YAML file (repeatable)")
	diagramCmd.MarkFlagRequired("file")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	component, behaviorName := args[0], args[1]

	t, err := loadFiles(diagramFiles)
	if err != nil {
		return err
	}

	r := t.Resolve(behaviorName)
	fmt.Println(diagram.Sequence(component, behaviorName, r))
	return nil
}
