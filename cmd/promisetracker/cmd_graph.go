package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"promisetracker/internal/graph"
)

var graphFiles []string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the network-graph IR (nodes and links) as JSON",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().StringArrayVarP(&graphFiles, "file", "f", nil, "Declaration YAML file (repeatable)")
	graphCmd.MarkFlagRequired("file")
}

func runGraph(cmd *cobra.Command, args []string) error {
	t, err := loadFiles(graphFiles)
	if err != nil {
		return err
	}

	data := graph.Network(t)
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
