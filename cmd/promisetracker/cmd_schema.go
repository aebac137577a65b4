package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"promisetracker/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for the declaration Item union",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	out, err := json.MarshalIndent(schema.Item(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
