package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var checkUnsatisfiedFiles []string

var checkUnsatisfiedCmd = &cobra.Command{
	Use:   "check-unsatisfied",
	Short: "Resolve every want across every working agent and print the ones that are unsatisfied",
	Args:  cobra.NoArgs,
	RunE:  runCheckUnsatisfied,
}

func init() {
	checkUnsatisfiedCmd.Flags().StringArrayVarP(&checkUnsatisfiedFiles, "file", "f", nil, "Declaration YAML file (repeatable)")
	checkUnsatisfiedCmd.MarkFlagRequired("file")
}

func runCheckUnsatisfied(cmd *cobra.Command, args []string) error {
	t, err := loadFiles(checkUnsatisfiedFiles)
	if err != nil {
		return err
	}

	type unsatisfiedWant struct {
		agent    string
		behavior string
	}
	var unsatisfied []unsatisfiedWant

	for _, agentName := range t.GetWorkingAgentNames() {
		wants, err := t.GetAgentWants(agentName)
		if err != nil {
			return err
		}
		for want := range wants {
			r := t.Resolve(want)
			if !r.IsSatisfied() {
				unsatisfied = append(unsatisfied, unsatisfiedWant{agent: agentName, behavior: want})
			}
		}
	}

	sort.Slice(unsatisfied, func(i, j int) bool {
		if unsatisfied[i].agent != unsatisfied[j].agent {
			return unsatisfied[i].agent < unsatisfied[j].agent
		}
		return unsatisfied[i].behavior < unsatisfied[j].behavior
	})

	for _, u := range unsatisfied {
		fmt.Printf("%s wants %s (unsatisfied)\n", u.agent, u.behavior)
	}
	return nil
}
