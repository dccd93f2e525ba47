package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcticline/icefloe/internal/logic"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List built-in move strategies",
	Long:  `Shows the move strategies the play command can use.`,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	strategies := logic.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range strategies {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'icefloe play --strategy <name>' to use one.")
}
