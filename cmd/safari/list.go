package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties and animals",
	Long:  `Shows the difficulty presets and playable animals from the loaded configuration.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-7s  %-5s  %-9s  %s\n", "Key", "Label", "Maze", "Lives", "Predators", "Scared")
	fmt.Printf("  %-8s  %-8s  %-7s  %-5s  %-9s  %s\n", "---", "-----", "----", "-----", "---------", "------")
	for _, d := range cfg.Difficulties {
		maze := fmt.Sprintf("%dx%d", d.MazeWidth, d.MazeHeight)
		fmt.Printf("  %-8s  %-8s  %-7s  %-5d  %-9d  %.1fs\n", d.Key, d.Label, maze, d.Lives, d.Predators, d.FrightenedDuration)
	}

	fmt.Println()
	fmt.Println("Animals:")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %s\n", "Key", "Cooldown", "Ability")
	fmt.Printf("  %-12s  %-8s  %s\n", "---", "--------", "-------")
	for _, a := range cfg.Animals {
		fmt.Printf("  %-12s  %-8s  %s\n", a.Key, fmt.Sprintf("%.0fs", a.Cooldown), a.Ability)
	}

	fmt.Println()
	fmt.Println("Run 'safari play --difficulty <key> --animal <key>' to start directly.")
}
