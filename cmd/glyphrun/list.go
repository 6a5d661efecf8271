package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured entities, assets and bindings",
	Long:  `Prints the entity types, sprite and sound styles, and input bindings defined by the content document.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := loadContent()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Entity types:")
	fmt.Println()

	maxKeyLen := 4 // "Type" header
	for key := range cfg.Entities {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}

	fmt.Printf("  %-*s  %5s  %4s  %6s  %s\n", maxKeyLen, "Type", "Speed", "HP", "Damage", "Sprite")
	fmt.Printf("  %-*s  %5s  %4s  %6s  %s\n", maxKeyLen, "----", "-----", "--", "------", "------")
	for _, key := range sortedKeys(cfg.Entities) {
		et := cfg.Entities[key]
		marker := ""
		if key == cfg.World.Hero {
			marker = "  (hero)"
		}
		fmt.Printf("  %-*s  %5g  %4d  %6d  %s%s\n", maxKeyLen, key, et.Speed, et.HP, et.Damage, et.Sprite, marker)
	}

	fmt.Println()
	fmt.Printf("Sprites: ")
	fmt.Println(joinKeys(cfg.Sprites))
	fmt.Printf("Sounds:  ")
	fmt.Println(joinKeys(cfg.Sounds))

	fmt.Println()
	fmt.Println("Bindings:")
	for _, action := range sortedKeys(cfg.Bindings) {
		fmt.Printf("  %-10s %v\n", action, cfg.Bindings[action])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func joinKeys[V any](m map[string]V) string {
	out := ""
	for i, key := range sortedKeys(m) {
		if i > 0 {
			out += ", "
		}
		out += key
	}
	return out
}
