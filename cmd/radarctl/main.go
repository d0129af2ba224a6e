package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lvyanru/startupradar/internal/cli/commands"
	"github.com/lvyanru/startupradar/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.PrintError("%s", err.Error())
		if strings.Contains(err.Error(), "unknown command") {
			fmt.Println("\nRun 'radarctl --help' for usage.")
		}
		os.Exit(1)
	}
}
