package main

import (
	"context"
	"fmt"
	"os"

	"github.com/txhealth/vaxsupply/pkg/interfaces/cli/commands"
)

func main() {
	cmd := commands.NewReportCommand(commands.DefaultConfig())

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
