package main

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/aish-go/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("AISH_DEBUG"), "1") || strings.EqualFold(os.Getenv("AISH_DEBUG"), "true")
}
