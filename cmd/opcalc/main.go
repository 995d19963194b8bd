package main

import (
	"fmt"
	"os"

	"github.com/mamaar/opcalc/internal/cli"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	session := cli.NewSession(os.Stdin, os.Stdout)
	if err := app.Run(session); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
