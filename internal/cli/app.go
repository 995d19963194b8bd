package cli

import (
	"log"
)

// App represents the opcalc application
type App struct {
	flags *Flags
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize sets up the application with flags and configuration
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output
	ParseFlags(Usage)
	app.flags = GlobalFlags
}

// Run executes the interactive session
func (app *App) Run(session *Session) error {
	// Handle version flag
	if *app.flags.Version {
		ShowVersion()
		return nil
	}

	session.SetVerbose(*app.flags.Verbose)
	return session.Run()
}
