// Package cli provides the command-line interface for the contactscan application.
package cli

import (
	"github.com/law-makers/contactscan/internal/app"
	"github.com/spf13/cobra"
)

// The application is shared across commands through a package global; cobra
// command contexts are not guaranteed to survive PersistentPreRunE on all
// code paths.
var globalApp *app.Application

// SetApp stores the Application for later retrieval by commands
func SetApp(cmd *cobra.Command, a *app.Application) {
	globalApp = a
}

// GetAppFromCmd retrieves the Application for the running command
func GetAppFromCmd(cmd *cobra.Command) *app.Application {
	return globalApp
}
