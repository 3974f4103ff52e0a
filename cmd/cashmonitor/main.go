package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cashmonitor-dev/cashmonitor/internal/commands"
)

func main() {
	// A .env in the working directory can set CASHMONITOR_DATA_DIR.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
