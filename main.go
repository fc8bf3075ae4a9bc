// RemindMe - an in-memory reminder board with notifications.

package main

import (
	"os"

	"github.com/manav03panchal/remindme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
