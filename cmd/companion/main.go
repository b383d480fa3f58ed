// Command companion is a terminal client for the Valley Companion API. It looks
// up game data and keeps a local crop plan and favorite recipes.
package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdout)
	defer a.close()

	if err := newRootCmd(a).Execute(); err != nil {
		// cobra has already printed the error
		a.close()
		os.Exit(1)
	}
}
