package main

import (
	"os"

	"github.com/couchcryptid/weather-viz/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
