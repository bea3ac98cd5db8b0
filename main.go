package main

import (
	"os"

	"github.com/gogo-boot/image-2-c-array/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
