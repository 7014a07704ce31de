package main

import (
	"os"
	"wealthsim/cmd"

	_ "github.com/lib/pq"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
