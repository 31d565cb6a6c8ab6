package main

import (
	"github.com/consensys/go-laurent/pkg/cmd"
)

func main() {
	cmd.Execute()
}
