package main

import (
	"os"

	"github.com/typelint/typelint/internal/cmd/typelint"
)

func main() {
	os.Exit(typelint.Run(os.Args[1:]))
}
