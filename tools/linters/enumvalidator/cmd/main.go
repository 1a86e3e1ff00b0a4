package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"launchloom.app/studio/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
