package main

import "github.com/DjordjeVuckovic/rank-eval/internal/cli"

// version is injected by the linker via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
