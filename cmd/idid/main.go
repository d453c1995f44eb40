package main

import (
	"context"

	"github.com/jidn/idid-cli/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
