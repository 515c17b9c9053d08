package main

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskvault/internal/client/cli"
	"github.com/dmitrijs2005/taskvault/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	fmt.Println("taskvault CLI (type 'help' for commands)")

	app := cli.NewApp(cfg)
	app.Run(ctx)

}
