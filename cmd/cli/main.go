package main

import (
	"context"
	"log"
	"os"

	"github.com/kartiksirsilla09/peersphere-cli/internal/buildinfo"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/cli"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
