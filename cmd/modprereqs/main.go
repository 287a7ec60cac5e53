package main

import (
	"github.com/spf13/cobra"

	"modscan/internal/cli"
	"modscan/internal/config"
)

func main() {
	config.InitViper()

	cobra.CheckErr(cli.NewPrereqsCommand().Execute())
}
