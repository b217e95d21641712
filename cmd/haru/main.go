package main

import (
	"os"

	"github.com/haruapp/haru/app"
	"github.com/haruapp/haru/internal/config"
	"github.com/haruapp/haru/internal/log"
	"github.com/haruapp/haru/report"
)

func run(args []string) error {
	config.InitializePaths()

	log.Setup(config.LogFilePath())

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
