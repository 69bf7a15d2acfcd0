package main

import (
	"os"

	"github.com/memmaker/targeter/engine/util"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		util.LogSystemError(err.Error())
		os.Exit(2)
	}
	cfg.Apply()

	scenario, err := LoadScenario(cfg.ScenarioFile)
	if err != nil {
		util.LogIOError(err.Error())
		os.Exit(1)
	}
	if err = runPreview(scenario, cfg.Columns, os.Stdout); err != nil {
		util.LogScenarioError(err.Error())
		os.Exit(1)
	}
}
