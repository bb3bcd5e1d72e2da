package main

import "github.com/riftstats/predictor-api/cmd/harvester/cmd"

func main() {
	cmd.Execute()
}
