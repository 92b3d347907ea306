package main

import "fmt"

var buildTime, buildVersion string

func version() string {
	if buildVersion != "" {
		return buildVersion
	}
	return "dev"
}

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("openlcd: dev")
	}
}
