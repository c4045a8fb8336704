// dptime is a command line tool to derive UTC times from deployment directory names of the form
// "YYYYMMDD_HHMM..." using the deployment time zones table in a settings file.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/sfomuseum/go-media-placemark/deployment"
	"github.com/sfomuseum/go-media-placemark/settings"
)

func main() {

	settings_path := flag.String("settings", "", "The path to a settings YAML file containing a deployment_time_zones table.")
	deployment_id := flag.String("deployment", "", "The deployment (request) ID, for example AMS001_dp0042_2.")
	flag.Parse()

	if *settings_path == "" {
		log.Fatal("Missing -settings flag")
	}

	if *deployment_id == "" {
		log.Fatal("Missing -deployment flag")
	}

	s, err := settings.Load(*settings_path)

	if err != nil {
		log.Fatalf("Failed to load settings, %v", err)
	}

	r, err := s.Resolver()

	if err != nil {
		log.Fatalf("Failed to create resolver, %v", err)
	}

	for _, name := range flag.Args() {

		t, err := r.UTCTimeFromDeploymentName(*deployment_id, name)

		if err != nil {
			log.Fatalf("Failed to derive time for %s, %v", name, err)
		}

		fmt.Printf("%s\t%s\t%s\n", name, deployment.IdSuffix(*deployment_id), t.Format(time.RFC3339))
	}
}
