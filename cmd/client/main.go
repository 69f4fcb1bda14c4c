package main

import (
	"context"

	"github.com/MKhiriev/fit-sync/internal/cli"
	"github.com/MKhiriev/fit-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(context.Background(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
