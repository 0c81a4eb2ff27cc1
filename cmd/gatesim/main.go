// Command gatesim runs the location gating flow against a simulated device.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

// GlobalOptions apply to every command.
type GlobalOptions struct {
	ZonesFile   string `long:"zones-file"   env:"GATESIM_ZONES_FILE"   description:"GeoJSON zone document, overrides the configured zone source"`
	ZoneService string `long:"zone-service" env:"GATESIM_ZONE_SERVICE" description:"Base URL of a zoned instance to query instead of loading zones"`
	Store       string `long:"store"        env:"GATESIM_STORE"        description:"Where addresses and the setup flag live" choice:"memory" choice:"postgres" default:"memory"`
	DeviceID    string `long:"device-id"    env:"GATESIM_DEVICE_ID"    description:"Guest device id the session runs for" default:"gatesim"`
	UserID      string `long:"user-id"      env:"GATESIM_USER_ID"      description:"Signed-in user id (uuid), replaces the guest identity"`
	Verbose     bool   `short:"v" long:"verbose" description:"Log at debug level"`
}

func main() {
	var opts GlobalOptions
	parser := flags.NewParser(&opts, flags.Default)

	mustAddCommand(parser, "run", "Run one gating session",
		"Drives a gating session on a scripted device until it rests.", &runCommand{global: &opts})
	mustAddCommand(parser, "manual", "Validate a manually chosen location",
		"Validates coordinates, or the best match of a places query, without GPS.", &manualCommand{global: &opts})
	mustAddCommand(parser, "zones", "List delivery zones",
		"Loads the zone source and prints the active zones.", &zonesCommand{global: &opts})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}
