/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Command optoflood wires the OptoFlood core (TFIB, Flood Controller,
// wire codec, forwarder hook) to a host-forwarder stub and runs it until
// interrupted. A real deployment embeds the fw.Hook in an actual NDN
// forwarder instead of running this binary standalone.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/named-data/optoflood/core"
	"github.com/named-data/optoflood/face"
	"github.com/named-data/optoflood/fw"
	"github.com/named-data/optoflood/table"
	"github.com/spf13/cobra"
)

// Version of OptoFlood.
var Version string

// BuildTime contains the timestamp of when this build was produced.
var BuildTime string

var configFile string

var rootCmd = &cobra.Command{
	Use:     "optoflood",
	Short:   "OptoFlood producer-mobility recovery forwarder core",
	Version: versionString(),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to optoflood.toml (defaults used if omitted)")
}

func versionString() string {
	return fmt.Sprintf("%s (built %s)", orDefault(Version, "dev"), orDefault(BuildTime, "unknown"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func run(cmd *cobra.Command, args []string) error {
	core.Version = Version
	core.BuildTime = BuildTime
	core.StartTimestamp = time.Now()

	core.LoadConfig(configFile)
	core.InitializeLogger()
	core.LogInfo("Main", "Starting OptoFlood "+versionString())

	cfg := core.LoadOptoFloodConfig()
	faces := face.NewTable()
	stub := hostStub{}
	sched := fw.NewTimerScheduler(8)

	hook := fw.NewHook(cfg, faces, stub, stub, stub, sched, nil)
	hook.Controller.Tfib().OnAfterInsert(func(e *table.TfibEntry) {
		// A real deployment hands this to the routing daemon (e.g. NLSR)
		// to originate a fast link-state advertisement (§6 afterInsert).
		core.LogInfo("Main", "TFIB route installed for "+e.Prefix.String())
	})
	hook.Start(cfg)
	defer hook.Stop()

	core.LogInfo("Main", "OptoFlood running; sweeping TFIB every "+cfg.CleanupInterval.String()+", dedup every "+(cfg.FloodIDTTL/5).String())

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		core.LogInfo("Main", "Received signal "+sig.String()+" - shutting down")
		close(stop)
	}()

	// Run is the single reactor goroutine: every TFIB/dedup sweep this
	// binary drives executes here, never concurrently with itself.
	sched.Run(stop)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
