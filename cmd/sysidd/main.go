package main

import (
	"log"
	"os"

	"github.com/identops/sysid/internal/config"
	"github.com/identops/sysid/internal/hostfs"
	"github.com/identops/sysid/internal/logger"
	"github.com/identops/sysid/internal/server"
	"github.com/identops/sysid/internal/sysid"
)

func main() {
	cfgPath := getenvDefault("SYSIDD_CONFIG", "/etc/sysidd.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.LogDir); err != nil {
		log.Fatal(err)
	}
	defer logger.Close()
	hostfs.SetRoot(cfg.HostRoot)

	// Host identity is a precondition for everything else the daemon
	// serves; refuse to start without it.
	node, err := sysid.Nodename()
	if err != nil {
		exitIdentityFailure(err)
	}
	zone, err := sysid.Zonename()
	if err != nil {
		exitIdentityFailure(err)
	}
	logger.Info("sysidd on node %s (zone %s, id %d)", node, zone, sysid.ZoneID())

	srv := server.New(cfg)
	logger.Info("sysidd listening on %s", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server: %v", err)
		os.Exit(1)
	}
}

func exitIdentityFailure(err error) {
	logger.Error("%v", err)
	if sysid.IsUnrecoverable(err) {
		os.Exit(sysid.FatalExitStatus)
	}
	os.Exit(1)
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
