package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   backend base URL
//	-i int      online check interval (seconds)
//	-t int      login timeout (seconds)
//	-d string   local session database path
//	-o string   CSV export directory
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-d", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	timeout := fs.Int("t", int(cfg.LoginTimeout.Seconds()), "login timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local session database path")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "CSV export directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		case "t":
			cfg.LoginTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
