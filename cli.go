// This file is part of the program "tilewm".
// Please see the LICENSE file for copyright information.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// CLIOpts holds the parsed command-line flags: -c FILE | -d DISPLAY | -h |
// -k check-only | -n no-randr | -r replace | -s DIR | -v | -l LEVELS | -D.
type CLIOpts struct {
	configFile string
	display    string
	checkOnly  bool
	noRandr    bool
	replace    bool
	sockDir    string
	verbose    bool
	logLevels  string
	daemonize  bool
}

func parseCLIOpts() CLIOpts {
	var opt CLIOpts
	flag.StringVar(&opt.configFile, "c", defaultConfigPath(), "Path to the configuration file")
	flag.StringVar(&opt.display, "d", "", "X11 display to connect to (default $DISPLAY)")
	flag.BoolVar(&opt.checkOnly, "k", false, "Check the configuration file for errors and exit")
	flag.BoolVar(&opt.noRandr, "n", false, "Disable Xrandr screen enumeration, use Xinerama or a single screen")
	flag.BoolVar(&opt.replace, "r", false, "Replace a running window manager")
	flag.StringVar(&opt.sockDir, "s", defaultSocketDir(), "Directory for sublet sockets")
	flag.BoolVar(&opt.verbose, "v", false, "Verbose output (print logs to stderr)")
	flag.StringVar(&opt.logLevels, "l", "", "Comma-separated log levels to enable")
	flag.BoolVar(&opt.daemonize, "D", false, "Daemonize after startup")
	flag.Parse()
	return opt
}

func defaultConfigPath() string {
	return joinHome(".config/tilewm/config.toml")
}

func defaultSocketDir() string {
	return joinHome(".config/tilewm/sockets")
}

func joinHome(rel string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return rel
	}
	return home + "/" + rel
}

// configureLogging sends verbose output to stderr; otherwise logs are
// discarded.
func configureLogging(opt CLIOpts) {
	if opt.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

// exitFatal prints a diagnostic and exits nonzero. Used for startup
// failures severe enough that continuing would leave the process in an
// inconsistent state: no display connection, no selection ownership, no
// usable configuration.
func exitFatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
