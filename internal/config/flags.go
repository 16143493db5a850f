package config

import (
	"flag"
)

type flags struct {
	set *flag.FlagSet

	configPath   string
	resolution   int
	minRoughness float64
	maxRoughness float64
	errorSamples int
	threads      int
	brdf         string
	output       string
	seed         int64
	debug        bool
	logFile      string
}

func newFlagSet() *flags {
	f := &flags{set: flag.NewFlagSet("ltc", flag.ContinueOnError)}
	fs := f.set

	fs.StringVar(&f.configPath, "config", "", "path to a YAML settings file")
	fs.IntVar(&f.resolution, "resolution", 0, "resolution of output image")
	fs.IntVar(&f.resolution, "r", 0, "shorthand for -resolution")
	fs.Float64Var(&f.minRoughness, "minroughness", 0, "minimal roughness, should be greater than 0")
	fs.Float64Var(&f.minRoughness, "m", 0, "shorthand for -minroughness")
	fs.Float64Var(&f.maxRoughness, "maxroughness", 0, "maximum roughness")
	fs.Float64Var(&f.maxRoughness, "M", 0, "shorthand for -maxroughness")
	fs.IntVar(&f.errorSamples, "errorsamples", 0, "number of samples during error estimation")
	fs.IntVar(&f.errorSamples, "E", 0, "shorthand for -errorsamples")
	fs.IntVar(&f.threads, "threads", 0, "number of threads")
	fs.IntVar(&f.threads, "j", 0, "shorthand for -threads")
	fs.StringVar(&f.brdf, "brdf", "", "brdf method")
	fs.StringVar(&f.brdf, "b", "", "shorthand for -brdf")
	fs.StringVar(&f.output, "output", "", "output file")
	fs.StringVar(&f.output, "o", "", "shorthand for -output")
	fs.Int64Var(&f.seed, "seed", 0, "random seed")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.logFile, "logfile", "", "also log to this file")

	return f
}

func parseFlags(args []string) (*flags, error) {
	f := newFlagSet()
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply copies only the flags given on the command line.
func (f *flags) apply(cfg *Settings) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "resolution", "r":
			cfg.Resolution = f.resolution
		case "minroughness", "m":
			cfg.MinRoughness = f.minRoughness
		case "maxroughness", "M":
			cfg.MaxRoughness = f.maxRoughness
		case "errorsamples", "E":
			cfg.ErrorSamples = f.errorSamples
		case "threads", "j":
			cfg.Threads = f.threads
		case "brdf", "b":
			cfg.BRDF = f.brdf
		case "output", "o":
			cfg.Output = f.output
		case "seed":
			cfg.Seed = f.seed
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "logfile":
			cfg.Logging.LogFile = f.logFile
		}
	})
}
