package main

import (
	"flag"

	"github.com/patrick-goecommerce/cp437term/internal/config"
)

// parseArgs reads --bps and --palette flags into config.Options, leaving
// the remaining positional arguments (the file to play) in args.
func parseArgs(argv []string) (config.Options, []string, error) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	bps := fs.Int("bps", 0, "bits per second (0 = unthrottled)")
	pal := fs.String("palette", "VGA", "VGA or CGA")
	if err := fs.Parse(argv); err != nil {
		return config.Options{}, nil, err
	}

	opts := config.DefaultOptions()
	opts.BPS = *bps
	opts.Palette = *pal
	return opts, fs.Args(), nil
}
