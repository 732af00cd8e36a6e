// Command relaypad prices numeric door codes relayed through chains of
// directional-keypad robots. It reads one code per line from a file
// argument or stdin and prints two weighted totals: one for the shallow
// relay depth, one for the deep.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/relaypad/codes"
	"github.com/katalvlaran/relaypad/relay"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "relaypad:", err)
		os.Exit(1)
	}
}

// run parses flags and config, reads the codes, and writes the two totals.
// Precedence, lowest to highest: defaults, config file, explicit flags.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("relaypad", flag.ContinueOnError)
	shallow := fs.Int("shallow", relay.DefaultOptions().ShallowDepth, "relay depth for the first total")
	deep := fs.Int("deep", relay.DefaultOptions().DeepDepth, "relay depth for the second total")
	workers := fs.Int("workers", 1, "number of codes priced concurrently")
	configPath := fs.String("config", "", "optional HuJSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := relay.DefaultOptions()
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg.apply(&opts)
	}
	if fs.Changed("shallow") {
		opts.ShallowDepth = *shallow
	}
	if fs.Changed("deep") {
		opts.DeepDepth = *deep
	}
	if fs.Changed("workers") {
		opts.Workers = *workers
	}

	input := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	cs, err := codes.ParseAll(input)
	if err != nil {
		return err
	}

	totals, err := relay.Sum(cs, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, totals.Shallow)
	fmt.Fprintln(stdout, totals.Deep)
	return nil
}
