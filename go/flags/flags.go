package flags

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Parse parses os.Args and env into opts.
func Parse(opts any) error {
	return ParseArgs(opts, os.Args[1:])
}

// ParseArgs parses the given args, excluding the program name, into opts.
// Positional arguments are rejected.
func ParseArgs(opts any, args []string) error {
	parser := flags.NewParser(opts, flags.Default)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %v", rest)
	}
	return nil
}

// IsHelp reports whether err was caused by a help flag.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
