// generate-pwa-icons writes the PWA icon set under ./icons and a favicon.ico
// into the current working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/malonaz/pwa-icons/go/flags"
	"github.com/malonaz/pwa-icons/go/icon"
	"github.com/malonaz/pwa-icons/go/iconset"
	"github.com/malonaz/pwa-icons/go/logging"
)

var alternativeGenerators = []string{
	"https://realfavicongenerator.net/",
	"https://www.favicon-generator.org/",
	"https://favicon.io/",
}

// reportedError marks a failure already explained to the user on stdout.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

type options struct {
	Logging logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], ".", os.Stdout); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			slog.ErrorContext(ctx, "running", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, root string, out io.Writer) error {
	var opts options
	if err := flags.ParseArgs(&opts, args); err != nil {
		if flags.IsHelp(err) {
			return nil
		}
		return err
	}
	if err := logging.Init(&opts.Logging); err != nil {
		return err
	}

	renderer := icon.NewRenderer(icon.DefaultFontChain())
	if _, err := iconset.NewGenerator(root, out, renderer).Run(ctx); err != nil {
		report(out, err)
		return &reportedError{err: err}
	}
	return nil
}

// report prints the user-facing explanation for a failed run.
func report(out io.Writer, err error) {
	if errors.Is(err, iconset.ErrMissingImagingLibrary) {
		fmt.Fprintln(out, "❌ Imaging library not found. Install it with:")
		fmt.Fprintln(out, "   go get github.com/golang/freetype github.com/sergeymakinen/go-ico golang.org/x/image")
		return
	}
	fmt.Fprintf(out, "❌ Error generating icons: %v\n", err)
	fmt.Fprintln(out, "\nAlternative: Use online icon generators like:")
	for _, url := range alternativeGenerators {
		fmt.Fprintf(out, "  - %s\n", url)
	}
}
