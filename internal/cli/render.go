package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/r9s-ai/onr-provider-gen/internal/logx"
	"github.com/r9s-ai/onr-provider-gen/internal/watch"
	"github.com/r9s-ai/onr-provider-gen/pkg/confcheck"
	"github.com/r9s-ai/onr-provider-gen/pkg/providerspec"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	specPath   string
	outputDir  string
	overwrite  bool
	stdout     bool
	watchMode  bool
	debounceMs int
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{outputDir: "config/providers", debounceMs: 300}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a provider spec into a *.conf DSL file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.specPath, "spec", "s", "", "provider spec file (yaml or json)")
	fs.StringVarP(&opts.outputDir, "output-dir", "o", "config/providers", "output directory")
	fs.BoolVar(&opts.overwrite, "overwrite", false, "overwrite an existing *.conf file")
	fs.BoolVar(&opts.stdout, "stdout", false, "print the rendered config to stdout only")
	fs.BoolVarP(&opts.watchMode, "watch", "w", false, "re-render whenever the spec file changes")
	fs.IntVar(&opts.debounceMs, "debounce-ms", 300, "watch debounce in milliseconds")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func runRender(opts renderOptions) error {
	if opts.watchMode {
		return runRenderWatch(opts)
	}
	return renderOnce(opts)
}

func renderOnce(opts renderOptions) error {
	data, err := os.ReadFile(opts.specPath)
	if err != nil {
		return fmt.Errorf("read spec file: %w", err)
	}
	spec, err := providerspec.ParseSpec(data)
	if err != nil {
		return err
	}
	doc, err := providerspec.Compile(spec)
	if err != nil {
		return err
	}

	provider := providerspec.ProviderName(spec)
	outName := provider + ".conf"
	if _, err := confcheck.Check(outName, doc); err != nil {
		return fmt.Errorf("rendered config failed syntax check: %w", err)
	}

	if opts.stdout {
		fmt.Print(doc)
		return nil
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outFile := filepath.Join(opts.outputDir, outName)
	if !opts.overwrite {
		if _, err := os.Stat(outFile); err == nil {
			return fmt.Errorf("output file exists: %s (use --overwrite)", outFile)
		}
	}
	if err := os.WriteFile(outFile, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	logx.Okf("wrote provider config: %s", outFile)
	return nil
}

func runRenderWatch(opts renderOptions) error {
	if opts.stdout {
		return fmt.Errorf("--watch and --stdout cannot be combined")
	}

	// The first render keeps the overwrite rule; later renders of the same
	// spec always replace the previous output.
	if err := renderOnce(opts); err != nil {
		if strings.Contains(err.Error(), "use --overwrite") {
			return err
		}
		logx.Errorf("%v", err)
	}
	opts.overwrite = true

	debounce := time.Duration(opts.debounceMs) * time.Millisecond
	closer, err := watch.File(opts.specPath, debounce, func() {
		if err := renderOnce(opts); err != nil {
			logx.Errorf("%v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", opts.specPath, err)
	}
	defer closer.Close()

	logx.Okf("watching %s (debounce %dms), ctrl-c to stop", opts.specPath, opts.debounceMs)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}
