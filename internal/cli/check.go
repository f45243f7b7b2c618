package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/r9s-ai/onr-provider-gen/internal/logx"
	"github.com/r9s-ai/onr-provider-gen/pkg/confcheck"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Syntax-check provider *.conf files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
}

func runCheck(args []string) error {
	files, err := collectConfFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no *.conf files found")
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := confcheck.Check(path, string(data))
		if err != nil {
			return err
		}
		logx.Okf("%s: providers=[%s]", path, strings.Join(res.Providers, " "))
	}
	return nil
}

func collectConfFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".conf") {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
