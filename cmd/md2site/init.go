package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// ErrConfigExists is returned when init would overwrite a file.
var ErrConfigExists = errors.New("file already exists")

const starterPage = `# Welcome

This site was generated by **md2site**. Edit ` + "`content/index.md`" + ` and run
` + "`md2site build`" + ` again.
`

const starterCSS = `body {
  margin: 0 auto;
  max-width: 42rem;
  padding: 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}
`

type initFlags struct {
	path     string
	force    bool
	scaffold bool
}

func newInitCmd(env *Environment) *cobra.Command {
	f := &initFlags{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter md2site.yaml",
		Long:  initLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(f, env)
		},
	}
	cmd.Flags().StringVar(&f.path, "file", config.DefaultConfigName+".yaml", "config file to write")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite existing files")
	cmd.Flags().BoolVar(&f.scaffold, "scaffold", false, "also create content/index.md and static/index.css")
	return cmd
}

// starterFile is a file written by init.
type starterFile struct {
	path    string
	content string
}

func runInit(f *initFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	// Scaffold directories sit next to the config file.
	root := filepath.Dir(f.path)
	files := []starterFile{{path: f.path, content: string(data)}}
	if f.scaffold {
		files = append(files,
			starterFile{path: filepath.Join(root, cfg.Content, "index.md"), content: starterPage},
			starterFile{path: filepath.Join(root, cfg.Static, "index.css"), content: starterCSS},
		)
	}

	if !f.force {
		for _, sf := range files {
			if fileutil.FileExists(sf.path) {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, sf.path)
			}
		}
	}

	for _, sf := range files {
		if dir := filepath.Dir(sf.path); dir != "." {
			if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := fileutil.WriteFileAtomic(sf.path, sf.content); err != nil {
			return fmt.Errorf("writing %s: %w", sf.path, err)
		}
		fmt.Fprintf(env.Stdout, "Created %s\n", sf.path)
	}
	return nil
}
