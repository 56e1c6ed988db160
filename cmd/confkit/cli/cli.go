// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the confkit command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/confkit/confkit"
	"github.com/confkit/confkit/registry"
	"github.com/confkit/confkit/tmplfunc"
)

// Codec constructs a confkit.Source from raw config bytes.
type Codec func(io.Reader) confkit.Source

func newCodecs() *registry.Registry[Codec] {
	codecs := registry.New[Codec]()
	for ext, codec := range map[string]Codec{
		".json": func(r io.Reader) confkit.Source { return confkit.FromJson(r) },
		".yaml": func(r io.Reader) confkit.Source { return confkit.FromYaml(r) },
		".yml":  func(r io.Reader) confkit.Source { return confkit.FromYaml(r) },
		".toml": func(r io.Reader) confkit.Source { return confkit.FromToml(r) },
	} {
		// registration happens once at startup so a duplicate
		// extension is a programming error
		err := codecs.Register(ext, codec)
		if err != nil {
			panic(err)
		}
	}
	return codecs
}

type options struct {
	output   string
	useEnv   bool
	sets     []string
	template bool
	verbose  bool
}

// New returns the root confkit command.
func New() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "confkit",
		Short:        "Overlay configuration layers and inspect the result",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "yaml", "output format (yaml or json)")
	cmd.PersistentFlags().BoolVar(&opts.useEnv, "env", false, "overlay process environment variables")
	cmd.PersistentFlags().StringArrayVar(&opts.sets, "set", nil, "override a single key e.g. --set http.port=8080 (repeatable)")
	cmd.PersistentFlags().BoolVar(&opts.template, "template", false, "render config files as text templates before parsing")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		renderCmd(&opts),
		getCmd(&opts),
	)
	return cmd
}

func renderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file...]",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := read(opts, args)
			if err != nil {
				return err
			}

			effective, err := m.Snapshot()
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), opts.output, map[string]any(effective))
		},
	}
}

func getCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get key [file...]",
		Short: "Print a single effective configuration value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := read(opts, args[1:])
			if err != nil {
				return err
			}

			v, err := m.Get(args[0])
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), opts.output, v)
		},
	}
}

func read(opts *options, files []string) (*confkit.Manager, error) {
	log := zap.NewNop()
	if opts.verbose {
		log = zap.Must(zap.NewDevelopment())
	}
	defer func() {
		_ = log.Sync()
	}()

	codecs := newCodecs()

	srcs := make([]confkit.Source, 0, len(files)+2)
	for _, path := range files {
		codec, err := codecs.Lookup(filepath.Ext(path))
		if err != nil {
			return nil, err
		}

		var r io.Reader = confkit.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if opts.template {
			r = confkit.RenderTextTemplate(
				r,
				confkit.TemplateFunc("env", tmplfunc.Env),
				confkit.TemplateFunc("default", tmplfunc.Default),
			)
		}

		log.Debug("applying config file", zap.String("path", path))
		srcs = append(srcs, codec(r))
	}

	if opts.useEnv {
		log.Debug("applying process environment")
		srcs = append(srcs, confkit.FromEnv())
	}

	if len(opts.sets) > 0 {
		overrides, err := parseSetPairs(opts.sets)
		if err != nil {
			return nil, err
		}
		log.Debug("applying --set overrides", zap.Int("count", len(opts.sets)))
		srcs = append(srcs, overrides)
	}

	return confkit.Read(srcs...)
}

// InvalidSetPairError occurs when a --set flag value is not of the
// form key=value.
type InvalidSetPairError struct {
	Pair string
}

// Error implements the error interface.
func (e InvalidSetPairError) Error() string {
	return fmt.Sprintf("--set expects key=value, got: %s", e.Pair)
}

func parseSetPairs(pairs []string) (confkit.Map, error) {
	m := make(confkit.Map, len(pairs))
	for _, pair := range pairs {
		k, raw, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, InvalidSetPairError{Pair: pair}
		}

		// parse the value as a YAML scalar so 8080, true and
		// quoted strings all keep their natural types
		var v any
		err := yaml.Unmarshal([]byte(raw), &v)
		if err != nil {
			return nil, err
		}

		cur := map[string]any(m)
		keys := strings.Split(k, ".")
		for _, name := range keys[:len(keys)-1] {
			sub, ok := cur[name].(map[string]any)
			if !ok {
				sub = make(map[string]any)
				cur[name] = sub
			}
			cur = sub
		}
		cur[keys[len(keys)-1]] = v
	}
	return m, nil
}

// UnknownOutputFormatError occurs when the --output flag names a
// format other than yaml or json.
type UnknownOutputFormatError struct {
	Format string
}

// Error implements the error interface.
func (e UnknownOutputFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return UnknownOutputFormatError{Format: format}
	}
}
