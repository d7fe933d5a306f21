// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

// texres resolves, inspects and bakes textures for a GameData install.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/texres"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: texres [-config file] [-root dir] <command> [args]

commands:
  resolve <logical>...            print the file each logical path resolves to
  inspect <file.dds>...           print DDS header fields
  check [-j n] <logical>...       load every path and report failures
  bake [-format dxt5] [-mips n] [-fast] <in> <out.dds>
                                  encode an image into a DDS file
`

var (
	configPath = flag.String("config", "", "TOML config file")
	rootDir    = flag.String("root", "", "install root; overrides config and executable location")
)

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "texres: %v\n", err)
		if errors.Is(err, texres.ErrConfiguration) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func run(cmd string, args []string, stdout, stderr io.Writer) error {
	switch cmd {
	case "resolve":
		r, err := newResolver(stderr)
		if err != nil {
			return err
		}
		return resolve(r, args, stdout)
	case "check":
		return check(args, stdout, stderr)
	case "inspect":
		return inspect(args, stdout)
	case "bake":
		return bake(args, stdout)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newResolver(stderr io.Writer) (*texres.Resolver, error) {
	cfg := texres.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = texres.LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}
	if *rootDir != "" {
		cfg.Root = *rootDir
	}

	root, err := cfg.ResolveRoot()
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	opts, err := cfg.Options(stderr)
	if err != nil {
		return nil, err
	}

	return texres.New(root, opts), nil
}

func resolve(r *texres.Resolver, args []string, w io.Writer) error {
	missing := 0
	for _, p := range args {
		rp, err := r.Resolve(p)
		if err != nil {
			fmt.Fprintf(w, "%s\tnot found\n", p)
			missing++
			continue
		}
		branch := "image"
		if rp.IsDDS {
			branch = "dds"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p, rp.Path, branch)
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d paths not found", missing, len(args))
	}
	return nil
}

func inspect(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "read full 32-bit dimensions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	parse := texres.ParseHeader
	if *strict {
		parse = texres.ParseHeaderStrict
	}

	for _, path := range fs.Args() {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %v", texres.ErrReadFile, err)
		}
		info, err := parse(b)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(w, "%s\t%dx%d\tfourcc=%q\tformat=%s\tmips=%d\tpayload=%d\n",
			path, info.Width, info.Height, info.FourCCString(), info.Format, info.MipMapCount, len(b)-texres.HeaderSize)
	}
	return nil
}

func check(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	jobs := fs.Int("j", runtime.NumCPU(), "concurrent loads")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := newResolver(stderr)
	if err != nil {
		return err
	}

	var (
		mu     sync.Mutex
		failed int
	)
	var eg errgroup.Group
	eg.SetLimit(max(*jobs, 1))
	for _, p := range fs.Args() {
		eg.Go(func() error {
			tex, err := r.Load(p)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				fmt.Fprintf(stdout, "FAIL\t%s\t%v\n", p, err)
				return nil
			}
			fmt.Fprintf(stdout, "ok\t%s\t%dx%d %s\n", p, tex.Width, tex.Height, tex.Format)
			return nil
		})
	}
	_ = eg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d textures failed", failed, fs.NArg())
	}
	return nil
}

func bake(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("bake", flag.ContinueOnError)
	formatName := fs.String("format", "dxt5", "dxt1 or dxt5")
	mips := fs.Int("mips", 0, "max mip levels; 0 for the full chain")
	fast := fs.Bool("fast", false, "favour encode speed over quality")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("bake needs <in> <out.dds>")
	}

	format, err := texres.ParseFormat(*formatName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, *formatName)
	}

	in, out := fs.Arg(0), fs.Arg(1)
	b, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("%w: %v", texres.ErrReadFile, err)
	}
	src, err := texres.StdDecoder{}.Decode(b)
	if err != nil {
		return err
	}
	img, err := src.Image(nil)
	if err != nil {
		return err
	}

	opts := &texres.EncodeOptions{MaxMipMaps: *mips}
	if *fast {
		opts.EncodeOptions = &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast}
	}
	tex, err := texres.Encode(img, format, opts)
	if err != nil {
		return err
	}
	if err := texres.WriteDDSFile(out, tex); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\t%dx%d %s\t%d bytes\n", out, tex.Width, tex.Height, tex.Format, len(tex.Data)+texres.HeaderSize)
	return nil
}
