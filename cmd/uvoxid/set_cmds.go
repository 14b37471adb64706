package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvoxid"
	"github.com/arloliu/uvoxid/codeset"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/spatial"
)

func newPackCmd(a *app) *cobra.Command {
	var (
		in          string
		out         string
		compression string
		sorted      bool
		unique      bool
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack codes, one per line, into a code set file",
		Long: `Read codes in any text form, one per line, and write them as a code set.
Blank lines and lines starting with "#" are skipped. Input is read from stdin
unless --in is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := cmd.InOrStdin()
			if in != "" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			codes, err := a.readCodes(r)
			if err != nil {
				return err
			}

			comp := a.cfg.Compression
			if compression != "" {
				comp, err = format.ParseCompressionType(compression)
				if err != nil {
					return err
				}
			}

			opts := []codeset.EncoderOption{codeset.WithCompression(comp)}
			if sorted {
				opts = append(opts, codeset.WithSorted())
			}
			if unique {
				opts = append(opts, codeset.WithUnique())
			}

			data, err := uvoxid.PackCodes(codes, opts...)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}

			a.logger.Info("packed codes",
				"count", len(codes),
				"compression", comp.String(),
				"raw_bytes", len(codes)*spatial.Size,
				"bytes", len(data),
				"out", out,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d codes into %s (%d bytes, %s)\n", len(codes), out, len(data), comp)

			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file with one code per line (default stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output code set file (required)")
	cmd.Flags().StringVarP(&compression, "compression", "c", "", "Compression: none, zstd, s2 or lz4")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort codes before packing")
	cmd.Flags().BoolVar(&unique, "unique", false, "Reject duplicate codes")

	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	return cmd
}

func (a *app) readCodes(r io.Reader) ([]spatial.Code, error) {
	var codes []spatial.Code

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := a.parseCode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return codes, nil
}

func newUnpackCmd(a *app) *cobra.Command {
	var (
		in   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Print the codes stored in a code set file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			set, err := uvoxid.UnpackCodes(data)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			a.logger.Info("unpacked codes",
				"count", set.Len(),
				"compression", set.Compression().String(),
				"sorted", set.IsSorted(),
				"bytes", len(data),
			)

			f, err := a.textFormat(name)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, c := range set.All() {
				s, err := uvoxid.Format(c, f)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, s)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Code set file (required)")
	cmd.Flags().StringVarP(&name, "format", "f", "", "Output format: hex, base32 or compact")

	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(err)
	}

	return cmd
}
