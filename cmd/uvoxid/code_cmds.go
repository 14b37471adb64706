package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvoxid"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/spatial"
	"github.com/arloliu/uvoxid/tolerance"
)

const formatAll = "all"

var allFormats = []format.TextFormat{format.TextHex, format.TextBase32, format.TextBase32Compact}

func (a *app) parseCode(s string) (spatial.Code, error) {
	c, f, err := uvoxid.Parse(s)
	if err != nil {
		return spatial.Zero, err
	}
	a.logger.Debug("parsed code", "input", s, "format", f.String())

	return c, nil
}

// printCode writes c in the named format, or in every format for "all".
func (a *app) printCode(cmd *cobra.Command, c spatial.Code, name string) error {
	out := cmd.OutOrStdout()
	if name == formatAll {
		for _, f := range allFormats {
			s, err := uvoxid.Format(c, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-14s %s\n", f.String()+":", s)
		}

		return nil
	}

	f, err := a.textFormat(name)
	if err != nil {
		return err
	}
	s, err := uvoxid.Format(c, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)

	return nil
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		degrees bool
		name    string
	)

	cmd := &cobra.Command{
		Use:   "encode [flags] -- RADIUS_UM LAT LON",
		Short: "Encode a radius and a latitude/longitude pair",
		Long: `Encode a radius in micrometers and a latitude/longitude pair into a spatial code.
Angles are micro-degrees unless --degrees is given. Put "--" before the
arguments when an angle is negative.`,
		Example: `  uvoxid encode -- 6371000000000 25760000 -80190000
  uvoxid encode --degrees --format all -- 6371000000000 25.76 -80.19`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[0], err)
			}

			var c spatial.Code
			if degrees {
				lat, lon, err := parseFloatPair(args[1], args[2])
				if err != nil {
					return err
				}
				c, err = uvoxid.EncodeDegrees(r, lat, lon)
				if err != nil {
					return err
				}
			} else {
				lat, lon, err := parseIntPair(args[1], args[2])
				if err != nil {
					return err
				}
				c, err = uvoxid.Encode(r, lat, lon)
				if err != nil {
					return err
				}
			}
			a.logger.Debug("encoded", "radius_um", r, "lat", args[1], "lon", args[2], "degrees", degrees)

			return a.printCode(cmd, c, name)
		},
	}

	cmd.Flags().BoolVar(&degrees, "degrees", false, "Angles are given in degrees")
	cmd.Flags().StringVarP(&name, "format", "f", "", "Output format: hex, base32, compact or all")

	return cmd
}

func parseIntPair(latS, lonS string) (int64, int64, error) {
	lat, err := strconv.ParseInt(latS, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latS, err)
	}
	lon, err := strconv.ParseInt(lonS, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonS, err)
	}

	return lat, lon, nil
}

func parseFloatPair(latS, lonS string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", latS, err)
	}
	lon, err := strconv.ParseFloat(lonS, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", lonS, err)
	}

	return lat, lon, nil
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a code in any text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.parseCode(args[0])
			if err != nil {
				return err
			}

			r, lat, lon := uvoxid.Decode(c)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "radius_um: %d\n", r)
			fmt.Fprintf(out, "lat:       %.6f\n", float64(lat)/spatial.MicroDegree)
			fmt.Fprintf(out, "lon:       %.6f\n", float64(lon)/spatial.MicroDegree)

			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert CODE",
		Short: "Re-render a code in another text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.parseCode(args[0])
			if err != nil {
				return err
			}

			return a.printCode(cmd, c, to)
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "Target format: hex, base32, compact or all")

	return cmd
}

func newSnapCmd(a *app) *cobra.Command {
	var sig int

	cmd := &cobra.Command{
		Use:   "snap CODE",
		Short: "Render a code as a canonical string at a tolerance level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.parseCode(args[0])
			if err != nil {
				return err
			}

			s, err := uvoxid.Snap(c, a.sigChars(cmd, sig))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}

	cmd.Flags().IntVarP(&sig, "sig", "s", tolerance.MaxSigChars, "Significant Base32 symbols")

	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var sig int

	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two codes at a tolerance level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseCode(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseCode(args[1])
			if err != nil {
				return err
			}

			n := a.sigChars(cmd, sig)
			eq, err := uvoxid.EqualWithin(x, y, n)
			if err != nil {
				return err
			}

			verdict := "different"
			if eq {
				verdict = "equal"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s within %d sig chars (shared: %d)\n", verdict, n, sharedSigChars(x, y))

			return nil
		},
	}

	cmd.Flags().IntVarP(&sig, "sig", "s", tolerance.MaxSigChars, "Significant Base32 symbols")

	return cmd
}

// sharedSigChars returns the finest tolerance level at which x and y are equal.
func sharedSigChars(x, y spatial.Code) int {
	n := 0
	for n < tolerance.MaxSigChars {
		eq, _ := tolerance.EqualWithin(x, y, n+1)
		if !eq {
			break
		}
		n++
	}

	return n
}

func newScaleCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale CODE",
		Short: "Estimate the resolution of a Base32 code string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := tolerance.Scale(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}
}
