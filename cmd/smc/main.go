package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WXY1313/SMC/GF"
	"github.com/WXY1313/SMC/SSS"
)

var (
	flagQ int
	flagM int
	flagN int
	flagK int
)

var rootCmd = &cobra.Command{
	Use:   "smc",
	Short: "Threshold secret sharing over GF(q^m)",
	Long: `Split secrets into (k,n)-threshold shares over a finite field and
reconstruct them exactly (Lagrange) or through bounded corruption
(Berlekamp-Welch).`,
}

var shareCmd = &cobra.Command{
	Use:   "share <secret>",
	Short: "Split a secret integer into n shares",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("secret must be an integer: %w", err)
		}
		scheme, err := newScheme()
		if err != nil {
			return err
		}
		shares, err := scheme.Share(secret)
		if err != nil {
			return err
		}
		fmt.Printf("(%d,%d)-sharing over %s\n", scheme.K(), scheme.N(), scheme.Field())
		for _, sh := range shares {
			fmt.Printf("%d:%d\n", sh.X, sh.Y)
		}
		return nil
	},
}

var flagDecoder string

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct <x:y> [<x:y> ...]",
	Short: "Recover the secret from shares",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme, err := newScheme()
		if err != nil {
			return err
		}
		shares, err := parseShares(args)
		if err != nil {
			return err
		}
		var secret int
		switch flagDecoder {
		case "lagrange":
			secret, err = scheme.Reconstruct(shares)
		case "bw":
			secret, err = scheme.ReconstructBW(shares)
		default:
			return fmt.Errorf("unknown decoder %q (want lagrange or bw)", flagDecoder)
		}
		if err != nil {
			return err
		}
		fmt.Printf("secret: %d\n", secret)
		return nil
	},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the canonical GF(256) n=7 k=3 scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		const secret = 216
		field, err := GF.NewField(2, 8)
		if err != nil {
			return err
		}
		scheme, err := SSS.New(field, 7, 3)
		if err != nil {
			return err
		}
		shares, err := scheme.Share(secret)
		if err != nil {
			return err
		}
		fmt.Printf("shared %d over %s as %v\n", secret, field, shares)

		exact, err := scheme.Reconstruct(shares[:3])
		if err != nil {
			return err
		}
		if exact != secret {
			return fmt.Errorf("exact reconstruction returned %d, want %d", exact, secret)
		}
		fmt.Printf("exact reconstruction from 3 shares: %d\n", exact)

		// tamper with the first share
		tampered := make([]SSS.Share, len(shares))
		copy(tampered, shares)
		tampered[0].Y ^= 1
		fmt.Printf("corrupted share 1: %d -> %d\n", shares[0].Y, tampered[0].Y)

		wrong, err := scheme.Reconstruct(tampered)
		if err != nil {
			return err
		}
		if wrong == secret {
			return fmt.Errorf("exact reconstruction ignored the corrupted share")
		}
		fmt.Printf("exact reconstruction on tampered shares: %d (wrong, as expected)\n", wrong)

		decoded, err := scheme.ReconstructBW(tampered)
		if err != nil {
			return err
		}
		if decoded != secret {
			return fmt.Errorf("berlekamp-welch returned %d, want %d", decoded, secret)
		}
		fmt.Printf("berlekamp-welch on tampered shares: %d\n", decoded)
		fmt.Println("selftest passed")
		return nil
	},
}

func newScheme() (*SSS.Scheme, error) {
	field, err := GF.NewField(flagQ, flagM)
	if err != nil {
		return nil, err
	}
	return SSS.New(field, flagN, flagK)
}

func parseShares(args []string) ([]SSS.Share, error) {
	shares := make([]SSS.Share, len(args))
	for i, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("share %q must have the form x:y", arg)
		}
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("share %q: %w", arg, err)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("share %q: %w", arg, err)
		}
		shares[i] = SSS.Share{X: x, Y: y}
	}
	return shares, nil
}

func main() {
	rootCmd.PersistentFlags().IntVar(&flagQ, "q", 2, "field characteristic")
	rootCmd.PersistentFlags().IntVar(&flagM, "m", 8, "field extension degree")
	rootCmd.PersistentFlags().IntVar(&flagN, "n", 7, "number of shares")
	rootCmd.PersistentFlags().IntVar(&flagK, "k", 3, "reconstruction threshold")
	reconstructCmd.Flags().StringVar(&flagDecoder, "decoder", "lagrange", "decoder: lagrange or bw")

	rootCmd.AddCommand(shareCmd, reconstructCmd, selftestCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
