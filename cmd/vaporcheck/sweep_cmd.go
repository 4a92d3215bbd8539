// Copyright 2025 go-vapor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-vapor/vapor"
	"github.com/ajroetker/go-vapor/vapor/contrib/workerpool"
)

type sweepOptions struct {
	samples    int
	seed       uint64
	exhaustive bool
	workers    int
	maxULP     uint64
	ops        string
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare every kernel with its reference over special and sampled inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, root, opts)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func (opts *sweepOptions) addFlags(flags *pflag.FlagSet) {
	flags.IntVar(&opts.samples, "samples", 1<<20, "random inputs per kernel")
	flags.Uint64Var(&opts.seed, "seed", 1, "seed for the random inputs")
	flags.BoolVar(&opts.exhaustive, "exhaustive", false, "enumerate all 2^32 inputs of unary float32 kernels")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	flags.Uint64Var(&opts.maxULP, "max-ulp", 0, "allowed ulp distance, overriding each kernel's own bound")
	flags.StringVar(&opts.ops, "ops", "all", "comma-separated kernels to check, e.g. sqrt32,floor64")
}

func runSweep(cmd *cobra.Command, root *rootOptions, opts *sweepOptions) error {
	if opts.samples < 0 {
		return invalidFlag("samples", "must not be negative, got %d", opts.samples)
	}
	if opts.workers < 0 {
		return invalidFlag("workers", "must not be negative, got %d", opts.workers)
	}
	selected, err := selectKernels(opts.ops)
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	sweeper := &Sweeper{
		Pool:        pool,
		Logger:      root.logger,
		Samples:     opts.samples,
		Seed:        opts.seed,
		Exhaustive:  opts.exhaustive,
		MaxULP:      opts.maxULP,
		OverrideULP: cmd.Flags().Changed("max-ulp"),
	}
	root.logger.Info("sweep", "backend", vapor.CurrentName(), "kernels", len(selected), "workers", workers, "seed", opts.seed)

	reports := make([]Report, len(selected))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, k := range selected {
		g.Go(func() error {
			r, err := sweeper.Run(ctx, k)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writeReports(cmd.OutOrStdout(), reports)
	failed := lo.FilterMap(reports, func(r Report, _ int) (string, bool) {
		return r.Kernel, r.Failed()
	})
	if len(failed) > 0 {
		return &MismatchError{Kernels: failed}
	}
	return nil
}

func writeReports(w io.Writer, reports []Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KERNEL\tMODE\tCHECKED\tMISMATCHES\tWORST ULP\tBOUND\tWORST INPUT")
	for _, r := range reports {
		mode := "sampled"
		if r.Exhaustive {
			mode = "exhaustive"
		}
		input := lo.Map(r.WorstInput, func(b uint64, _ int) string { return fmt.Sprintf("%#x", b) })
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%v\n", r.Kernel, mode, r.Checked, r.Mismatches, r.WorstULP, r.Bound, input)
	}
	tw.Flush()
}
