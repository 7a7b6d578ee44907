package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/kata/internal/report"
	"github.com/katalvlaran/kata/subarray"
	"github.com/katalvlaran/kata/twosum"
	"github.com/spf13/cobra"
)

func newSubarrayCmd(a *app) *cobra.Command {
	var (
		nums  []int
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "subarray [ints...]",
		Short: "Maximum contiguous subarray sum (Kadane)",
		Long: `Find the contiguous run with the largest sum.

Numbers come from positional arguments or --nums. Negative numbers need
either an equals sign (--nums=-2,1,-3,4) or a "--" before them
(kata subarray -- -2 1 -3 4).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := numsFromArgs(args, &nums); err != nil {
				return err
			}

			var opts []subarray.Option
			if trace {
				a.log.SetLevel(log.DebugLevel)
				opts = append(opts, subarray.WithOnStep(func(s subarray.Step) {
					a.log.Debug("step", "index", s.Index, "value", s.Value, "running", s.Running, "best", s.Best)
				}))
			}

			span, err := subarray.Max(nums, opts...)
			if err != nil {
				return err
			}

			r := report.New("Maximum subarray sum", "input", "max_sum", "start", "end", "run")
			r.AddRow(joinInts(nums), strconv.Itoa(span.Sum), strconv.Itoa(span.Start), strconv.Itoa(span.End),
				joinInts(nums[span.Start:span.End+1]))
			r.Meta.Source = "flags"

			return a.render(cmd, r)
		},
	}

	cmd.Flags().IntSliceVar(&nums, "nums", []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, "input sequence")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every extend/restart decision")

	return cmd
}

func newTwoSumCmd(a *app) *cobra.Command {
	var (
		nums     []int
		target   int
		original bool
	)

	cmd := &cobra.Command{
		Use:   "twosum [ints...]",
		Short: "Find two positions whose values sum to a target",
		Long: `Solve two-sum with both strategies and print their answers side by side.

two-pointer sorts a copy, so its indices refer to the sorted order unless
--original is set. hash-map always reports original indices.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := numsFromArgs(args, &nums); err != nil {
				return err
			}

			r := report.New(fmt.Sprintf("Two-sum (target %d)", target), "solver", "i", "j", "values")
			r.Meta.Source = "flags"

			var tpOpts []twosum.Option
			if original {
				tpOpts = append(tpOpts, twosum.WithOriginalIndices())
			}
			tp, tpErr := twosum.TwoPointer(nums, target, tpOpts...)
			hm, hmErr := twosum.HashMap(nums, target)

			for _, res := range []struct {
				name   string
				pair   twosum.Pair
				err    error
				sorted bool
			}{
				{"two-pointer", tp, tpErr, !original},
				{"hash-map", hm, hmErr, false},
			} {
				if errors.Is(res.err, twosum.ErrNoSolution) {
					r.AddRow(res.name, "-", "-", "-")
					continue
				}
				if res.err != nil {
					return res.err
				}
				a.log.Debug("pair found", "solver", res.name, "i", res.pair.I, "j", res.pair.J)
				r.AddRow(res.name, strconv.Itoa(res.pair.I), strconv.Itoa(res.pair.J), joinInts(valuesFor(nums, res.pair, res.sorted)))
			}
			if tpErr != nil {
				r.AddNote("no pair sums to %d", target)
			} else if !original {
				r.AddNote("two-pointer indices refer to the sorted input; pass --original to map them back")
			}

			return a.render(cmd, r)
		},
	}

	cmd.Flags().IntSliceVar(&nums, "nums", []int{2, 7, 11, 15}, "input sequence")
	cmd.Flags().IntVarP(&target, "target", "t", 9, "target sum")
	cmd.Flags().BoolVar(&original, "original", false, "report two-pointer indices in input order")

	return cmd
}

// valuesFor returns the values a pair refers to, looked up in a sorted
// copy when the indices came from the sorted order.
func valuesFor(nums []int, p twosum.Pair, sorted bool) []int {
	src := nums
	if sorted {
		src = append([]int(nil), nums...)
		sort.Ints(src)
	}

	return []int{src[p.I], src[p.J]}
}

// numsFromArgs replaces *nums with the positional arguments, if any.
func numsFromArgs(args []string, nums *[]int) error {
	if len(args) == 0 {
		return nil
	}

	parsed := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %q is not an integer", i+1, arg)
		}
		parsed[i] = n
	}
	*nums = parsed

	return nil
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
