package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"telspell/internal/customdict"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the custom dictionary",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add word...",
			Short: "Add words to the custom dictionary",
			Args:  cobra.MinimumNArgs(1),
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, args []string) error {
				for _, w := range args {
					if err := cd.Add(cmd.Context(), norm.NFC.String(w)); err != nil {
						return fmt.Errorf("add %q: %w", w, err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d word(s) added\n", len(args))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "remove word...",
			Short: "Remove words from the custom dictionary",
			Args:  cobra.MinimumNArgs(1),
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, args []string) error {
				removed := 0
				for _, w := range args {
					w = norm.NFC.String(w)
					ok, err := cd.Contains(cmd.Context(), w)
					if err != nil {
						return fmt.Errorf("look up %q: %w", w, err)
					}
					if !ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: not in the custom dictionary\n", w)
						continue
					}
					if err := cd.Remove(cmd.Context(), w); err != nil {
						return fmt.Errorf("remove %q: %w", w, err)
					}
					removed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d word(s) removed\n", removed)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the custom dictionary",
			Args:  cobra.NoArgs,
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, _ []string) error {
				words, err := cd.All(cmd.Context())
				if err != nil {
					return err
				}
				slices.Sort(words)
				if len(words) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, "\n"))
				}
				return nil
			}),
		},
	)
	return cmd
}

func withDict(run func(*cobra.Command, *customdict.CustomDict, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		cd := a.customDict()
		if cd == nil {
			return errNoRedis
		}
		return run(cmd, cd, args)
	}
}
