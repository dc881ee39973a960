package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forgo/gamesdb/internal/repository"
)

// kindCommand builds a command whose first argument is an entity kind.
func kindCommand(opts *RootOptions, use, short string, args cobra.PositionalArgs, run func(ctx context.Context, cmd *cobra.Command, ops entityOps, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:       use,
		Short:     short,
		Args:      args,
		ValidArgs: Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, opts, func(ctx context.Context, db *repository.GamesDatabase) error {
				ops, err := lookupKind(db, args[0])
				if err != nil {
					return err
				}
				return run(ctx, cmd, ops, args[1:])
			})
		},
	}
}

func parseKey(s string) (int64, error) {
	key, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return key, nil
}

func newGetCommand(opts *RootOptions) *cobra.Command {
	return kindCommand(opts, "get <kind> <key>", "Print the record with the given key", cobra.ExactArgs(2),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			rec, err := ops.get(ctx, key)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, rec)
		})
}

func newPutCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := kindCommand(opts, "put <kind>", "Insert or replace a record read from YAML or JSON", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, _ []string) error {
			var (
				data []byte
				err  error
			)
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read record: %w", err)
			}

			key, err := ops.put(ctx, data)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, map[string]int64{"stored": key})
		})
	cmd.Flags().StringVarP(&file, "file", "f", "-", "record file, - for stdin")
	return cmd
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	return kindCommand(opts, "delete <kind> <key>", "Delete every record with the given key", cobra.ExactArgs(2),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}
			if err := ops.delete(ctx, key); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, map[string]int64{"deleted": key})
		})
}

func newIDsCommand(opts *RootOptions) *cobra.Command {
	return kindCommand(opts, "ids <kind>", "List the distinct keys of a kind", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, _ []string) error {
			ids, err := ops.ids(ctx)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, ids)
		})
}

func newMaxCommand(opts *RootOptions) *cobra.Command {
	return kindCommand(opts, "max <kind>", "Print the largest key of a kind, -1 when empty", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, _ []string) error {
			n, err := ops.max(ctx)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, map[string]int64{"max": n})
		})
}

func newCountCommand(opts *RootOptions) *cobra.Command {
	return kindCommand(opts, "count <kind>", "Print the number of records of a kind, -1 when empty", cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, ops entityOps, _ []string) error {
			n, err := ops.count(ctx)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.Format, map[string]int64{"count": n})
		})
}

// CheckReport lists, per collection, the keys stored more than once.
type CheckReport struct {
	Duplicates map[string][]int64 `json:"duplicates" yaml:"duplicates"`
}

func newCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report keys shared by more than one document",
		Long: `Scan every collection for domain keys held by more than one document.

Lookups on such keys use the last document scanned. The command prints the
report and fails when any duplicates exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd, opts, func(ctx context.Context, db *repository.GamesDatabase) error {
				report := CheckReport{Duplicates: make(map[string][]int64)}
				found := false
				for _, e := range db.Entities() {
					dups, err := e.Duplicates(ctx)
					if err != nil {
						return err
					}
					report.Duplicates[e.Collection().Name] = dups
					found = found || len(dups) > 0
				}

				if err := writeOutput(cmd.OutOrStdout(), opts.Format, report); err != nil {
					return err
				}
				if found {
					return ErrDuplicatesFound
				}
				return nil
			})
		},
	}
}
