package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rescuedao/rescuedao-api/libs/go/config"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/storage/rolestore"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"github.com/spf13/cobra"
)

// roleSession is the role store opened for the duration of one command.
type roleSession struct {
	cfg     rolestore.Config
	asJSON  bool
	backend interfaces.RoleBackend
	store   *services.RoleStoreService
}

func newRolesCmd() *cobra.Command {
	s := &roleSession{}

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Inspect and edit the role configuration",
		Long: `Inspect and edit the persisted role configuration.

The backend defaults to the ROLE_STORE, ROLE_STORE_PATH, REDIS_URL and
DATABASE_URL environment variables. The first command against an empty
backend persists the default configuration.`,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.cfg.Kind, "store", envOr(config.EnvRoleStore, rolestore.KindFile), "backend: memory, file, redis or postgres")
	flags.StringVar(&s.cfg.Path, "path", envOr(config.EnvRoleStorePath, config.DefaultRoleStorePath), "file backend path")
	flags.StringVar(&s.cfg.RedisURL, "redis-url", os.Getenv(config.EnvRedisURL), "redis backend URL")
	flags.StringVar(&s.cfg.DatabaseURL, "database-url", os.Getenv(config.EnvDatabaseURL), "postgres backend DSN")
	flags.BoolVar(&s.asJSON, "json", false, "print the configuration as JSON")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the role configuration",
			Args:  cobra.NoArgs,
			RunE: s.run(func(cmd *cobra.Command, _ []string) error {
				return s.print(cmd.OutOrStdout())
			}),
		},
		s.mutation("set-admin ADDRESS", "Replace the admin address", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string) error {
				return s.store.SetAdmin(cmd.Context(), args[0])
			}),
		s.mutation("add-shelter ADDRESS NAME", "Add or rename a shelter", cobra.ExactArgs(2),
			func(cmd *cobra.Command, args []string) error {
				return s.store.AddShelter(cmd.Context(), args[0], args[1])
			}),
		s.mutation("add-donor ADDRESS NAME", "Add or rename a donor", cobra.ExactArgs(2),
			func(cmd *cobra.Command, args []string) error {
				return s.store.AddDonor(cmd.Context(), args[0], args[1])
			}),
		s.mutation("remove-shelter ADDRESS", "Remove a shelter", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string) error {
				return s.store.RemoveShelter(cmd.Context(), args[0])
			}),
		s.mutation("remove-donor ADDRESS", "Remove a donor", cobra.ExactArgs(1),
			func(cmd *cobra.Command, args []string) error {
				return s.store.RemoveDonor(cmd.Context(), args[0])
			}),
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the persisted configuration",
			Args:  cobra.NoArgs,
			RunE: s.run(func(cmd *cobra.Command, _ []string) error {
				if err := s.store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Role configuration cleared")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "resolve ADDRESS",
			Short: "Print the effective role of an address",
			Args:  cobra.ExactArgs(1),
			RunE: s.run(func(cmd *cobra.Command, args []string) error {
				address := helpers.NormalizeAddress(args[0])
				if !helpers.IsAddressValid(address) {
					return fmt.Errorf("invalid address %q", args[0])
				}
				flags := services.NewRoleResolverService(nil, s.store).Resolve(cmd.Context(), address)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", address, flags.Role())
				return nil
			}),
		},
	)
	return cmd
}

// mutation builds a subcommand that applies fn and prints the result.
func (s *roleSession) mutation(use, short string, args cobra.PositionalArgs, fn func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			if err := fn(cmd, args); err != nil {
				return err
			}
			return s.print(cmd.OutOrStdout())
		}),
	}
}

// run opens the backend around fn and always closes it afterwards.
func (s *roleSession) run(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := s.open(cmd); err != nil {
			return err
		}
		defer s.close()
		return fn(cmd, args)
	}
}

func (s *roleSession) open(cmd *cobra.Command) error {
	backend, err := rolestore.Open(cmd.Context(), s.cfg)
	if err != nil {
		return err
	}
	s.backend = backend
	s.store = services.NewRoleStoreService(backend)
	if _, err := s.store.Load(cmd.Context()); err != nil {
		s.close()
		return err
	}
	return nil
}

func (s *roleSession) close() {
	if s.backend != nil {
		_ = s.backend.Close()
		s.backend = nil
	}
}

func (s *roleSession) print(w io.Writer) error {
	cfg := s.store.Snapshot()
	if s.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ROLE\tADDRESS\tNAME\n")
	if cfg.Admin != "" {
		fmt.Fprintf(tw, "%s\t%s\t\n", business.RoleAdmin, cfg.Admin)
	}
	for _, l := range cfg.ShelterList() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", business.RoleShelter, l.Address, l.Name)
	}
	for _, l := range cfg.DonorList() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", business.RoleDonor, l.Address, l.Name)
	}
	return tw.Flush()
}
