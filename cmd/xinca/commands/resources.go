package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// NewAppsCommand creates the apps command group.
func NewAppsCommand() *cobra.Command {
	cmd := newResourceCommand("apps", "Read applications", "app")
	cmd.AddCommand(
		newListCommand("apps", func(c xinca.Client) xinca.Lister { return c.Apps() }),
		newGetCommand("app", func(c xinca.Client) xinca.Getter { return c.Apps() }),
	)

	return cmd
}

// NewDEPCommand creates the enrollment-program command group.
func NewDEPCommand() *cobra.Command {
	cmd := newResourceCommand("dep", "Read and update enrollment-program records")
	cmd.AddCommand(
		newListCommand("enrollment-program records", func(c xinca.Client) xinca.Lister { return c.DEP() }),
		newGetCommand("enrollment-program record", func(c xinca.Client) xinca.Getter { return c.DEP() }),
		newUpdateCommand("enrollment-program record", func(c xinca.Client) xinca.Updater { return c.DEP() }),
	)

	return cmd
}

// NewDevicesCommand creates the devices command group.
func NewDevicesCommand() *cobra.Command {
	cmd := newResourceCommand("devices", "Read and delete devices", "device")
	cmd.AddCommand(
		newListCommand("devices", func(c xinca.Client) xinca.Lister { return c.Devices() }),
		newGetCommand("device", func(c xinca.Client) xinca.Getter { return c.Devices() }),
		newDeleteCommand("device", func(c xinca.Client) xinca.Deleter { return c.Devices() }),
	)

	return cmd
}

// NewProfilesCommand creates the profiles command group.
func NewProfilesCommand() *cobra.Command {
	cmd := newResourceCommand("profiles", "Read configuration profiles", "profile")
	cmd.AddCommand(
		newListCommand("profiles", func(c xinca.Client) xinca.Lister { return c.Profiles() }),
		newGetCommand("profile", func(c xinca.Client) xinca.Getter { return c.Profiles() }),
	)

	return cmd
}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := newResourceCommand("users", "Manage users", "user")
	addCRUDCommands(cmd, "user", func(c xinca.Client) xinca.CRUD { return c.Users() })

	return cmd
}

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := newResourceCommand("groups", "Manage user groups", "group")
	addCRUDCommands(cmd, "group", func(c xinca.Client) xinca.CRUD { return c.Groups() })

	return cmd
}

// NewIBeaconsCommand creates the iBeacons command group.
func NewIBeaconsCommand() *cobra.Command {
	cmd := newResourceCommand("ibeacons", "Manage iBeacons", "ibeacon")
	addCRUDCommands(cmd, "iBeacon", func(c xinca.Client) xinca.CRUD { return c.IBeacons() })

	return cmd
}

func newResourceCommand(use, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
	}
}

func addCRUDCommands(cmd *cobra.Command, noun string, resource func(xinca.Client) xinca.CRUD) {
	cmd.AddCommand(
		newListCommand(noun+"s", func(c xinca.Client) xinca.Lister { return resource(c) }),
		newGetCommand(noun, func(c xinca.Client) xinca.Getter { return resource(c) }),
		newCreateCommand(noun, func(c xinca.Client) xinca.Creator { return resource(c) }),
		newUpdateCommand(noun, func(c xinca.Client) xinca.Updater { return resource(c) }),
		newDeleteCommand(noun, func(c xinca.Client) xinca.Deleter { return resource(c) }),
	)
}

func addCallFlags(cmd *cobra.Command, flags *callFlags) {
	cmd.Flags().StringArrayVar(&flags.params, "param", nil, "query parameter as KEY=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&flags.headers, "header", nil, "extra request header as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&flags.path, "path", "", "override the request path")
}

func newListCommand(noun string, lister func(xinca.Client) xinca.Lister) *cobra.Command {
	flags := &callFlags{}

	cmd := &cobra.Command{
		Use:   constants.OperationList,
		Short: "List " + noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.query()
			if err != nil {
				return err
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := createClientFromConfig()
			if err != nil {
				return err
			}

			records, err := lister(client).List(cmd.Context(), params, opts...)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", noun, err)
			}

			return outputRecords(cmd.OutOrStdout(), records)
		},
	}

	addCallFlags(cmd, flags)

	return cmd
}

func newGetCommand(noun string, getter func(xinca.Client) xinca.Getter) *cobra.Command {
	flags := &callFlags{}

	cmd := &cobra.Command{
		Use:   constants.OperationGet + " ID",
		Short: "Get a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.query()
			if err != nil {
				return err
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := createClientFromConfig()
			if err != nil {
				return err
			}

			record, err := getter(client).Get(cmd.Context(), args[0], params, opts...)
			if err != nil {
				return fmt.Errorf("failed to get %s %s: %w", noun, args[0], err)
			}

			return outputRecord(cmd.OutOrStdout(), record)
		},
	}

	addCallFlags(cmd, flags)

	return cmd
}

func newCreateCommand(noun string, creator func(xinca.Client) xinca.Creator) *cobra.Command {
	flags := &callFlags{}

	var fields []string

	cmd := &cobra.Command{
		Use:   constants.OperationCreate,
		Short: "Create a " + noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseKeyValues(fields)
			if err != nil {
				return err
			}

			params, err := flags.query()
			if err != nil {
				return err
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := createClientFromConfig()
			if err != nil {
				return err
			}

			record, err := creator(client).Create(cmd.Context(), data, params, opts...)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", noun, err)
			}

			return outputRecord(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "field", nil, "body field as KEY=VALUE (repeatable)")
	addCallFlags(cmd, flags)

	return cmd
}

func newUpdateCommand(noun string, updater func(xinca.Client) xinca.Updater) *cobra.Command {
	flags := &callFlags{}

	var fields []string

	cmd := &cobra.Command{
		Use:   constants.OperationUpdate + " ID",
		Short: "Update a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseKeyValues(fields)
			if err != nil {
				return err
			}

			params, err := flags.query()
			if err != nil {
				return err
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := createClientFromConfig()
			if err != nil {
				return err
			}

			record, err := updater(client).Update(cmd.Context(), args[0], data, params, opts...)
			if err != nil {
				return fmt.Errorf("failed to update %s %s: %w", noun, args[0], err)
			}

			return outputRecord(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().StringArrayVar(&fields, "field", nil, "body field as KEY=VALUE (repeatable)")
	addCallFlags(cmd, flags)

	return cmd
}

func newDeleteCommand(noun string, deleter func(xinca.Client) xinca.Deleter) *cobra.Command {
	var headers []string

	var path string

	cmd := &cobra.Command{
		Use:   constants.OperationDelete + " ID",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := &callFlags{headers: headers, path: path}

			opts, err := flags.options()
			if err != nil {
				return err
			}

			client, err := createClientFromConfig()
			if err != nil {
				return err
			}

			err = deleter(client).Delete(cmd.Context(), args[0], opts...)
			if err != nil {
				return fmt.Errorf("failed to delete %s %s: %w", noun, args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", noun, args[0])

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&headers, "header", nil, "extra request header as KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&path, "path", "", "override the request path")

	return cmd
}
