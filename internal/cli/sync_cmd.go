package cli

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/planner"
	"github.com/spf13/cobra"
)

var errOffline = errors.New("no endpoint configured; set one with `lessonplan sync url URL`")

func newSyncCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Configure and run synchronisation with the spreadsheet endpoint",
	}

	cmd.AddCommand(
		newSyncURLCmd(app),
		newSyncPullCmd(app),
		newSyncPushCmd(app),
		newSyncStatusCmd(app),
	)

	return cmd
}

func newSyncURLCmd(app *App) *cobra.Command {
	var clearURL bool

	cmd := &cobra.Command{
		Use:   "url [URL]",
		Short: "Show or set the endpoint URL (setting it pulls immediately)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case clearURL:
				store.SetRemoteURL("")
				fmt.Fprintln(out, "Endpoint cleared; working offline.")
				return nil
			case len(args) == 0:
				if u := store.RemoteURL(); u != "" {
					fmt.Fprintln(out, u)
				} else {
					fmt.Fprintln(out, formatter.Dim("(not set)"))
				}
				return nil
			}

			store.SetRemoteURL(args[0])
			waitErr := store.Wait()
			fmt.Fprintln(out, formatter.FormatSyncStatus(store.RemoteURL(), store.SyncState()))
			if waitErr != nil {
				return syncError(store, waitErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearURL, "clear", false, "remove the endpoint and work offline")
	return cmd
}

func newSyncPullCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace local data with the endpoint's copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			if store.RemoteURL() == "" {
				return errOffline
			}
			if err := store.ManualPull(cmd.Context()); err != nil {
				return syncError(store, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d lessons and %d units.\n", len(store.Lessons()), len(store.Units()))
			return nil
		},
	}
}

func newSyncPushCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Send all local data to the endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			if store.RemoteURL() == "" {
				return errOffline
			}
			d, err := store.ManualPush(cmd.Context())
			if err != nil {
				return syncError(store, err)
			}
			host := d.Endpoint
			if u, err := url.Parse(d.Endpoint); err == nil {
				host = u.Host
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent %d bytes to %s.\n", d.Bytes, host)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("The endpoint does not confirm receipt; check the spreadsheet to be sure."))
			return nil
		},
	}
}

func newSyncStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the endpoint and the outcome of the last sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.store()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSyncStatus(store.RemoteURL(), store.SyncState()))
			return nil
		},
	}
}

// syncError pairs the user-facing sync message with the underlying cause.
func syncError(store *planner.Store, err error) error {
	msg := store.SyncState().Err
	if msg == "" {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
