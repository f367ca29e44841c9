package main

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"log/slog"
	"net/http"
	"serviceBooker/internal/client"
	"serviceBooker/internal/lib/logger/sl"
	"serviceBooker/internal/models"
	"serviceBooker/internal/webui"
	"time"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "bookctl",
		Short:         "Book service appointments and manage the bookings saved on this device",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file (defaults to CONFIG_PATH)")
	cmd.PersistentFlags().BoolVar(&opts.simulate, "simulate", false, "Run the offline demo flow: nothing is sent or saved")
	cmd.PersistentFlags().BoolVar(&opts.offline, "offline", false, "Do not contact the booking service")

	cmd.AddCommand(
		newBookCmd(opts),
		newListCmd(opts),
		newClearCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

func newBookCmd(opts *options) *cobra.Command {
	var form client.Form

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			var view client.View
			if opts.simulate {
				view, err = a.handler.Simulate(cmd.Context(), &form)
			} else {
				var conf client.Confirmation
				conf, err = a.handler.Submit(cmd.Context(), &form)
				view = conf.View
			}

			var verr *client.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprint(cmd.OutOrStdout(), client.RenderText(a.handler.Panel().State().View))
				return fmt.Errorf("invalid fields: %v", verr.Fields)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), client.RenderText(view))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Customer name (required)")
	f.StringVar(&form.Email, "email", "", "Customer email (required)")
	f.StringVar(&form.Phone, "phone", "", "Contact phone")
	f.StringVar(&form.Service, "service", "", "Service: consultation, appointment or other (required)")
	f.StringVar(&form.Date, "date", "", "Date as YYYY-MM-DD (required)")
	f.StringVar(&form.Time, "time", "", "Time as HH:MM, 24h (required)")
	f.StringVar(&form.Notes, "notes", "", "Additional notes")

	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bookings saved on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			bookings, err := a.handler.Bookings(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(bookings) == 0 {
				fmt.Fprintln(out, "No bookings saved on this device.")
				return nil
			}

			for _, b := range bookings {
				fmt.Fprintf(out, "%s  %s %s  %-35s %s <%s>\n",
					b.ID,
					b.Date,
					b.Time,
					models.ServiceLabel(b.Service),
					b.Name,
					b.Email,
				)
			}

			return nil
		},
	}
}

func newClearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every booking saved on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.handler.ClearBookings(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All local bookings cleared.")

			return nil
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the booking form on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			addr := fmt.Sprintf("localhost:%d", port)

			srv := &http.Server{
				Addr:              addr,
				Handler:           webui.New(a.log, a.handler, opts.simulate),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Close()
			}()

			a.log.Info("serving booking form", slog.String("address", "http://"+addr))

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("failed to serve booking form", sl.Err(err))
				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 8484, "Port for the local booking form")

	return cmd
}
