package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/recordsvc/internal/client"
	"github.com/dropDatabas3/recordsvc/internal/domain/record"
	dto "github.com/dropDatabas3/recordsvc/internal/http/dto/records"
	"github.com/dropDatabas3/recordsvc/internal/store/seed"
	"github.com/dropDatabas3/recordsvc/internal/view"
)

type cli struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	Timeout   time.Duration

	out io.Writer
}

func (c *cli) client() *client.Client {
	return client.New(c.BaseURL, &http.Client{Timeout: c.Timeout})
}

func (c *cli) console() *view.Console {
	return view.NewConsole(c.out)
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printRecord(r record.Record) error {
	if c.OutFormat == "json" {
		return c.printJSON(dto.FromRecord(r))
	}
	c.console().Record(r)
	return nil
}

func (c *cli) printRecords(rs []record.Record) error {
	if c.OutFormat == "json" {
		return c.printJSON(dto.FromRecords(rs))
	}
	c.console().Records(rs)
	return nil
}

func (c *cli) printMessage(msg string) error {
	if c.OutFormat == "json" {
		return c.printJSON(dto.MessageResponse{Message: msg})
	}
	c.console().Success(msg)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		view.NewConsole(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{
		BaseURL:   envOr("RECORDS_API_URL", "http://localhost:3001/api"),
		OutFormat: envOr("RECORDS_OUT", "text"),
		Timeout:   client.DefaultTimeout,
		out:       out,
	}

	root := &cobra.Command{
		Use:           "records",
		Short:         "CLI para la API de records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.OutFormat != "json" && c.OutFormat != "text" {
				return fmt.Errorf("--out inválido %q (json|text)", c.OutFormat)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.BaseURL, "url", c.BaseURL, "URL base de la API (env RECORDS_API_URL)")
	root.PersistentFlags().StringVar(&c.OutFormat, "out", c.OutFormat, "Formato de salida: json|text (env RECORDS_OUT)")
	root.PersistentFlags().DurationVar(&c.Timeout, "timeout", c.Timeout, "Timeout por request")

	root.AddCommand(
		listCmd(c),
		getCmd(c),
		searchCmd(c),
		createCmd(c),
		updateCmd(c),
		deleteCmd(c),
		seedCmd(c),
		smokeCmd(c),
	)
	return root
}

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar todos los records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.client().List(cmd.Context())
			if err != nil {
				return err
			}
			return c.printRecords(recs)
		},
	}
}

func getCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Mostrar un record por ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := c.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printRecord(rec)
		},
	}
}

func searchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Buscar por nombre o apellido (sin distinguir mayúsculas)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.client().Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printRecords(recs)
		},
	}
}

func createCmd(c *cli) *cobra.Command {
	var name, lastName string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.client().Create(cmd.Context(), name, lastName)
			if err != nil {
				return err
			}
			return c.printRecord(rec)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Nombre")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Apellido")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("last-name")
	return cmd
}

func updateCmd(c *cli) *cobra.Command {
	var name, lastName string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar nombre y/o apellido de un record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Solo se envían los flags presentes.
			var namePtr, lastNamePtr *string
			if cmd.Flags().Changed("name") {
				namePtr = &name
			}
			if cmd.Flags().Changed("last-name") {
				lastNamePtr = &lastName
			}
			rec, err := c.client().Update(cmd.Context(), id, namePtr, lastNamePtr)
			if err != nil {
				return err
			}
			return c.printRecord(rec)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Nuevo nombre")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Nuevo apellido")
	return cmd
}

func deleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Borrar un record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			msg, err := c.client().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printMessage(msg)
		},
	}
}

func seedCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crear en el servidor los records de un archivo YAML de seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := seed.LoadFile(cmd.Context(), file, c.client())
			if err != nil {
				return fmt.Errorf("seed (%d created before failing): %w", n, err)
			}
			return c.printMessage(fmt.Sprintf("%d records created", n))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Archivo YAML (ver configs/seed.example.yaml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func smokeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Recorrer el CRUD completo contra un servidor vivo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Smoke(cmd.Context(), c.client(), c.console())
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q: debe ser un entero positivo", s)
	}
	return id, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
