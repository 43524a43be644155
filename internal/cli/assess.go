package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"pet-crate-compliance/internal/domain/crates"

	"github.com/spf13/cobra"
)

var errValidation = errors.New("measurements rejected")

func newAssessCmd() *cobra.Command {
	var (
		file        string
		destination string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Evalúa un request JSON y muestra el resultado",
		Example: `  cratectl assess --file request.json
  cat request.json | cratectl assess --file - --destination AU`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readRequest(cmd, file)
			if err != nil {
				return err
			}
			if destination != "" {
				raw.DestinationCountry = destination
			}

			svc := crates.NewService(crates.ServiceOptions{
				Repository: catalogRepo(cmd),
				Rules:      crates.DefaultRules(),
			})
			if _, err := svc.Reload(cmd.Context()); err != nil {
				return err
			}

			rep, err := svc.Assess(cmd.Context(), raw, false)
			if err != nil {
				if verr, ok := crates.IsValidation(err); ok {
					for _, f := range verr.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Problem)
					}
					return errValidation
				}
				return err
			}

			return writeJSON(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "request JSON (- para stdin)")
	cmd.Flags().StringVar(&destination, "destination", "", "país de destino (pisa el del request)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readRequest(cmd *cobra.Command, file string) (crates.RawRequest, error) {
	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return crates.RawRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var raw crates.RawRequest
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return crates.RawRequest{}, fmt.Errorf("invalid request json: %w", err)
	}
	return raw, nil
}
