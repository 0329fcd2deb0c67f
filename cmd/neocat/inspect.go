package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/neocat/model"
)

// errNotFound is returned when inspect matches no object.
var errNotFound = errors.New("no matching near-Earth object")

func newInspectCmd(a *app) *cobra.Command {
	var (
		designation string
		name        string
		approaches  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect (--pdes DESIGNATION | --name NAME)",
		Short: "Show one near-Earth object",
		Example: "  neocat inspect --pdes 433\n" +
			"  neocat inspect --name Eros --approaches",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.loadDatabase()
			if err != nil {
				return err
			}

			var (
				neo   *model.NearEarthObject
				found bool
			)
			if designation != "" {
				neo, found = db.GetByDesignation(designation)
			} else {
				neo, found = db.GetByName(name)
			}
			if !found {
				key := designation
				if key == "" {
					key = name
				}
				return fmt.Errorf("%w: %s", errNotFound, key)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, neo)
			if approaches {
				for _, approach := range neo.Approaches {
					fmt.Fprintf(out, "- %s\n", approach)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&designation, "pdes", "", "primary designation of the object")
	cmd.Flags().StringVar(&name, "name", "", "IAU name of the object")
	cmd.Flags().BoolVar(&approaches, "approaches", false, "also list the object's close approaches")
	cmd.MarkFlagsMutuallyExclusive("pdes", "name")
	cmd.MarkFlagsOneRequired("pdes", "name")
	return cmd
}
