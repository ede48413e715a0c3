package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kkutopiaa/tdd-restful-service/internal/users"
	"github.com/kkutopiaa/tdd-restful-service/pkg/rest"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the resource methods the server answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tHANDLER\tPRODUCES")
			for _, r := range rest.Routes(users.UsersClass) {
				produces := make([]string, len(r.Produces))
				for i, mt := range r.Produces {
					produces[i] = mt.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Method, r.Path, r.Handler, strings.Join(produces, ","))
			}
			return w.Flush()
		},
	}
}
