package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"starwars-api/confs"
	httpHandler "starwars-api/handlers/http"
	"starwars-api/server"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every route the API serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)

			// the engine is only inspected, so no store is needed
			engine := server.NewServer(&confs.Config{ServiceName: "starwars-api"}, nil).Handler()
			fmt.Fprintln(cmd.OutOrStdout(), renderRoutes(httpHandler.Routes(engine)))
			return nil
		},
	}
}

func renderRoutes(routes []httpHandler.Route) string {
	rows := make([][]string, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, []string{r.Method, r.Path})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("METHOD", "PATH").
		Rows(rows...).
		String()
}
