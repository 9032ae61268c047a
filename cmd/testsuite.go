// cmd/testsuite.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/config"
	"github.com/dev-mohitbeniwal/metacat/dao"
	"github.com/dev-mohitbeniwal/metacat/metrics"
	"github.com/dev-mohitbeniwal/metacat/service"
	"github.com/dev-mohitbeniwal/metacat/util"
	"github.com/dev-mohitbeniwal/metacat/view"
)

const cliSessionID = "cli"

var catalogToken string

var testSuiteCmd = &cobra.Command{
	Use:   "testsuite",
	Short: "Inspect test suites",
}

var testSuiteShowCmd = &cobra.Command{
	Use:   "show <fqn>",
	Short: "Render the test suite header and summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := catalogToken
		if token == "" {
			token = os.Getenv("METACAT_TOKEN")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), config.GetDuration("catalog.timeout")+5*time.Second)
		defer cancel()

		m := metrics.New("metacat_cli")
		notifications := util.NewNotificationService(m)
		eventBus := util.NewEventBus()
		defer eventBus.Close()

		services, err := service.InitializeServices(
			dao.NewCatalogClient(config.GetString("catalog.baseURL"), config.GetDuration("catalog.timeout"), m),
			audit.NewService(nil),
			util.NewValidationUtil(),
			util.NewCacheService(config.GetDuration("redis.draftTTL")),
			notifications,
			eventBus,
			m,
			service.ServiceOptions{
				PermissionLimit: config.GetInt("catalog.maxResults"),
				TestSuiteLimit:  config.GetInt("catalog.maxResults"),
			},
		)
		if err != nil {
			return err
		}
		defer services.Permission.Close()

		return showTestSuite(dao.WithToken(ctx, token), cmd.OutOrStdout(), services.TestSuiteDetails, notifications, args[0])
	},
}

func init() {
	testSuiteShowCmd.Flags().StringVar(&catalogToken, "token", "", "catalog bearer token (defaults to $METACAT_TOKEN)")
	testSuiteCmd.AddCommand(testSuiteShowCmd)
}

func showTestSuite(ctx context.Context, out io.Writer, details service.ITestSuiteDetailsService, notifications *util.NotificationService, fqn string) error {
	styles := view.DefaultStyles()

	header, err := details.Header(ctx, cliSessionID, fqn)
	if err != nil {
		for _, n := range notifications.Drain(cliSessionID) {
			fmt.Fprintln(out, styles.Muted.Render(string(n.Level)+": "+n.Message))
		}
		return err
	}

	suite := header.Props.TestSuite
	card := view.SummaryCard{
		ID:          "TestSuite",
		Heading:     suite.Title(),
		Description: fmt.Sprintf("Version %.1f, updated by %s", suite.Version, orDash(suite.UpdatedBy)),
	}

	fmt.Fprintln(out, header.Render(styles))
	fmt.Fprintln(out, card.Render(styles))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
