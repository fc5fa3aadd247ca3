/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/cmd/setup"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/common/graceful"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	xlog "bitbucket.org/Amartha/go-x/log"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a sync job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// syncJob is one schedulable unit; every job shares the same setup and
// teardown around its invocation.
type syncJob func(ctx context.Context, s *setup.Setup) (models.SyncReport, error)

var jobs = map[string]syncJob{
	"institution-sync": func(ctx context.Context, s *setup.Setup) (models.SyncReport, error) {
		return s.Service.Sync.SyncInstitutions(ctx)
	},
	"account-sync": func(ctx context.Context, s *setup.Setup) (models.SyncReport, error) {
		return s.Service.Sync.SyncAccounts(ctx)
	},
	"rate-sync": func(ctx context.Context, s *setup.Setup) (models.SyncReport, error) {
		run, err := s.Service.Rate.Refresh(ctx)
		return models.SyncReport{Runs: []models.SyncRun{run}}, err
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job names",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	for name := range jobs {
		fmt.Println(fmt.Sprintf("name=%s", name))
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name}",
		Run:     runJob,
	}
	runJobCmdName = "name"
)

// runJob wires setup around one sync invocation. The process exits non-zero
// when any provider run failed so the scheduler can alert on it.
func runJob(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	job, ok := jobs[name]
	if !ok {
		xlog.Fatalf(ctx, "unknown job name: %s", name)
	}

	s, stopperContract, err := setup.Init(name)
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	report, err := job(ctx, s)

	graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)

	if err != nil {
		xlog.Fatalf(ctx, "%s failed: %v", name, err)
	}

	failed := report.Failed()
	for _, run := range failed {
		xlog.Errorf(ctx, "%s: provider %d run %s failed: %s", name, run.ProviderID, run.ID, run.Error)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}

	xlog.Infof(ctx, "%s finished: %d provider runs", name, len(report.Runs))
}
