package billing

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fiberdesk/fiberdesk/internal/application/payment/dto"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/config"
	"github.com/fiberdesk/fiberdesk/internal/infrastructure/database"
	httpRouter "github.com/fiberdesk/fiberdesk/internal/interfaces/http"
	"github.com/fiberdesk/fiberdesk/internal/shared/biztime"
	"github.com/fiberdesk/fiberdesk/internal/shared/logger"
)

var (
	env   string
	month int
	year  int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Monthly billing jobs",
		Long:  `Generate monthly payments for active subscriptions and flag unpaid ones as overdue. Intended to be run from cron.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newGenerateCommand(),
		newMarkOverdueCommand(),
	)

	return cmd
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create pending payments for a billing month",
		Long:  `Create one pending payment per active subscription for the given month. Subscriptions already billed in that month are skipped.`,
		RunE:  runGenerate,
	}

	cmd.Flags().IntVar(&month, "month", 0, "Billing month 1-12 (default: current month)")
	cmd.Flags().IntVar(&year, "year", 0, "Billing year (default: current year)")

	return cmd
}

func newMarkOverdueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-overdue",
		Short: "Flag pending payments past their due date",
		RunE:  runMarkOverdue,
	}
}

// bootstrap loads configuration and wires the application services.
func bootstrap() (*httpRouter.Container, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return httpRouter.NewContainer(database.Get(), cfg, log), log, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	container, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close()

	today := biztime.Today()
	req := dto.GenerateRequest{Month: month, Year: year}
	if req.Month == 0 {
		req.Month = int(today.Month())
	}
	if req.Year == 0 {
		req.Year = today.Year()
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", req.Month)
	}

	result, err := container.PaymentService().Generate(cmd.Context(), req)
	if err != nil {
		log.Errorw("billing generation failed", "month", req.Month, "year", req.Year, "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d: created %d, skipped %d\n",
		time.Month(req.Month), req.Year, result.Created, result.Skipped)
	return nil
}

func runMarkOverdue(cmd *cobra.Command, args []string) error {
	container, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close()

	result, err := container.PaymentService().MarkOverdue(cmd.Context())
	if err != nil {
		log.Errorw("marking overdue payments failed", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "marked %d payment(s) overdue\n", result.Updated)
	return nil
}
