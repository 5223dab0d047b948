package cmd

import (
	"context"

	"ingredient-manager/feature/containers/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// containersCmd is the parent command for container inspection.
var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "Inspect persisted containers",
}

var containersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all containers",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		list, err := rt.containers.List(context.Background())
		if err != nil {
			return err
		}
		for _, c := range list {
			printContainer(rt.logger, c, false)
		}
		rt.logger.Info("Containers listed", zap.Int("count", len(list)))
		return nil
	},
}

var containersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a container and its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		c, err := rt.containers.Show(context.Background(), args[0])
		if err != nil {
			return err
		}
		printContainer(rt.logger, *c, true)
		return nil
	},
}

func init() {
	containersCmd.AddCommand(containersListCmd)
	containersCmd.AddCommand(containersShowCmd)
	RootCmd.AddCommand(containersCmd)
}

// printContainer logs a container summary and, optionally, every content row.
func printContainer(l *zap.Logger, c models.Container, contents bool) {
	l.Info("Container",
		zap.String("name", c.Name),
		zap.Int("slots", c.Slots),
		zap.Int64("capacity", c.Capacity),
		zap.Int64("rate_limit", c.RateLimit),
		zap.Int64("total", c.Total()),
	)
	if !contents {
		return
	}
	for _, row := range c.Contents {
		l.Info("Content",
			zap.Int("position", row.Position),
			zap.Stringer("stack", row.Stack()),
		)
	}
}
