package cmd

import (
	"context"
	"fmt"
	"os"

	"ingredient-manager/feature/containers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

// seedCmd imports containers and their contents from a YAML fixture.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create containers from a YAML fixture",
	Long: `Create the containers declared in a YAML fixture and deposit their contents.
Existing containers are kept and only receive the deposits.

Example fixture:
  containers:
    - name: pantry
      capacity: 500
      contents:
        - item: flour
          count: 64
    - name: shelf
      slots: 9
      capacity: 16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		file, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("failed to open fixture: %w", err)
		}
		defer file.Close()

		fixture, err := containers.ReadFixture(file)
		if err != nil {
			return err
		}

		created, err := rt.containers.Import(context.Background(), fixture)
		if err != nil {
			return fmt.Errorf("failed to import fixture: %w", err)
		}
		rt.logger.Info("Fixture imported",
			zap.String("file", seedFile),
			zap.Int("containers", len(fixture.Containers)),
			zap.Int("created", created),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "fixtures.yaml", "Path to the YAML fixture")
	RootCmd.AddCommand(seedCmd)
}
