package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"ingredient-manager/core/journal"
	"ingredient-manager/core/objectstore"
	"ingredient-manager/feature/transfer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the transfer command
	transferReq     transfer.Request
	transferMode    string
	transferItems   []string
	sourceSlot      int
	destinationSlot int
	yesConfirm      bool
)

// transferCmd runs a single transfer between two persisted containers.
var transferCmd = &cobra.Command{
	Use:   "transfer <source> <destination>",
	Short: "Move ingredients between two containers",
	Long: `Move item stacks from one container to another.

The transfer is always simulated first and the expected result reported.
The real transfer runs after confirmation.

Examples:
  # Move up to 32 of anything
  transfer pantry bin --count 32

  # Report only
  transfer pantry bin --count 32 --simulate

  # Move exactly 16 brown eggs into slot 4, non-interactive
  transfer pantry shelf --mode single --item egg --meta brown --count 16 --exact --to-slot 4 --yes

  # Move up to 64 of any egg or milk
  transfer pantry bin --mode predicate --filter-item egg --filter-item milk --count 64`,
	Args: cobra.ExactArgs(2),
	RunE: runTransfer,
}

func init() {
	f := transferCmd.Flags()
	f.StringVar(&transferMode, "mode", string(transfer.ModeAny), "Transfer mode (any, single, matching, iterative, iterative_matching, predicate)")
	f.StringVar(&transferReq.Item, "item", "", "Item of the prototype stack")
	f.StringVar(&transferReq.Meta, "meta", "", "Metadata variant of the prototype stack")
	f.Int64Var(&transferReq.Count, "count", 0, "Quantity to move")
	f.BoolVar(&transferReq.Exact, "exact", false, "Move nothing unless exactly --count can move")
	f.StringSliceVar(&transferItems, "filter-item", nil, "Items accepted by predicate mode (repeatable)")
	f.StringVar(&transferReq.Filter.Meta, "filter-meta", "", "Metadata accepted by predicate mode")
	f.IntVar(&sourceSlot, "from-slot", -1, "Source slot (negative for any)")
	f.IntVar(&destinationSlot, "to-slot", -1, "Destination slot (negative for any)")
	f.BoolVar(&transferReq.Simulate, "simulate", false, "Only report what would move")
	f.BoolVar(&yesConfirm, "yes", false, "Auto-confirm the transfer (non-interactive)")

	RootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger

	var j *journal.Journal
	if rt.cfg.Journal.Enabled {
		client, err := objectstore.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		j = journal.New(client, rt.cfg.Storage.Bucket, rt.cfg.Journal)
	}
	svc := transfer.NewService(rt.containers.Repository(), j, l)

	req := transferReq
	req.Source, req.Destination = args[0], args[1]
	req.Mode = transfer.Mode(transferMode)
	req.Filter.Items = transferItems
	if sourceSlot >= 0 {
		req.SourceSlot = &sourceSlot
	}
	if destinationSlot >= 0 {
		req.DestinationSlot = &destinationSlot
	}

	// Step 1: Simulate (always runs)
	simulation := req
	simulation.Simulate = true
	planned, err := svc.Execute(ctx, simulation)
	if err != nil {
		return fmt.Errorf("failed to simulate transfer: %w", err)
	}
	l.Info("Simulated transfer",
		zap.String("source", req.Source),
		zap.String("destination", req.Destination),
		zap.Stringer("moved", planned.Moved),
	)

	if req.Simulate {
		l.Info("Simulate mode: No changes were made.")
		return nil
	}
	if planned.Moved.Count == 0 {
		l.Info("Nothing can move.")
		return nil
	}

	// Step 2: Commit (if confirmed)
	if !confirmTransfer() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	result, err := svc.Execute(ctx, req)
	if err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}
	l.Info("Transfer committed",
		zap.Stringer("moved", result.Moved),
		zap.String("journal_id", result.JournalID),
	)
	return nil
}

// confirmTransfer prompts the user for confirmation or uses the --yes flag.
func confirmTransfer() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to commit the transfer: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
