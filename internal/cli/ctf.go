package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
)

// splitFlags carries the raw flag values for split and merge, which take
// identical inputs.
type splitFlags struct {
	condition        string
	amount           string
	collateral       string
	partition        string
	parentCollection string
}

type redeemFlags struct {
	condition        string
	collateral       string
	indexSets        string
	parentCollection string
}

func (a *App) newCtfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctf",
		Short: "CTF operations: split, merge, redeem positions and derive protocol ids",
	}
	cmd.AddCommand(
		a.newSplitCmd(),
		a.newMergeCmd(),
		a.newRedeemCmd(),
		a.newRedeemNegRiskCmd(),
		a.newConditionIDCmd(),
		a.newCollectionIDCmd(),
		a.newPositionIDCmd(),
	)
	return cmd
}

func (a *App) newSplitCmd() *cobra.Command {
	var f splitFlags
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split collateral into outcome tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindSplit.Label(), a.runSplit(cmd.Context(), f))
		},
	}
	addSplitFlags(cmd, &f)
	return cmd
}

func (a *App) newMergeCmd() *cobra.Command {
	var f splitFlags
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge outcome tokens back into collateral",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindMerge.Label(), a.runMerge(cmd.Context(), f))
		},
	}
	addSplitFlags(cmd, &f)
	return cmd
}

func addSplitFlags(cmd *cobra.Command, f *splitFlags) {
	cmd.Flags().StringVar(&f.condition, "condition", "", "condition ID (0x-prefixed 32-byte hex)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount in USDC (e.g. 10 for $10)")
	cmd.Flags().StringVar(&f.collateral, "collateral", "", "collateral token address (defaults to USDC)")
	cmd.Flags().StringVar(&f.partition, "partition", "", `custom partition as comma-separated index sets (e.g. "1,2" for binary, "1,2,4" for 3-outcome)`)
	cmd.Flags().StringVar(&f.parentCollection, "parent-collection", "", "parent collection ID for nested positions (defaults to zero)")
	cmd.MarkFlagRequired("condition")
	cmd.MarkFlagRequired("amount")
}

func (a *App) newRedeemCmd() *cobra.Command {
	var f redeemFlags
	cmd := &cobra.Command{
		Use:   "redeem",
		Short: "Redeem winning tokens after market resolution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindRedeem.Label(), a.runRedeem(cmd.Context(), f))
		},
	}
	cmd.Flags().StringVar(&f.condition, "condition", "", "condition ID (0x-prefixed 32-byte hex)")
	cmd.Flags().StringVar(&f.collateral, "collateral", "", "collateral token address (defaults to USDC)")
	cmd.Flags().StringVar(&f.indexSets, "index-sets", "", `custom index sets as comma-separated values (e.g. "1,2" for binary, "1" for YES only)`)
	cmd.Flags().StringVar(&f.parentCollection, "parent-collection", "", "parent collection ID for nested positions (defaults to zero)")
	cmd.MarkFlagRequired("condition")
	return cmd
}

func (a *App) newRedeemNegRiskCmd() *cobra.Command {
	var condition, amounts string
	cmd := &cobra.Command{
		Use:   "redeem-neg-risk",
		Short: "Redeem neg-risk positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindRedeemNegRisk.Label(), a.runRedeemNegRisk(cmd.Context(), condition, amounts))
		},
	}
	cmd.Flags().StringVar(&condition, "condition", "", "condition ID (0x-prefixed 32-byte hex)")
	cmd.Flags().StringVar(&amounts, "amounts", "", `comma-separated amounts in USDC for each outcome (e.g. "10,5")`)
	cmd.MarkFlagRequired("condition")
	cmd.MarkFlagRequired("amounts")
	return cmd
}

func (a *App) newConditionIDCmd() *cobra.Command {
	var oracle, question string
	var outcomes uint64
	cmd := &cobra.Command{
		Use:   "condition-id",
		Short: "Calculate a condition ID from oracle, question, and outcome count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindConditionID.Label(), a.runConditionID(cmd.Context(), oracle, question, outcomes))
		},
	}
	cmd.Flags().StringVar(&oracle, "oracle", "", "oracle address (0x-prefixed)")
	cmd.Flags().StringVar(&question, "question", "", "question ID (0x-prefixed 32-byte hex)")
	cmd.Flags().Uint64Var(&outcomes, "outcomes", 0, "number of outcomes (e.g. 2 for binary)")
	cmd.MarkFlagRequired("oracle")
	cmd.MarkFlagRequired("question")
	cmd.MarkFlagRequired("outcomes")
	return cmd
}

func (a *App) newCollectionIDCmd() *cobra.Command {
	var condition, parentCollection string
	var indexSet uint64
	cmd := &cobra.Command{
		Use:   "collection-id",
		Short: "Calculate a collection ID from condition and index set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindCollectionID.Label(), a.runCollectionID(cmd.Context(), condition, indexSet, parentCollection))
		},
	}
	cmd.Flags().StringVar(&condition, "condition", "", "condition ID (0x-prefixed 32-byte hex)")
	cmd.Flags().Uint64Var(&indexSet, "index-set", 0, "index set (e.g. 1 for YES, 2 for NO in binary markets)")
	cmd.Flags().StringVar(&parentCollection, "parent-collection", "", "parent collection ID (defaults to zero for top-level positions)")
	cmd.MarkFlagRequired("condition")
	cmd.MarkFlagRequired("index-set")
	return cmd
}

func (a *App) newPositionIDCmd() *cobra.Command {
	var collateral, collection string
	cmd := &cobra.Command{
		Use:   "position-id",
		Short: "Calculate a position ID (ERC-1155 token ID) from collateral and collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return wrap(ctf.KindPositionID.Label(), a.runPositionID(cmd.Context(), collateral, collection))
		},
	}
	cmd.Flags().StringVar(&collateral, "collateral", "", "collateral token address (defaults to USDC)")
	cmd.Flags().StringVar(&collection, "collection", "", "collection ID (0x-prefixed 32-byte hex)")
	cmd.MarkFlagRequired("collection")
	return cmd
}

// ---------------------------------------------------------------------------
// Request builders. All validation happens here, before any provider is
// dialed; assembly itself cannot fail.
// ---------------------------------------------------------------------------

func buildSplitRequest(f splitFlags, defaultCollateral string) (*ctf.SplitRequest, error) {
	conditionID, err := ctf.ParseHash32(f.condition)
	if err != nil {
		return nil, err
	}
	amount, err := ctf.ParseAmount(f.amount)
	if err != nil {
		return nil, err
	}
	collateral, err := ctf.ParseAddress(orDefault(f.collateral, defaultCollateral))
	if err != nil {
		return nil, err
	}
	parent, err := ctf.ParseParentCollection(f.parentCollection)
	if err != nil {
		return nil, err
	}
	partition, err := ctf.BuildPartition(f.partition)
	if err != nil {
		return nil, err
	}
	return &ctf.SplitRequest{
		CollateralToken:    collateral,
		ParentCollectionID: parent,
		ConditionID:        conditionID,
		Partition:          partition,
		Amount:             amount,
	}, nil
}

func buildMergeRequest(f splitFlags, defaultCollateral string) (*ctf.MergeRequest, error) {
	req, err := buildSplitRequest(f, defaultCollateral)
	if err != nil {
		return nil, err
	}
	return &ctf.MergeRequest{
		CollateralToken:    req.CollateralToken,
		ParentCollectionID: req.ParentCollectionID,
		ConditionID:        req.ConditionID,
		Partition:          req.Partition,
		Amount:             req.Amount,
	}, nil
}

func buildRedeemRequest(f redeemFlags, defaultCollateral string) (*ctf.RedeemRequest, error) {
	conditionID, err := ctf.ParseHash32(f.condition)
	if err != nil {
		return nil, err
	}
	collateral, err := ctf.ParseAddress(orDefault(f.collateral, defaultCollateral))
	if err != nil {
		return nil, err
	}
	parent, err := ctf.ParseParentCollection(f.parentCollection)
	if err != nil {
		return nil, err
	}
	indexSets, err := ctf.BuildIndexSets(f.indexSets)
	if err != nil {
		return nil, err
	}
	return &ctf.RedeemRequest{
		CollateralToken:    collateral,
		ParentCollectionID: parent,
		ConditionID:        conditionID,
		IndexSets:          indexSets,
	}, nil
}

func buildRedeemNegRiskRequest(condition, amounts string) (*ctf.RedeemNegRiskRequest, error) {
	conditionID, err := ctf.ParseHash32(condition)
	if err != nil {
		return nil, err
	}
	parsed, err := ctf.ParseAmountCSV(amounts)
	if err != nil {
		return nil, err
	}
	return &ctf.RedeemNegRiskRequest{ConditionID: conditionID, Amounts: parsed}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ---------------------------------------------------------------------------
// Dispatch. Parse, assemble, select the provider capability for the
// operation kind, invoke, relay.
// ---------------------------------------------------------------------------

func (a *App) runSplit(ctx context.Context, f splitFlags) error {
	req, err := buildSplitRequest(f, a.cfg.Chain.Collateral)
	if err != nil {
		return err
	}
	provider, exec, err := a.signingExecutor(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindSplit), provider.Client, exec)
	res, err := client.SplitPosition(ctx, req)
	if err != nil {
		return err
	}
	return a.out.TxResult("split", res)
}

func (a *App) runMerge(ctx context.Context, f splitFlags) error {
	req, err := buildMergeRequest(f, a.cfg.Chain.Collateral)
	if err != nil {
		return err
	}
	provider, exec, err := a.signingExecutor(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindMerge), provider.Client, exec)
	res, err := client.MergePositions(ctx, req)
	if err != nil {
		return err
	}
	return a.out.TxResult("merge", res)
}

func (a *App) runRedeem(ctx context.Context, f redeemFlags) error {
	req, err := buildRedeemRequest(f, a.cfg.Chain.Collateral)
	if err != nil {
		return err
	}
	provider, exec, err := a.signingExecutor(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindRedeem), provider.Client, exec)
	res, err := client.RedeemPositions(ctx, req)
	if err != nil {
		return err
	}
	return a.out.TxResult("redeem", res)
}

func (a *App) runRedeemNegRisk(ctx context.Context, condition, amounts string) error {
	req, err := buildRedeemNegRiskRequest(condition, amounts)
	if err != nil {
		return err
	}
	provider, exec, err := a.signingExecutor(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewNegRiskClient(a.contractFor(ctf.KindRedeemNegRisk), exec)
	res, err := client.RedeemNegRisk(ctx, req)
	if err != nil {
		return err
	}
	return a.out.TxResult("redeem-neg-risk", res)
}

func (a *App) runConditionID(ctx context.Context, oracle, question string, outcomes uint64) error {
	oracleAddr, err := ctf.ParseAddress(oracle)
	if err != nil {
		return err
	}
	questionID, err := ctf.ParseHash32(question)
	if err != nil {
		return err
	}
	if outcomes == 0 {
		return fmt.Errorf("outcome count must be positive")
	}
	req := &ctf.ConditionIDRequest{
		Oracle:           oracleAddr,
		QuestionID:       questionID,
		OutcomeSlotCount: new(big.Int).SetUint64(outcomes),
	}

	provider, err := a.readonlyProvider(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindConditionID), provider.Client, nil)
	id, err := client.ConditionID(ctx, req)
	if err != nil {
		return err
	}
	return a.out.ID("condition_id", id.Hex())
}

func (a *App) runCollectionID(ctx context.Context, condition string, indexSet uint64, parentCollection string) error {
	conditionID, err := ctf.ParseHash32(condition)
	if err != nil {
		return err
	}
	parent, err := ctf.ParseParentCollection(parentCollection)
	if err != nil {
		return err
	}
	req := &ctf.CollectionIDRequest{
		ParentCollectionID: parent,
		ConditionID:        conditionID,
		IndexSet:           new(big.Int).SetUint64(indexSet),
	}

	provider, err := a.readonlyProvider(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindCollectionID), provider.Client, nil)
	id, err := client.CollectionID(ctx, req)
	if err != nil {
		return err
	}
	return a.out.ID("collection_id", id.Hex())
}

func (a *App) runPositionID(ctx context.Context, collateral, collection string) error {
	collateralAddr, err := ctf.ParseAddress(orDefault(collateral, a.cfg.Chain.Collateral))
	if err != nil {
		return err
	}
	collectionID, err := ctf.ParseHash32(collection)
	if err != nil {
		return err
	}
	req := &ctf.PositionIDRequest{
		CollateralToken: collateralAddr,
		CollectionID:    collectionID,
	}

	provider, err := a.readonlyProvider(ctx)
	if err != nil {
		return err
	}
	defer provider.Close()

	client := ctf.NewClient(a.contractFor(ctf.KindPositionID), provider.Client, nil)
	id, err := client.PositionID(ctx, req)
	if err != nil {
		return err
	}
	return a.out.ID("position_id", id.String())
}
