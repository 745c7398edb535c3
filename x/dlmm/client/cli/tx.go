package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pearl-chain/pearl/x/dlmm/types"
)

// GetTxCmd returns the transaction commands for the dlmm module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "DLMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		CmdCreatePool(),
		CmdSwap(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdClaimFees(),
	)

	return txCmd
}

// CmdCreatePool returns a CLI command handler for creating a DLMM pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-x] [token-y] [bin-step] [active-bin-id] [base-factor] [protocol-fee-bps] [seed-x] [seed-y]",
		Short: "Create a new DLMM pool",
		Long: `Create a new discretized-liquidity pool. The active bin's price is
(1 + bin-step/10000)^active-bin-id; the seed amounts go into the active bin.

Example:
  $ pearld tx dlmm create-pool upearl uusdt 25 0 100 3000 1000000 1000000 --from mykey`,
		Args: cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			binStep, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid bin-step: %w", err)
			}
			activeBinID, err := strconv.ParseInt(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid active-bin-id: %w", err)
			}
			baseFactor, err := strconv.ParseUint(args[4], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid base-factor: %w", err)
			}
			protocolFee, err := strconv.ParseUint(args[5], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid protocol-fee-bps: %w", err)
			}
			seedX, ok := math.NewIntFromString(args[6])
			if !ok {
				return fmt.Errorf("invalid seed-x: %s (must be integer)", args[6])
			}
			seedY, ok := math.NewIntFromString(args[7])
			if !ok {
				return fmt.Errorf("invalid seed-y: %s (must be integer)", args[7])
			}

			msg := types.NewMsgCreatePool(
				clientCtx.GetFromAddress().String(),
				args[0], args[1],
				uint32(binStep), int32(activeBinID),
				uint32(baseFactor), uint32(protocolFee),
				seedX, seedY,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [direction] [amount-in] [min-amount-out]",
		Short: "Execute a swap",
		Long: `Execute a swap against a DLMM pool. Direction is x_for_y or y_for_x.

The min-amount-out parameter protects against slippage; the transaction
fails if the output falls short. Use the quote-swap query to estimate the
output first.

Example:
  $ pearld tx dlmm swap 1 x_for_y 1000000 990000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			dir, err := parseDirection(args[1])
			if err != nil {
				return err
			}
			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}
			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), poolID, dir, amountIn, minAmountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a bin
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [bin-id] [amount-x] [amount-y]",
		Short: "Deposit into a single bin",
		Long: `Deposit into one bin of a DLMM pool. Bins above the active bin take
only token X, bins below only token Y; the active bin takes both.

Example:
  $ pearld tx dlmm add-liquidity 1 0 1000000 1000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			binID, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid bin ID: %w", err)
			}
			amountX, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-x: %s (must be integer)", args[2])
			}
			amountY, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-y: %s (must be integer)", args[3])
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), poolID, int32(binID), amountX, amountY)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for burning bin shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [bin-id] [shares]",
		Short: "Burn shares of a single bin",
		Long: `Burn bin shares and withdraw the proportional reserves plus any
pending fees.

Example:
  $ pearld tx dlmm remove-liquidity 1 0 500000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			binID, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid bin ID: %w", err)
			}
			shares, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[2])
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), poolID, int32(binID), shares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimFees returns a CLI command handler for claiming bin fees
func CmdClaimFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-fees [pool-id] [bin-id]",
		Short: "Claim accrued fees of a bin position",
		Long: `Claim the fees a bin position has accrued without burning any shares.

Example:
  $ pearld tx dlmm claim-fees 1 0 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			binID, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid bin ID: %w", err)
			}

			msg := types.NewMsgClaimFees(clientCtx.GetFromAddress().String(), poolID, int32(binID))
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseDirection(s string) (types.SwapDirection, error) {
	switch s {
	case "x_for_y":
		return types.SwapDirectionXForY, nil
	case "y_for_x":
		return types.SwapDirectionYForX, nil
	}
	return 0, fmt.Errorf("invalid direction %q (want x_for_y or y_for_x)", s)
}
