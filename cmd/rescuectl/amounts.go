package main

import (
	"fmt"
	"math/big"

	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/spf13/cobra"
)

func newAmountsCmd() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "amounts",
		Short: "Convert token amounts",
	}
	cmd.PersistentFlags().IntVar(&decimals, "decimals", constants.StableTokenDecimals, "token decimals")

	cmd.AddCommand(
		&cobra.Command{
			Use:     "scale AMOUNT",
			Short:   "Convert a decimal amount to base units",
			Example: "  rescuectl amounts scale 1.5   # 1500000",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				units, err := helpers.ParseUnits(args[0], decimals)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), units.String())
				return nil
			},
		},
		&cobra.Command{
			Use:     "format UNITS",
			Short:   "Convert base units to a decimal amount",
			Example: "  rescuectl amounts format 1500000   # 1.5",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				units, ok := new(big.Int).SetString(args[0], 10)
				if !ok {
					return fmt.Errorf("invalid base unit amount %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), helpers.FormatUnitsTrimmed(units, decimals))
				return nil
			},
		},
	)
	return cmd
}
