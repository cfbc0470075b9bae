package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/plugins/proposals"
)

func QueryProposalCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "query a proposal by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			params := proposals.QueryProposalParams{
				ProposalID: viper.GetInt64(flagProposalID),
			}
			bz, err := cdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			res, err := cliCtx.QueryWithData("custom/proposals/proposal", bz)
			if err != nil {
				return err
			}
			fmt.Println(string(res))
			return nil
		},
	}

	cmd.Flags().Int64(flagProposalID, 0, "proposal id")

	return cmd
}

func QueryClubProposalsCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-club",
		Short: "query the live proposals of a club",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			params := proposals.QueryClubProposalsParams{
				ClubID: types.ClubID(viper.GetInt64(flagClubID)),
			}
			bz, err := cdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			res, err := cliCtx.QueryWithData("custom/proposals/club", bz)
			if err != nil {
				return err
			}
			fmt.Println(string(res))
			return nil
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id")

	return cmd
}

func QueryNextIDCmd(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "query the id the next proposal will take",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, err := cliCtx.QueryWithData("custom/proposals/nextid", nil)
			if err != nil {
				return err
			}
			fmt.Println(string(res))
			return nil
		},
	}
}
