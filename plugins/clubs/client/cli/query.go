package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/plugins/clubs"
)

func QueryClubCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "query a club by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			params := clubs.QueryClubParams{
				ClubID: types.ClubID(viper.GetInt64(flagClubID)),
			}
			bz, err := cdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			res, err := cliCtx.QueryWithData("custom/clubs/club", bz)
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

func QueryMemberCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "query the clubs an account belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			member, err := sdk.AccAddressFromBech32(viper.GetString(flagMember))
			if err != nil {
				return err
			}

			params := clubs.QueryMemberParams{
				Member: member,
			}
			bz, err := cdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			res, err := cliCtx.QueryWithData("custom/clubs/member", bz)
			if err != nil {
				return err
			}
			fmt.Println(string(res))
			return nil
		},
	}

	cmd.Flags().String(flagMember, "", "address of the member")

	return cmd
}
