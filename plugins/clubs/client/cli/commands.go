package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/spf13/cobra"
)

func AddCommands(cmd *cobra.Command, cdc *codec.Codec) {
	clubCmd := &cobra.Command{
		Use:   "clubs",
		Short: "member registry commands",
	}

	clubCmd.AddCommand(
		client.PostCommands(
			CreateClubCmd(cdc),
			AddOfficerCmd(cdc),
			RemoveOfficerCmd(cdc),
			AddMemberCmd(cdc),
			RemoveMemberCmd(cdc),
		)...,
	)
	clubCmd.AddCommand(
		client.GetCommands(
			QueryClubCmd(cdc),
			QueryMemberCmd(cdc),
		)...,
	)

	cmd.AddCommand(clubCmd)
}
