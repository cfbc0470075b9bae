package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/spf13/cobra"
)

func AddCommands(cmd *cobra.Command, cdc *codec.Codec) {
	proposalCmd := &cobra.Command{
		Use:   "proposals",
		Short: "governance proposal commands",
	}

	proposalCmd.AddCommand(
		client.PostCommands(
			SubmitProposalCmd(cdc),
			VoteCmd(cdc),
			ExecuteProposalCmd(cdc),
			CancelProposalCmd(cdc),
		)...,
	)
	proposalCmd.AddCommand(
		client.GetCommands(
			QueryProposalCmd(cdc),
			QueryClubProposalsCmd(cdc),
			QueryNextIDCmd(cdc),
		)...,
	)

	cmd.AddCommand(proposalCmd)
}
