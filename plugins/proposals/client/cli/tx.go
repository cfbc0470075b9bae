package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/codec"

	"github.com/club-chain/node/common/client"
	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/plugins/proposals"
)

const (
	flagClubID        = "club-id"
	flagAction        = "action"
	flagMetadata      = "metadata"
	flagVotingPeriod  = "voting-period"
	flagQuorum        = "quorum"
	flagPassThreshold = "pass-threshold"
	flagProposalID    = "proposal-id"
	flagApprove       = "approve"
)

func SubmitProposalCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "submit a governance proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			action, err := hex.DecodeString(viper.GetString(flagAction))
			if err != nil {
				return fmt.Errorf("action must be hex encoded: %v", err)
			}

			scope := proposals.GlobalScope()
			if clubID := viper.GetInt64(flagClubID); clubID > 0 {
				scope = proposals.ClubScope(types.ClubID(clubID))
			}

			msg := proposals.NewMsgSubmitProposal(from, scope, action, []byte(viper.GetString(flagMetadata)))
			msg.VotingPeriod = viper.GetInt64(flagVotingPeriod)
			msg.Quorum = types.Votes(viper.GetInt64(flagQuorum))
			msg.PassThreshold = uint32(viper.GetInt64(flagPassThreshold))

			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id for a club-scoped proposal, 0 for global scope")
	cmd.Flags().String(flagAction, "", "hex encoded action to dispatch on execution")
	cmd.Flags().String(flagMetadata, "", "free-form proposal metadata")
	cmd.Flags().Int64(flagVotingPeriod, 0, "voting period in blocks, 0 for the default")
	cmd.Flags().Int64(flagQuorum, 0, "minimum total votes, 0 for the default")
	cmd.Flags().Int64(flagPassThreshold, 0, "pass threshold in basis points, 0 for the default")

	return cmd
}

func VoteCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "vote on an open proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := proposals.NewMsgVote(from, viper.GetInt64(flagProposalID), viper.GetBool(flagApprove))
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagProposalID, 0, "proposal id")
	cmd.Flags().Bool(flagApprove, false, "approve the proposal")

	return cmd
}

func ExecuteProposalCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "settle a proposal whose voting window has closed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := proposals.NewMsgExecuteProposal(from, viper.GetInt64(flagProposalID))
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagProposalID, 0, "proposal id")

	return cmd
}

func CancelProposalCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "cancel a proposal (registry admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			msg := proposals.NewMsgCancelProposal(from, viper.GetInt64(flagProposalID))
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagProposalID, 0, "proposal id")

	return cmd
}
