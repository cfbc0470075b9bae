package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/client"
	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/plugins/clubs"
)

const (
	flagClubID   = "club-id"
	flagClubName = "name"
	flagAdmin    = "admin"
	flagOfficer  = "officer"
	flagMember   = "member"
)

func CreateClubCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a club (registry admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			admin, err := sdk.AccAddressFromBech32(viper.GetString(flagAdmin))
			if err != nil {
				return err
			}

			msg := clubs.NewMsgCreateClub(from, viper.GetString(flagClubName), admin)
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().String(flagClubName, "", "club name")
	cmd.Flags().String(flagAdmin, "", "address of the club admin")

	return cmd
}

func AddOfficerCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-officer",
		Short: "appoint a club officer (club admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			officer, err := sdk.AccAddressFromBech32(viper.GetString(flagOfficer))
			if err != nil {
				return err
			}

			msg := clubs.NewMsgAddOfficer(from, types.ClubID(viper.GetInt64(flagClubID)), officer)
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id")
	cmd.Flags().String(flagOfficer, "", "address of the officer")

	return cmd
}

func RemoveOfficerCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-officer",
		Short: "dismiss a club officer (club admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			officer, err := sdk.AccAddressFromBech32(viper.GetString(flagOfficer))
			if err != nil {
				return err
			}

			msg := clubs.NewMsgRemoveOfficer(from, types.ClubID(viper.GetInt64(flagClubID)), officer)
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id")
	cmd.Flags().String(flagOfficer, "", "address of the officer")

	return cmd
}

func AddMemberCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-member",
		Short: "register a club member (club admin or officer)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			member, err := sdk.AccAddressFromBech32(viper.GetString(flagMember))
			if err != nil {
				return err
			}

			msg := clubs.NewMsgAddMember(from, types.ClubID(viper.GetInt64(flagClubID)), member)
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id")
	cmd.Flags().String(flagMember, "", "address of the member")

	return cmd
}

func RemoveMemberCmd(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-member",
		Short: "strike a club member (club admin or officer)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := client.PrepareCtx(cdc)
			from, err := cliCtx.GetFromAddress()
			if err != nil {
				return err
			}

			member, err := sdk.AccAddressFromBech32(viper.GetString(flagMember))
			if err != nil {
				return err
			}

			msg := clubs.NewMsgRemoveMember(from, types.ClubID(viper.GetInt64(flagClubID)), member)
			if err := msg.ValidateBasic(); err != nil {
				return fmt.Errorf("%v", err.Data())
			}
			return client.SendOrPrintTx(cliCtx, txBldr, msg)
		},
	}

	cmd.Flags().Int64(flagClubID, 0, "club id")
	cmd.Flags().String(flagMember, "", "address of the member")

	return cmd
}
