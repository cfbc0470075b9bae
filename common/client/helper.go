package client

import (
	"github.com/cosmos/cosmos-sdk/client/context"
	txutils "github.com/cosmos/cosmos-sdk/client/utils"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcmd "github.com/cosmos/cosmos-sdk/x/auth/client/cli"
	txbuilder "github.com/cosmos/cosmos-sdk/x/auth/client/txbuilder"
)

func PrepareCtx(cdc *codec.Codec) (context.CLIContext, txbuilder.TxBuilder) {
	txBldr := txbuilder.NewTxBuilderFromCLI().WithCodec(cdc)
	cliCtx := context.NewCLIContext().
		WithCodec(cdc).
		WithAccountDecoder(authcmd.GetAccountDecoder(cdc))
	return cliCtx, txBldr
}

func SendOrPrintTx(ctx context.CLIContext, builder txbuilder.TxBuilder, msg sdk.Msg) error {
	if ctx.GenerateOnly {
		return txutils.PrintUnsignedStdTx(builder, ctx, []sdk.Msg{msg})
	}

	return txutils.CompleteAndBroadcastTxCli(builder, ctx, []sdk.Msg{msg})
}
