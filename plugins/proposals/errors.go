package proposals

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 9

	CodeUnknownProposal       sdk.CodeType = 1
	CodeVotingClosed          sdk.CodeType = 2
	CodeAlreadyVoted          sdk.CodeType = 3
	CodeNotMember             sdk.CodeType = 4
	CodeNotClubMember         sdk.CodeType = 5
	CodeNotAuthorized         sdk.CodeType = 6
	CodeAlreadyExecuted       sdk.CodeType = 7
	CodeQuorumNotReached      sdk.CodeType = 8
	CodeProposalNotPassed     sdk.CodeType = 9
	CodeInvalidActionEncoding sdk.CodeType = 10
	CodeExecutionFailed       sdk.CodeType = 11
	CodeActionTooLarge        sdk.CodeType = 12
	CodeMetadataTooLarge      sdk.CodeType = 13
	CodeVotersOverflow        sdk.CodeType = 14
	CodeClubIndexOverflow     sdk.CodeType = 15
	CodeProposalIDOverflow    sdk.CodeType = 16
)

func ErrUnknownProposal(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeUnknownProposal, msg)
}

func ErrVotingClosed(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVotingClosed, msg)
}

func ErrAlreadyVoted(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyVoted, msg)
}

func ErrNotMember(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotMember, msg)
}

func ErrNotClubMember(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotClubMember, msg)
}

func ErrNotAuthorized(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotAuthorized, msg)
}

func ErrAlreadyExecuted(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyExecuted, msg)
}

func ErrQuorumNotReached(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeQuorumNotReached, msg)
}

func ErrProposalNotPassed(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalNotPassed, msg)
}

func ErrInvalidActionEncoding(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidActionEncoding, msg)
}

func ErrExecutionFailed(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeExecutionFailed, msg)
}

func ErrActionTooLarge(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeActionTooLarge, msg)
}

func ErrMetadataTooLarge(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeMetadataTooLarge, msg)
}

func ErrVotersOverflow(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeVotersOverflow, msg)
}

func ErrClubIndexOverflow(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeClubIndexOverflow, msg)
}

func ErrProposalIDOverflow(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeProposalIDOverflow, msg)
}
