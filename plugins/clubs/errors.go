package clubs

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 10

	CodeClubNotFound     sdk.CodeType = 1
	CodeMemberNotFound   sdk.CodeType = 2
	CodeAlreadyMember    sdk.CodeType = 3
	CodeNotClubAdmin     sdk.CodeType = 4
	CodeNotRegistryAdmin sdk.CodeType = 5
	CodeOfficersOverflow sdk.CodeType = 6
	CodeClubsOverflow    sdk.CodeType = 7
	CodeInvalidClubName  sdk.CodeType = 8
	CodeAlreadyOfficer   sdk.CodeType = 9
)

func ErrClubNotFound(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeClubNotFound, msg)
}

func ErrMemberNotFound(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeMemberNotFound, msg)
}

func ErrAlreadyMember(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyMember, msg)
}

func ErrNotClubAdmin(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotClubAdmin, msg)
}

func ErrNotRegistryAdmin(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeNotRegistryAdmin, msg)
}

func ErrOfficersOverflow(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeOfficersOverflow, msg)
}

func ErrClubsOverflow(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeClubsOverflow, msg)
}

func ErrInvalidClubName(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeInvalidClubName, msg)
}

func ErrAlreadyOfficer(msg string) sdk.Error {
	return sdk.NewError(DefaultCodespace, CodeAlreadyOfficer, msg)
}
