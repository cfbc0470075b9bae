package clubs

import (
	"encoding/binary"
	"fmt"
	"reflect"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(kp Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case MsgCreateClub:
			return handleCreateClub(ctx, kp, msg)
		case MsgAddOfficer:
			return handleAddOfficer(ctx, kp, msg)
		case MsgRemoveOfficer:
			return handleRemoveOfficer(ctx, kp, msg)
		case MsgAddMember:
			return handleAddMember(ctx, kp, msg)
		case MsgRemoveMember:
			return handleRemoveMember(ctx, kp, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized message type: %v", reflect.TypeOf(msg).Name())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleCreateClub(ctx sdk.Context, kp Keeper, msg MsgCreateClub) sdk.Result {
	if !kp.IsRegistryAdmin(ctx, msg.From) {
		return ErrNotRegistryAdmin(fmt.Sprintf("%s is not the registry admin", msg.From)).Result()
	}
	id, err := kp.CreateClub(ctx, msg.Name, msg.Admin)
	if err != nil {
		return err.Result()
	}
	idBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(idBytes, id)
	return sdk.Result{Data: idBytes}
}

func handleAddOfficer(ctx sdk.Context, kp Keeper, msg MsgAddOfficer) sdk.Result {
	club := kp.GetClub(ctx, msg.ClubID)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", msg.ClubID)).Result()
	}
	if !club.Admin.Equals(msg.From) {
		return ErrNotClubAdmin(fmt.Sprintf("%s is not the admin of club %d", msg.From, msg.ClubID)).Result()
	}
	if err := kp.AddOfficer(ctx, msg.ClubID, msg.Officer); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleRemoveOfficer(ctx sdk.Context, kp Keeper, msg MsgRemoveOfficer) sdk.Result {
	club := kp.GetClub(ctx, msg.ClubID)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", msg.ClubID)).Result()
	}
	if !club.Admin.Equals(msg.From) {
		return ErrNotClubAdmin(fmt.Sprintf("%s is not the admin of club %d", msg.From, msg.ClubID)).Result()
	}
	if err := kp.RemoveOfficer(ctx, msg.ClubID, msg.Officer); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleAddMember(ctx sdk.Context, kp Keeper, msg MsgAddMember) sdk.Result {
	authorized, err := kp.IsOfficerOrAdmin(ctx, msg.ClubID, msg.From)
	if err != nil {
		return err.Result()
	}
	if !authorized {
		return ErrNotClubAdmin(fmt.Sprintf("%s is neither the admin nor an officer of club %d", msg.From, msg.ClubID)).Result()
	}
	if err := kp.AddMember(ctx, msg.ClubID, msg.Member); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}

func handleRemoveMember(ctx sdk.Context, kp Keeper, msg MsgRemoveMember) sdk.Result {
	authorized, err := kp.IsOfficerOrAdmin(ctx, msg.ClubID, msg.From)
	if err != nil {
		return err.Result()
	}
	if !authorized {
		return ErrNotClubAdmin(fmt.Sprintf("%s is neither the admin nor an officer of club %d", msg.From, msg.ClubID)).Result()
	}
	if err := kp.RemoveMember(ctx, msg.ClubID, msg.Member); err != nil {
		return err.Result()
	}
	return sdk.Result{}
}
