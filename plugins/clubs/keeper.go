package clubs

import (
	"encoding/binary"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/club-chain/node/common/log"
	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/wire"
)

type Keeper struct {
	ck sdk.StoreKey

	cdc       *wire.Codec
	codespace sdk.CodespaceType
	logger    tmlog.Logger
}

func NewKeeper(cdc *wire.Codec, key sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		ck:        key,
		cdc:       cdc,
		codespace: codespace,
		logger:    log.With("module", "clubs"),
	}
}

// SetRegistryAdmin records the registry admin. Set once at genesis.
func (kp Keeper) SetRegistryAdmin(ctx sdk.Context, admin sdk.AccAddress) {
	store := ctx.KVStore(kp.ck)
	store.Set(RegistryAdminKey, admin.Bytes())
}

func (kp Keeper) GetRegistryAdmin(ctx sdk.Context) sdk.AccAddress {
	store := ctx.KVStore(kp.ck)
	bz := store.Get(RegistryAdminKey)
	if bz == nil {
		return nil
	}
	return sdk.AccAddress(bz)
}

func (kp Keeper) IsRegistryAdmin(ctx sdk.Context, addr sdk.AccAddress) bool {
	admin := kp.GetRegistryAdmin(ctx)
	return admin != nil && admin.Equals(addr)
}

func (kp Keeper) getNextClubID(ctx sdk.Context) types.ClubID {
	store := ctx.KVStore(kp.ck)
	var id types.ClubID = 1
	if bz := store.Get(NextClubIDKey); bz != nil {
		id = binary.BigEndian.Uint32(bz)
	}
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id+1)
	store.Set(NextClubIDKey, bz)
	return id
}

// CreateClub allocates a club id and stores the club record.
func (kp Keeper) CreateClub(ctx sdk.Context, name string, admin sdk.AccAddress) (types.ClubID, sdk.Error) {
	if len(name) == 0 || len(name) > MaxClubNameLen {
		return 0, ErrInvalidClubName(fmt.Sprintf("club name length should be in [1, %d]", MaxClubNameLen))
	}
	id := kp.getNextClubID(ctx)
	club := &ClubInfo{
		ID:    id,
		Name:  name,
		Admin: admin,
	}
	kp.setClub(ctx, club)
	kp.logger.Info("created club", "id", id, "name", name, "admin", admin.String())
	return id, nil
}

func (kp Keeper) GetClub(ctx sdk.Context, id types.ClubID) *ClubInfo {
	store := ctx.KVStore(kp.ck)
	bz := store.Get(GetClubKey(id))
	if bz == nil {
		return nil
	}
	var club ClubInfo
	kp.cdc.MustUnmarshalBinaryBare(bz, &club)
	return &club
}

func (kp Keeper) setClub(ctx sdk.Context, club *ClubInfo) {
	store := ctx.KVStore(kp.ck)
	store.Set(GetClubKey(club.ID), kp.cdc.MustMarshalBinaryBare(*club))
}

func (kp Keeper) getMember(ctx sdk.Context, addr sdk.AccAddress) *MemberInfo {
	store := ctx.KVStore(kp.ck)
	bz := store.Get(GetMemberKey(addr))
	if bz == nil {
		return nil
	}
	var member MemberInfo
	kp.cdc.MustUnmarshalBinaryBare(bz, &member)
	return &member
}

func (kp Keeper) setMember(ctx sdk.Context, addr sdk.AccAddress, member *MemberInfo) {
	store := ctx.KVStore(kp.ck)
	if len(member.Clubs) == 0 {
		store.Delete(GetMemberKey(addr))
		return
	}
	store.Set(GetMemberKey(addr), kp.cdc.MustMarshalBinaryBare(*member))
}

// AddOfficer appoints an officer of the club.
func (kp Keeper) AddOfficer(ctx sdk.Context, id types.ClubID, officer sdk.AccAddress) sdk.Error {
	club := kp.GetClub(ctx, id)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", id))
	}
	if club.IsOfficer(officer) {
		return ErrAlreadyOfficer(fmt.Sprintf("%s is already an officer of club %d", officer, id))
	}
	if len(club.Officers) >= MaxOfficersPerClub {
		return ErrOfficersOverflow(fmt.Sprintf("club %d already has %d officers", id, MaxOfficersPerClub))
	}
	club.Officers = append(club.Officers, officer)
	kp.setClub(ctx, club)
	return nil
}

// RemoveOfficer dismisses an officer of the club.
func (kp Keeper) RemoveOfficer(ctx sdk.Context, id types.ClubID, officer sdk.AccAddress) sdk.Error {
	club := kp.GetClub(ctx, id)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", id))
	}
	for i, o := range club.Officers {
		if o.Equals(officer) {
			club.Officers = append(club.Officers[:i], club.Officers[i+1:]...)
			kp.setClub(ctx, club)
			return nil
		}
	}
	return ErrMemberNotFound(fmt.Sprintf("%s is not an officer of club %d", officer, id))
}

// AddMember registers addr as a member of the club.
func (kp Keeper) AddMember(ctx sdk.Context, id types.ClubID, addr sdk.AccAddress) sdk.Error {
	club := kp.GetClub(ctx, id)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", id))
	}
	member := kp.getMember(ctx, addr)
	if member == nil {
		member = &MemberInfo{}
	}
	if member.InClub(id) {
		return ErrAlreadyMember(fmt.Sprintf("%s is already a member of club %d", addr, id))
	}
	if len(member.Clubs) >= MaxClubsPerMember {
		return ErrClubsOverflow(fmt.Sprintf("%s already belongs to %d clubs", addr, MaxClubsPerMember))
	}
	member.Clubs = append(member.Clubs, id)
	kp.setMember(ctx, addr, member)
	club.MembersCount++
	kp.setClub(ctx, club)
	return nil
}

// RemoveMember strikes addr from the club roster.
func (kp Keeper) RemoveMember(ctx sdk.Context, id types.ClubID, addr sdk.AccAddress) sdk.Error {
	club := kp.GetClub(ctx, id)
	if club == nil {
		return ErrClubNotFound(fmt.Sprintf("club %d does not exist", id))
	}
	member := kp.getMember(ctx, addr)
	if member == nil || !member.InClub(id) {
		return ErrMemberNotFound(fmt.Sprintf("%s is not a member of club %d", addr, id))
	}
	for i, c := range member.Clubs {
		if c == id {
			member.Clubs = append(member.Clubs[:i], member.Clubs[i+1:]...)
			break
		}
	}
	kp.setMember(ctx, addr, member)
	club.MembersCount--
	kp.setClub(ctx, club)
	return nil
}

// IsMember reports whether addr belongs to at least one club.
func (kp Keeper) IsMember(ctx sdk.Context, addr sdk.AccAddress) bool {
	member := kp.getMember(ctx, addr)
	return member != nil && len(member.Clubs) > 0
}

// IsClubMember reports whether addr belongs to the given club.
func (kp Keeper) IsClubMember(ctx sdk.Context, id types.ClubID, addr sdk.AccAddress) bool {
	member := kp.getMember(ctx, addr)
	return member != nil && member.InClub(id)
}

// MemberClubs returns the clubs addr belongs to, nil for non-members.
func (kp Keeper) MemberClubs(ctx sdk.Context, addr sdk.AccAddress) []types.ClubID {
	member := kp.getMember(ctx, addr)
	if member == nil {
		return nil
	}
	return member.Clubs
}

// IsOfficerOrAdmin reports whether addr may manage the club roster.
func (kp Keeper) IsOfficerOrAdmin(ctx sdk.Context, id types.ClubID, addr sdk.AccAddress) (bool, sdk.Error) {
	club := kp.GetClub(ctx, id)
	if club == nil {
		return false, ErrClubNotFound(fmt.Sprintf("club %d does not exist", id))
	}
	return club.Admin.Equals(addr) || club.IsOfficer(addr), nil
}
