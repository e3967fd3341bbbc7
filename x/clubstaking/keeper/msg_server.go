package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// UpdateParams replaces the module params. Only the authority may call it.
func (k msgServer) UpdateParams(goCtx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if k.GetAuthority() != req.Authority {
		return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), req.Authority)
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}
	k.LogInfo("params updated", types.Config, "operator", req.Params.Operator, "denom", req.Params.Denom)

	return &types.MsgUpdateParamsResponse{}, nil
}

// actingAs checks that creator signs for actor and returns actor's address.
func actingAs(creator string, actor string, role string) (sdk.AccAddress, error) {
	creatorAddr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "invalid creator address: %s", creator)
	}
	actorAddr, err := sdk.AccAddressFromBech32(actor)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "invalid %s address: %s", role, actor)
	}
	if !creatorAddr.Equals(actorAddr) {
		return nil, types.ErrUnauthorized.Wrapf("%s cannot act as %s %s", creator, role, actor)
	}
	return actorAddr, nil
}

// requireOperator fails unless creator is the operator configured in params.
func requireOperator(params types.Params, creator string) error {
	creatorAddr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		return errorsmod.Wrapf(err, "invalid creator address: %s", creator)
	}
	operatorAddr, err := sdk.AccAddressFromBech32(params.Operator)
	if err != nil {
		return errorsmod.Wrapf(err, "invalid operator address: %s", params.Operator)
	}
	if !creatorAddr.Equals(operatorAddr) {
		return types.ErrUnauthorized.Wrapf("%s is not the operator", creator)
	}
	return nil
}
