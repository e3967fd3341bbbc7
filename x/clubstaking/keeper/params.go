package keeper

import (
	"context"

	"github.com/productscience/clubstaking/x/clubstaking/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.params.Get(ctx)
	if err != nil {
		return types.Params{}, storageErr(err, "read params")
	}
	return params, nil
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}
