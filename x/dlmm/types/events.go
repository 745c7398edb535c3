package types

// Event types for the DLMM module
const (
	EventTypeCreatePool      = "dlmm_create_pool"
	EventTypeSwap            = "dlmm_swap"
	EventTypeAddLiquidity    = "dlmm_add_liquidity"
	EventTypeRemoveLiquidity = "dlmm_remove_liquidity"
	EventTypeClaimFees       = "dlmm_claim_fees"
	EventTypeFeesCollected   = "dlmm_fees_collected"
	EventTypeProtocolSweep   = "dlmm_protocol_fee_sweep"
	EventTypePoolStatus      = "dlmm_pool_status"
	EventTypeBaseFactorSet   = "dlmm_base_factor_set"
	EventTypeVolatilityReset = "dlmm_volatility_reset"
	EventTypeParamsUpdated   = "dlmm_params_updated"
)

// Event attribute keys
const (
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyTrader      = "trader"
	AttributeKeyProvider    = "provider"
	AttributeKeyBinID       = "bin_id"
	AttributeKeyBinStep     = "bin_step"
	AttributeKeyTokenX      = "token_x"
	AttributeKeyTokenY      = "token_y"
	AttributeKeyDirection   = "direction"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyAmountX     = "amount_x"
	AttributeKeyAmountY     = "amount_y"
	AttributeKeyFee         = "fee"
	AttributeKeyProtocolFee = "protocol_fee"
	AttributeKeyFeeX        = "fee_x"
	AttributeKeyFeeY        = "fee_y"
	AttributeKeyShares      = "shares"
	AttributeKeyBinsCrossed = "bins_crossed"
	AttributeKeyActiveBinID = "active_bin_id"
	AttributeKeyPriceImpact = "price_impact_bps"
	AttributeKeyVolatility  = "volatility"
	AttributeKeyActive      = "active"
	AttributeKeyBaseFactor  = "base_factor"
	AttributeKeyAuthority   = "authority"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
)
