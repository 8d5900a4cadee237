// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

// HostFnWeights holds the cost of each host function exposed to contracts.
// Fields ending in PerByte (or PerTopic, PerClonedByte, ...) are charged once
// per unit on top of the fixed cost of the call.
type HostFnWeights struct {
	Caller                       Weight `json:"caller" yaml:"caller"`
	IsContract                   Weight `json:"is_contract" yaml:"is_contract"`
	CodeHash                     Weight `json:"code_hash" yaml:"code_hash"`
	OwnCodeHash                  Weight `json:"own_code_hash" yaml:"own_code_hash"`
	CallerIsOrigin               Weight `json:"caller_is_origin" yaml:"caller_is_origin"`
	CallerIsRoot                 Weight `json:"caller_is_root" yaml:"caller_is_root"`
	Address                      Weight `json:"address" yaml:"address"`
	GasLeft                      Weight `json:"gas_left" yaml:"gas_left"`
	Balance                      Weight `json:"balance" yaml:"balance"`
	ValueTransferred             Weight `json:"value_transferred" yaml:"value_transferred"`
	MinimumBalance               Weight `json:"minimum_balance" yaml:"minimum_balance"`
	BlockNumber                  Weight `json:"block_number" yaml:"block_number"`
	Now                          Weight `json:"now" yaml:"now"`
	WeightToFee                  Weight `json:"weight_to_fee" yaml:"weight_to_fee"`
	Gas                          Weight `json:"gas" yaml:"gas"`
	Input                        Weight `json:"input" yaml:"input"`
	InputPerByte                 Weight `json:"input_per_byte" yaml:"input_per_byte"`
	Return                       Weight `json:"return" yaml:"return"`
	ReturnPerByte                Weight `json:"return_per_byte" yaml:"return_per_byte"`
	Terminate                    Weight `json:"terminate" yaml:"terminate"`
	Random                       Weight `json:"random" yaml:"random"`
	DepositEvent                 Weight `json:"deposit_event" yaml:"deposit_event"`
	DepositEventPerTopic         Weight `json:"deposit_event_per_topic" yaml:"deposit_event_per_topic"`
	DepositEventPerByte          Weight `json:"deposit_event_per_byte" yaml:"deposit_event_per_byte"`
	DebugMessage                 Weight `json:"debug_message" yaml:"debug_message"`
	DebugMessagePerByte          Weight `json:"debug_message_per_byte" yaml:"debug_message_per_byte"`
	SetStorage                   Weight `json:"set_storage" yaml:"set_storage"`
	SetStoragePerNewByte         Weight `json:"set_storage_per_new_byte" yaml:"set_storage_per_new_byte"`
	SetStoragePerOldByte         Weight `json:"set_storage_per_old_byte" yaml:"set_storage_per_old_byte"`
	SetCodeHash                  Weight `json:"set_code_hash" yaml:"set_code_hash"`
	ClearStorage                 Weight `json:"clear_storage" yaml:"clear_storage"`
	ClearStoragePerByte          Weight `json:"clear_storage_per_byte" yaml:"clear_storage_per_byte"`
	ContainsStorage              Weight `json:"contains_storage" yaml:"contains_storage"`
	ContainsStoragePerByte       Weight `json:"contains_storage_per_byte" yaml:"contains_storage_per_byte"`
	GetStorage                   Weight `json:"get_storage" yaml:"get_storage"`
	GetStoragePerByte            Weight `json:"get_storage_per_byte" yaml:"get_storage_per_byte"`
	TakeStorage                  Weight `json:"take_storage" yaml:"take_storage"`
	TakeStoragePerByte           Weight `json:"take_storage_per_byte" yaml:"take_storage_per_byte"`
	Transfer                     Weight `json:"transfer" yaml:"transfer"`
	Call                         Weight `json:"call" yaml:"call"`
	DelegateCall                 Weight `json:"delegate_call" yaml:"delegate_call"`
	CallTransferSurcharge        Weight `json:"call_transfer_surcharge" yaml:"call_transfer_surcharge"`
	CallPerClonedByte            Weight `json:"call_per_cloned_byte" yaml:"call_per_cloned_byte"`
	Instantiate                  Weight `json:"instantiate" yaml:"instantiate"`
	InstantiateTransferSurcharge Weight `json:"instantiate_transfer_surcharge" yaml:"instantiate_transfer_surcharge"`
	InstantiatePerInputByte      Weight `json:"instantiate_per_input_byte" yaml:"instantiate_per_input_byte"`
	InstantiatePerSaltByte       Weight `json:"instantiate_per_salt_byte" yaml:"instantiate_per_salt_byte"`
	HashSha2_256                 Weight `json:"hash_sha2_256" yaml:"hash_sha2_256"`
	HashSha2_256PerByte          Weight `json:"hash_sha2_256_per_byte" yaml:"hash_sha2_256_per_byte"`
	HashKeccak256                Weight `json:"hash_keccak_256" yaml:"hash_keccak_256"`
	HashKeccak256PerByte         Weight `json:"hash_keccak_256_per_byte" yaml:"hash_keccak_256_per_byte"`
	HashBlake2_256               Weight `json:"hash_blake2_256" yaml:"hash_blake2_256"`
	HashBlake2_256PerByte        Weight `json:"hash_blake2_256_per_byte" yaml:"hash_blake2_256_per_byte"`
	HashBlake2_128               Weight `json:"hash_blake2_128" yaml:"hash_blake2_128"`
	HashBlake2_128PerByte        Weight `json:"hash_blake2_128_per_byte" yaml:"hash_blake2_128_per_byte"`
	EcdsaRecover                 Weight `json:"ecdsa_recover" yaml:"ecdsa_recover"`
	EcdsaToEthAddress            Weight `json:"ecdsa_to_eth_address" yaml:"ecdsa_to_eth_address"`
	Sr25519Verify                Weight `json:"sr25519_verify" yaml:"sr25519_verify"`
	Sr25519VerifyPerByte         Weight `json:"sr25519_verify_per_byte" yaml:"sr25519_verify_per_byte"`
	ReentranceCount              Weight `json:"reentrance_count" yaml:"reentrance_count"`
	AccountReentranceCount       Weight `json:"account_reentrance_count" yaml:"account_reentrance_count"`
	InstantiationNonce           Weight `json:"instantiation_nonce" yaml:"instantiation_nonce"`
	AddDelegateDependency        Weight `json:"add_delegate_dependency" yaml:"add_delegate_dependency"`
	RemoveDelegateDependency     Weight `json:"remove_delegate_dependency" yaml:"remove_delegate_dependency"`
}

// hostFnBenchmarks lists the host function benchmarks in the order their
// fields are declared.
var hostFnBenchmarks = []Benchmark{
	SealCaller,
	SealIsContract,
	SealCodeHash,
	SealOwnCodeHash,
	SealCallerIsOrigin,
	SealCallerIsRoot,
	SealAddress,
	SealGasLeft,
	SealBalance,
	SealValueTransferred,
	SealMinimumBalance,
	SealBlockNumber,
	SealNow,
	SealWeightToFee,
	SealGas,
	SealInput,
	SealInputPerByte,
	SealReturn,
	SealReturnPerByte,
	SealTerminate,
	SealRandom,
	SealDepositEvent,
	SealDepositEventPerTopicAndByte,
	SealDebugMessage,
	SealDebugMessagePerByte,
	SealSetStorage,
	SealSetStoragePerNewByte,
	SealSetStoragePerOldByte,
	SealSetCodeHash,
	SealClearStorage,
	SealClearStoragePerByte,
	SealContainsStorage,
	SealContainsStoragePerByte,
	SealGetStorage,
	SealGetStoragePerByte,
	SealTakeStorage,
	SealTakeStoragePerByte,
	SealTransfer,
	SealCall,
	SealDelegateCall,
	SealCallPerTransferCloneByte,
	SealInstantiate,
	SealInstantiatePerTransferInputSaltByte,
	SealHashSha2_256,
	SealHashSha2_256PerByte,
	SealHashKeccak256,
	SealHashKeccak256PerByte,
	SealHashBlake2_256,
	SealHashBlake2_256PerByte,
	SealHashBlake2_128,
	SealHashBlake2_128PerByte,
	SealEcdsaRecover,
	SealEcdsaToEthAddress,
	SealSr25519Verify,
	SealSr25519VerifyPerByte,
	SealReentranceCount,
	SealAccountReentranceCount,
	SealInstantiationNonce,
	AddDelegateDependency,
	RemoveDelegateDependency,
}

// NewHostFnWeights derives host function weights from benchmark results.
//
// Single-component benchmarks are priced as W(1) - W(0). Benchmarks with
// several components yield one weight per component, taken with that
// component at 1 and every other at 0, minus the all-zero baseline.
func NewHostFnWeights(info WeightInfo, opts ...Option) HostFnWeights {
	d := newDeriver(info, opts)
	return HostFnWeights{
		Caller:           d.cost(SealCaller),
		IsContract:       d.cost(SealIsContract),
		CodeHash:         d.cost(SealCodeHash),
		OwnCodeHash:      d.cost(SealOwnCodeHash),
		CallerIsOrigin:   d.cost(SealCallerIsOrigin),
		CallerIsRoot:     d.cost(SealCallerIsRoot),
		Address:          d.cost(SealAddress),
		GasLeft:          d.cost(SealGasLeft),
		Balance:          d.cost(SealBalance),
		ValueTransferred: d.cost(SealValueTransferred),
		MinimumBalance:   d.cost(SealMinimumBalance),
		BlockNumber:      d.cost(SealBlockNumber),
		Now:              d.cost(SealNow),
		WeightToFee:      d.cost(SealWeightToFee),
		// gas is charged from within the instrumented code and never touches
		// storage, so it has no proof size.
		Gas:                          d.cost(SealGas).WithProofSize(0),
		Input:                        d.cost(SealInput),
		InputPerByte:                 d.cost(SealInputPerByte),
		Return:                       d.cost(SealReturn),
		ReturnPerByte:                d.cost(SealReturnPerByte),
		Terminate:                    d.cost(SealTerminate),
		Random:                       d.cost(SealRandom),
		DepositEvent:                 d.cost(SealDepositEvent),
		DepositEventPerTopic:         d.cost(SealDepositEventPerTopicAndByte, 1, 0),
		DepositEventPerByte:          d.cost(SealDepositEventPerTopicAndByte, 0, 1),
		DebugMessage:                 d.cost(SealDebugMessage),
		DebugMessagePerByte:          d.cost(SealDebugMessagePerByte),
		SetStorage:                   d.cost(SealSetStorage),
		SetStoragePerNewByte:         d.cost(SealSetStoragePerNewByte),
		SetStoragePerOldByte:         d.cost(SealSetStoragePerOldByte),
		SetCodeHash:                  d.cost(SealSetCodeHash),
		ClearStorage:                 d.cost(SealClearStorage),
		ClearStoragePerByte:          d.cost(SealClearStoragePerByte),
		ContainsStorage:              d.cost(SealContainsStorage),
		ContainsStoragePerByte:       d.cost(SealContainsStoragePerByte),
		GetStorage:                   d.cost(SealGetStorage),
		GetStoragePerByte:            d.cost(SealGetStoragePerByte),
		TakeStorage:                  d.cost(SealTakeStorage),
		TakeStoragePerByte:           d.cost(SealTakeStoragePerByte),
		Transfer:                     d.cost(SealTransfer),
		Call:                         d.cost(SealCall),
		DelegateCall:                 d.cost(SealDelegateCall),
		CallTransferSurcharge:        d.cost(SealCallPerTransferCloneByte, 1, 0),
		CallPerClonedByte:            d.cost(SealCallPerTransferCloneByte, 0, 1),
		Instantiate:                  d.cost(SealInstantiate),
		InstantiateTransferSurcharge: d.cost(SealInstantiatePerTransferInputSaltByte, 1, 0, 0),
		InstantiatePerInputByte:      d.cost(SealInstantiatePerTransferInputSaltByte, 0, 1, 0),
		InstantiatePerSaltByte:       d.cost(SealInstantiatePerTransferInputSaltByte, 0, 0, 1),
		HashSha2_256:                 d.cost(SealHashSha2_256),
		HashSha2_256PerByte:          d.cost(SealHashSha2_256PerByte),
		HashKeccak256:                d.cost(SealHashKeccak256),
		HashKeccak256PerByte:         d.cost(SealHashKeccak256PerByte),
		HashBlake2_256:               d.cost(SealHashBlake2_256),
		HashBlake2_256PerByte:        d.cost(SealHashBlake2_256PerByte),
		HashBlake2_128:               d.cost(SealHashBlake2_128),
		HashBlake2_128PerByte:        d.cost(SealHashBlake2_128PerByte),
		EcdsaRecover:                 d.cost(SealEcdsaRecover),
		EcdsaToEthAddress:            d.cost(SealEcdsaToEthAddress),
		Sr25519Verify:                d.cost(SealSr25519Verify),
		Sr25519VerifyPerByte:         d.cost(SealSr25519VerifyPerByte),
		ReentranceCount:              d.cost(SealReentranceCount),
		AccountReentranceCount:       d.cost(SealAccountReentranceCount),
		InstantiationNonce:           d.cost(SealInstantiationNonce),
		AddDelegateDependency:        d.cost(AddDelegateDependency),
		RemoveDelegateDependency:     d.cost(RemoveDelegateDependency),
	}
}
