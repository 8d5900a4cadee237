// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

// Benchmark names one benchmarked quantity. Instruction benchmarks take a
// single repetition count; host function benchmarks take between one and three
// size components.
type Benchmark string

// WeightInfo provides benchmark results. Weight returns the aggregate cost of
// running benchmark b with the given components.
type WeightInfo interface {
	Weight(b Benchmark, components ...uint32) Weight
}

// WeightInfoFunc adapts a function to WeightInfo.
type WeightInfoFunc func(b Benchmark, components ...uint32) Weight

func (f WeightInfoFunc) Weight(b Benchmark, components ...uint32) Weight {
	return f(b, components...)
}

// Instruction benchmarks.
const (
	InstrI64Const        Benchmark = "instr_i64const"
	InstrI64Load         Benchmark = "instr_i64load"
	InstrI64Store        Benchmark = "instr_i64store"
	InstrSelect          Benchmark = "instr_select"
	InstrIf              Benchmark = "instr_if"
	InstrBr              Benchmark = "instr_br"
	InstrBrIf            Benchmark = "instr_br_if"
	InstrBrTable         Benchmark = "instr_br_table"
	InstrBrTablePerEntry Benchmark = "instr_br_table_per_entry"
	InstrCall            Benchmark = "instr_call"
	InstrCallIndirect    Benchmark = "instr_call_indirect"
	InstrCallPerLocal    Benchmark = "instr_call_per_local"
	InstrLocalGet        Benchmark = "instr_local_get"
	InstrLocalSet        Benchmark = "instr_local_set"
	InstrLocalTee        Benchmark = "instr_local_tee"
	InstrGlobalGet       Benchmark = "instr_global_get"
	InstrGlobalSet       Benchmark = "instr_global_set"
	InstrMemoryCurrent   Benchmark = "instr_memory_current"
	InstrMemoryGrow      Benchmark = "instr_memory_grow"
	InstrI64Clz          Benchmark = "instr_i64clz"
	InstrI64Ctz          Benchmark = "instr_i64ctz"
	InstrI64Popcnt       Benchmark = "instr_i64popcnt"
	InstrI64Eqz          Benchmark = "instr_i64eqz"
	InstrI64ExtendSI32   Benchmark = "instr_i64extendsi32"
	InstrI64ExtendUI32   Benchmark = "instr_i64extendui32"
	InstrI32WrapI64      Benchmark = "instr_i32wrapi64"
	InstrI64Eq           Benchmark = "instr_i64eq"
	InstrI64Ne           Benchmark = "instr_i64ne"
	InstrI64LtS          Benchmark = "instr_i64lts"
	InstrI64LtU          Benchmark = "instr_i64ltu"
	InstrI64GtS          Benchmark = "instr_i64gts"
	InstrI64GtU          Benchmark = "instr_i64gtu"
	InstrI64LeS          Benchmark = "instr_i64les"
	InstrI64LeU          Benchmark = "instr_i64leu"
	InstrI64GeS          Benchmark = "instr_i64ges"
	InstrI64GeU          Benchmark = "instr_i64geu"
	InstrI64Add          Benchmark = "instr_i64add"
	InstrI64Sub          Benchmark = "instr_i64sub"
	InstrI64Mul          Benchmark = "instr_i64mul"
	InstrI64DivS         Benchmark = "instr_i64divs"
	InstrI64DivU         Benchmark = "instr_i64divu"
	InstrI64RemS         Benchmark = "instr_i64rems"
	InstrI64RemU         Benchmark = "instr_i64remu"
	InstrI64And          Benchmark = "instr_i64and"
	InstrI64Or           Benchmark = "instr_i64or"
	InstrI64Xor          Benchmark = "instr_i64xor"
	InstrI64Shl          Benchmark = "instr_i64shl"
	InstrI64ShrS         Benchmark = "instr_i64shrs"
	InstrI64ShrU         Benchmark = "instr_i64shru"
	InstrI64Rotl         Benchmark = "instr_i64rotl"
	InstrI64Rotr         Benchmark = "instr_i64rotr"
)

// Host function benchmarks.
const (
	SealCaller                              Benchmark = "seal_caller"
	SealIsContract                          Benchmark = "seal_is_contract"
	SealCodeHash                            Benchmark = "seal_code_hash"
	SealOwnCodeHash                         Benchmark = "seal_own_code_hash"
	SealCallerIsOrigin                      Benchmark = "seal_caller_is_origin"
	SealCallerIsRoot                        Benchmark = "seal_caller_is_root"
	SealAddress                             Benchmark = "seal_address"
	SealGasLeft                             Benchmark = "seal_gas_left"
	SealBalance                             Benchmark = "seal_balance"
	SealValueTransferred                    Benchmark = "seal_value_transferred"
	SealMinimumBalance                      Benchmark = "seal_minimum_balance"
	SealBlockNumber                         Benchmark = "seal_block_number"
	SealNow                                 Benchmark = "seal_now"
	SealWeightToFee                         Benchmark = "seal_weight_to_fee"
	SealGas                                 Benchmark = "seal_gas"
	SealInput                               Benchmark = "seal_input"
	SealInputPerByte                        Benchmark = "seal_input_per_byte"
	SealReturn                              Benchmark = "seal_return"
	SealReturnPerByte                       Benchmark = "seal_return_per_byte"
	SealTerminate                           Benchmark = "seal_terminate"
	SealRandom                              Benchmark = "seal_random"
	SealDepositEvent                        Benchmark = "seal_deposit_event"
	SealDepositEventPerTopicAndByte         Benchmark = "seal_deposit_event_per_topic_and_byte"
	SealDebugMessage                        Benchmark = "seal_debug_message"
	SealDebugMessagePerByte                 Benchmark = "seal_debug_message_per_byte"
	SealSetStorage                          Benchmark = "seal_set_storage"
	SealSetStoragePerNewByte                Benchmark = "seal_set_storage_per_new_byte"
	SealSetStoragePerOldByte                Benchmark = "seal_set_storage_per_old_byte"
	SealSetCodeHash                         Benchmark = "seal_set_code_hash"
	SealClearStorage                        Benchmark = "seal_clear_storage"
	SealClearStoragePerByte                 Benchmark = "seal_clear_storage_per_byte"
	SealContainsStorage                     Benchmark = "seal_contains_storage"
	SealContainsStoragePerByte              Benchmark = "seal_contains_storage_per_byte"
	SealGetStorage                          Benchmark = "seal_get_storage"
	SealGetStoragePerByte                   Benchmark = "seal_get_storage_per_byte"
	SealTakeStorage                         Benchmark = "seal_take_storage"
	SealTakeStoragePerByte                  Benchmark = "seal_take_storage_per_byte"
	SealTransfer                            Benchmark = "seal_transfer"
	SealCall                                Benchmark = "seal_call"
	SealDelegateCall                        Benchmark = "seal_delegate_call"
	SealCallPerTransferCloneByte            Benchmark = "seal_call_per_transfer_clone_byte"
	SealInstantiate                         Benchmark = "seal_instantiate"
	SealInstantiatePerTransferInputSaltByte Benchmark = "seal_instantiate_per_transfer_input_salt_byte"
	SealHashSha2_256                        Benchmark = "seal_hash_sha2_256"
	SealHashSha2_256PerByte                 Benchmark = "seal_hash_sha2_256_per_byte"
	SealHashKeccak256                       Benchmark = "seal_hash_keccak_256"
	SealHashKeccak256PerByte                Benchmark = "seal_hash_keccak_256_per_byte"
	SealHashBlake2_256                      Benchmark = "seal_hash_blake2_256"
	SealHashBlake2_256PerByte               Benchmark = "seal_hash_blake2_256_per_byte"
	SealHashBlake2_128                      Benchmark = "seal_hash_blake2_128"
	SealHashBlake2_128PerByte               Benchmark = "seal_hash_blake2_128_per_byte"
	SealEcdsaRecover                        Benchmark = "seal_ecdsa_recover"
	SealEcdsaToEthAddress                   Benchmark = "seal_ecdsa_to_eth_address"
	SealSr25519Verify                       Benchmark = "seal_sr25519_verify"
	SealSr25519VerifyPerByte                Benchmark = "seal_sr25519_verify_per_byte"
	SealReentranceCount                     Benchmark = "seal_reentrance_count"
	SealAccountReentranceCount              Benchmark = "seal_account_reentrance_count"
	SealInstantiationNonce                  Benchmark = "seal_instantiation_nonce"
	AddDelegateDependency                   Benchmark = "add_delegate_dependency"
	RemoveDelegateDependency                Benchmark = "remove_delegate_dependency"
)

// Arity returns the number of components benchmark b is parameterised by.
func (b Benchmark) Arity() int {
	switch b {
	case SealDepositEventPerTopicAndByte, SealCallPerTransferCloneByte:
		return 2
	case SealInstantiatePerTransferInputSaltByte:
		return 3
	default:
		return 1
	}
}

// RequiredBenchmarks lists every benchmark consulted when deriving a
// Schedule, instruction benchmarks first.
func RequiredBenchmarks() []Benchmark {
	out := make([]Benchmark, 0, len(instructionBenchmarks)+len(hostFnBenchmarks))
	for _, ib := range instructionBenchmarks {
		out = append(out, ib.benchmark)
	}
	return append(out, hostFnBenchmarks...)
}
