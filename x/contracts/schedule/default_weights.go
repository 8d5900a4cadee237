// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schedule

// DefaultWeightInfo returns the reference benchmark results the default
// schedule is derived from. Instruction benchmarks are per instance (ref time
// only); host function benchmarks are per call.
func DefaultWeightInfo() BenchmarkTable {
	t := make(BenchmarkTable, len(defaultInstructionSlopes)+len(defaultHostFnModels))
	for b, slope := range defaultInstructionSlopes {
		t[b] = LinearModel{
			Base:   FromRefTime(instructionBenchmarkBase),
			Slopes: []Weight{FromRefTime(slope)},
		}
	}
	for b, m := range defaultHostFnModels {
		t[b] = m
	}
	return t
}

// Every instruction benchmark runs inside the same empty contract call.
const instructionBenchmarkBase = 1_397_000

var defaultInstructionSlopes = map[Benchmark]uint64{
	InstrI64Const:        2_848,
	InstrI64Load:         6_932,
	InstrI64Store:        7_460,
	InstrSelect:          8_107,
	InstrIf:              7_911,
	InstrBr:              4_301,
	InstrBrIf:            6_117,
	InstrBrTable:         7_586,
	InstrBrTablePerEntry: 39,
	InstrCall:            13_040,
	InstrCallIndirect:    17_965,
	InstrCallPerLocal:    481,
	InstrLocalGet:        1_826,
	InstrLocalSet:        2_078,
	InstrLocalTee:        3_925,
	InstrGlobalGet:       4_364,
	InstrGlobalSet:       4_630,
	InstrMemoryCurrent:   3_672,
	InstrMemoryGrow:      12_671_000,
	InstrI64Clz:          2_802,
	InstrI64Ctz:          2_794,
	InstrI64Popcnt:       2_811,
	InstrI64Eqz:          2_766,
	InstrI64ExtendSI32:   2_772,
	InstrI64ExtendUI32:   2_769,
	InstrI32WrapI64:      2_758,
	InstrI64Eq:           4_185,
	InstrI64Ne:           4_172,
	InstrI64LtS:          4_201,
	InstrI64LtU:          4_196,
	InstrI64GtS:          4_199,
	InstrI64GtU:          4_188,
	InstrI64LeS:          4_207,
	InstrI64LeU:          4_190,
	InstrI64GeS:          4_203,
	InstrI64GeU:          4_194,
	InstrI64Add:          4_176,
	InstrI64Sub:          4_179,
	InstrI64Mul:          4_382,
	InstrI64DivS:         6_455,
	InstrI64DivU:         6_087,
	InstrI64RemS:         6_509,
	InstrI64RemU:         6_103,
	InstrI64And:          4_170,
	InstrI64Or:           4_168,
	InstrI64Xor:          4_171,
	InstrI64Shl:          4_205,
	InstrI64ShrS:         4_212,
	InstrI64ShrU:         4_209,
	InstrI64Rotl:         4_214,
	InstrI64Rotr:         4_218,
}

func hostFn(baseRef, baseProof uint64, slopes ...Weight) LinearModel {
	return LinearModel{
		Base:   NewWeight(baseRef, baseProof),
		Slopes: slopes,
	}
}

var defaultHostFnModels = map[Benchmark]LinearModel{
	SealCaller:           hostFn(247_013_000, 6_834, NewWeight(9_421_000, 0)),
	SealIsContract:       hostFn(245_188_000, 6_837, NewWeight(45_012_000, 2_550)),
	SealCodeHash:         hostFn(246_801_000, 6_852, NewWeight(46_389_000, 2_566)),
	SealOwnCodeHash:      hostFn(247_459_000, 6_854, NewWeight(10_232_000, 0)),
	SealCallerIsOrigin:   hostFn(244_605_000, 6_747, NewWeight(4_157_000, 0)),
	SealCallerIsRoot:     hostFn(244_227_000, 6_731, NewWeight(3_623_000, 0)),
	SealAddress:          hostFn(246_962_000, 6_858, NewWeight(9_384_000, 0)),
	SealGasLeft:          hostFn(247_102_000, 6_848, NewWeight(9_633_000, 0)),
	SealBalance:          hostFn(248_319_000, 6_970, NewWeight(32_116_000, 0)),
	SealValueTransferred: hostFn(246_610_000, 6_846, NewWeight(9_257_000, 0)),
	SealMinimumBalance:   hostFn(246_733_000, 6_850, NewWeight(9_305_000, 0)),
	SealBlockNumber:      hostFn(246_498_000, 6_843, NewWeight(9_192_000, 0)),
	SealNow:              hostFn(246_587_000, 6_845, NewWeight(9_213_000, 0)),
	SealWeightToFee:      hostFn(249_081_000, 8_302, NewWeight(33_570_000, 0)),
	SealGas:              hostFn(92_453_000, 1_621, NewWeight(4_119_000, 12)),
	SealInput:            hostFn(244_931_000, 6_802, NewWeight(7_654_000, 0)),
	SealInputPerByte:     hostFn(245_740_000, 6_815, NewWeight(483, 0)),
	SealReturn:           hostFn(241_912_000, 6_751, NewWeight(1_088_000, 0)),
	SealReturnPerByte:    hostFn(243_016_000, 6_774, NewWeight(322, 0)),
	SealTerminate:        hostFn(244_611_000, 6_779, NewWeight(1_131_276_000, 131_652)),
	SealRandom:           hostFn(247_330_000, 7_920, NewWeight(46_907_000, 0)),
	SealDepositEvent:     hostFn(246_044_000, 6_853, NewWeight(69_410_000, 0)),
	SealDepositEventPerTopicAndByte: hostFn(
		1_174_318_000, 129_453,
		NewWeight(387_014_000, 153_855),
		NewWeight(81_019, 85),
	),
	SealDebugMessage:           hostFn(243_862_000, 6_790, NewWeight(30_571_000, 0)),
	SealDebugMessagePerByte:    hostFn(244_312_000, 6_808, NewWeight(2_018, 0)),
	SealSetStorage:             hostFn(258_901_000, 8_659, NewWeight(542_013_000, 26_714)),
	SealSetStoragePerNewByte:   hostFn(260_104_000, 8_932, NewWeight(411, 1)),
	SealSetStoragePerOldByte:   hostFn(260_099_000, 8_940, NewWeight(177, 1)),
	SealSetCodeHash:            hostFn(247_733_000, 6_958, NewWeight(326_411_000, 47_650)),
	SealClearStorage:           hostFn(257_406_000, 8_621, NewWeight(519_863_000, 26_380)),
	SealClearStoragePerByte:    hostFn(259_217_000, 8_814, NewWeight(163, 1)),
	SealContainsStorage:        hostFn(256_873_000, 8_614, NewWeight(497_502_000, 26_370)),
	SealContainsStoragePerByte: hostFn(258_112_000, 8_799, NewWeight(94, 1)),
	SealGetStorage:             hostFn(257_039_000, 8_617, NewWeight(508_271_000, 26_379)),
	SealGetStoragePerByte:      hostFn(258_660_000, 8_806, NewWeight(702, 1)),
	SealTakeStorage:            hostFn(258_284_000, 8_640, NewWeight(537_109_000, 26_705)),
	SealTakeStoragePerByte:     hostFn(259_751_000, 8_829, NewWeight(741, 1)),
	SealTransfer:               hostFn(245_870_000, 9_147, NewWeight(1_210_477_000, 7_764)),
	SealCall:                   hostFn(247_511_000, 9_402, NewWeight(10_436_612_000, 2_731)),
	SealDelegateCall:           hostFn(246_092_000, 9_317, NewWeight(9_882_140_000, 2_637)),
	SealCallPerTransferCloneByte: hostFn(
		11_803_554_000, 12_411,
		NewWeight(1_417_303_000, 2_552),
		NewWeight(1_294, 0),
	),
	SealInstantiate: hostFn(249_114_000, 9_553, NewWeight(23_770_118_000, 36_811)),
	SealInstantiatePerTransferInputSaltByte: hostFn(
		25_096_412_000, 171_112,
		NewWeight(512_033_000, 0),
		NewWeight(1_301, 0),
		NewWeight(1_572, 0),
	),
	SealHashSha2_256:           hostFn(245_520_000, 6_810, NewWeight(42_118_000, 0)),
	SealHashSha2_256PerByte:    hostFn(287_631_000, 6_815, NewWeight(1_113, 0)),
	SealHashKeccak256:          hostFn(244_906_000, 6_812, NewWeight(56_330_000, 0)),
	SealHashKeccak256PerByte:   hostFn(301_377_000, 6_817, NewWeight(3_342, 0)),
	SealHashBlake2_256:         hostFn(245_014_000, 6_814, NewWeight(48_227_000, 0)),
	SealHashBlake2_256PerByte:  hostFn(293_241_000, 6_819, NewWeight(1_221, 0)),
	SealHashBlake2_128:         hostFn(244_998_000, 6_813, NewWeight(47_873_000, 0)),
	SealHashBlake2_128PerByte:  hostFn(292_870_000, 6_818, NewWeight(1_219, 0)),
	SealEcdsaRecover:           hostFn(246_375_000, 6_909, NewWeight(3_048_125_000, 0)),
	SealEcdsaToEthAddress:      hostFn(245_433_000, 6_875, NewWeight(1_181_504_000, 0)),
	SealSr25519Verify:          hostFn(247_002_000, 6_921, NewWeight(2_612_830_000, 0)),
	SealSr25519VerifyPerByte:   hostFn(250_410_000, 6_923, NewWeight(5_917, 0)),
	SealReentranceCount:        hostFn(244_127_000, 6_747, NewWeight(3_389_000, 0)),
	SealAccountReentranceCount: hostFn(244_713_000, 6_770, NewWeight(20_447_000, 0)),
	SealInstantiationNonce:     hostFn(244_369_000, 6_752, NewWeight(3_518_000, 0)),
	AddDelegateDependency:      hostFn(248_990_000, 7_112, NewWeight(130_472_000, 2_541)),
	RemoveDelegateDependency:   hostFn(248_311_000, 7_104, NewWeight(117_958_000, 2_537)),
}
