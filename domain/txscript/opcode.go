// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// Opcode is a single script instruction byte.
type Opcode byte

// These constants are the values of the script opcodes. Push opcodes
// (OpData1 through OpPushData4) never appear as Opcode elements of a Script;
// they only exist in the byte encoding of data pushes.
const (
	Op0                   Opcode = 0x00 // 0
	OpData1               Opcode = 0x01 // 1
	OpData75              Opcode = 0x4b // 75
	OpPushData1           Opcode = 0x4c // 76
	OpPushData2           Opcode = 0x4d // 77
	OpPushData4           Opcode = 0x4e // 78
	Op1Negate             Opcode = 0x4f // 79
	OpReserved            Opcode = 0x50 // 80
	Op1                   Opcode = 0x51 // 81
	Op2                   Opcode = 0x52 // 82
	Op3                   Opcode = 0x53 // 83
	Op4                   Opcode = 0x54 // 84
	Op5                   Opcode = 0x55 // 85
	Op6                   Opcode = 0x56 // 86
	Op7                   Opcode = 0x57 // 87
	Op8                   Opcode = 0x58 // 88
	Op9                   Opcode = 0x59 // 89
	Op10                  Opcode = 0x5a // 90
	Op11                  Opcode = 0x5b // 91
	Op12                  Opcode = 0x5c // 92
	Op13                  Opcode = 0x5d // 93
	Op14                  Opcode = 0x5e // 94
	Op15                  Opcode = 0x5f // 95
	Op16                  Opcode = 0x60 // 96
	OpNop                 Opcode = 0x61 // 97
	OpVer                 Opcode = 0x62 // 98
	OpIf                  Opcode = 0x63 // 99
	OpNotIf               Opcode = 0x64 // 100
	OpVerIf               Opcode = 0x65 // 101
	OpVerNotIf            Opcode = 0x66 // 102
	OpElse                Opcode = 0x67 // 103
	OpEndIf               Opcode = 0x68 // 104
	OpVerify              Opcode = 0x69 // 105
	OpReturn              Opcode = 0x6a // 106
	OpToAltStack          Opcode = 0x6b // 107
	OpFromAltStack        Opcode = 0x6c // 108
	Op2Drop               Opcode = 0x6d // 109
	Op2Dup                Opcode = 0x6e // 110
	Op3Dup                Opcode = 0x6f // 111
	Op2Over               Opcode = 0x70 // 112
	Op2Rot                Opcode = 0x71 // 113
	Op2Swap               Opcode = 0x72 // 114
	OpIfDup               Opcode = 0x73 // 115
	OpDepth               Opcode = 0x74 // 116
	OpDrop                Opcode = 0x75 // 117
	OpDup                 Opcode = 0x76 // 118
	OpNip                 Opcode = 0x77 // 119
	OpOver                Opcode = 0x78 // 120
	OpPick                Opcode = 0x79 // 121
	OpRoll                Opcode = 0x7a // 122
	OpRot                 Opcode = 0x7b // 123
	OpSwap                Opcode = 0x7c // 124
	OpTuck                Opcode = 0x7d // 125
	OpCat                 Opcode = 0x7e // 126
	OpSplit               Opcode = 0x7f // 127
	OpNum2Bin             Opcode = 0x80 // 128
	OpBin2Num             Opcode = 0x81 // 129
	OpSize                Opcode = 0x82 // 130
	OpInvert              Opcode = 0x83 // 131
	OpAnd                 Opcode = 0x84 // 132
	OpOr                  Opcode = 0x85 // 133
	OpXor                 Opcode = 0x86 // 134
	OpEqual               Opcode = 0x87 // 135
	OpEqualVerify         Opcode = 0x88 // 136
	OpReserved1           Opcode = 0x89 // 137
	OpReserved2           Opcode = 0x8a // 138
	Op1Add                Opcode = 0x8b // 139
	Op1Sub                Opcode = 0x8c // 140
	Op2Mul                Opcode = 0x8d // 141
	Op2Div                Opcode = 0x8e // 142
	OpNegate              Opcode = 0x8f // 143
	OpAbs                 Opcode = 0x90 // 144
	OpNot                 Opcode = 0x91 // 145
	Op0NotEqual           Opcode = 0x92 // 146
	OpAdd                 Opcode = 0x93 // 147
	OpSub                 Opcode = 0x94 // 148
	OpMul                 Opcode = 0x95 // 149
	OpDiv                 Opcode = 0x96 // 150
	OpMod                 Opcode = 0x97 // 151
	OpLShift              Opcode = 0x98 // 152
	OpRShift              Opcode = 0x99 // 153
	OpBoolAnd             Opcode = 0x9a // 154
	OpBoolOr              Opcode = 0x9b // 155
	OpNumEqual            Opcode = 0x9c // 156
	OpNumEqualVerify      Opcode = 0x9d // 157
	OpNumNotEqual         Opcode = 0x9e // 158
	OpLessThan            Opcode = 0x9f // 159
	OpGreaterThan         Opcode = 0xa0 // 160
	OpLessThanOrEqual     Opcode = 0xa1 // 161
	OpGreaterThanOrEqual  Opcode = 0xa2 // 162
	OpMin                 Opcode = 0xa3 // 163
	OpMax                 Opcode = 0xa4 // 164
	OpWithin              Opcode = 0xa5 // 165
	OpRipeMD160           Opcode = 0xa6 // 166
	OpSHA1                Opcode = 0xa7 // 167
	OpSHA256              Opcode = 0xa8 // 168
	OpHash160             Opcode = 0xa9 // 169
	OpHash256             Opcode = 0xaa // 170
	OpCodeSeparator       Opcode = 0xab // 171
	OpCheckSig            Opcode = 0xac // 172
	OpCheckSigVerify      Opcode = 0xad // 173
	OpCheckMultiSig       Opcode = 0xae // 174
	OpCheckMultiSigVerify Opcode = 0xaf // 175
	OpNop1                Opcode = 0xb0 // 176
	OpCheckLockTimeVerify Opcode = 0xb1 // 177
	OpCheckSequenceVerify Opcode = 0xb2 // 178
	OpNop4                Opcode = 0xb3 // 179
	OpNop5                Opcode = 0xb4 // 180
	OpNop6                Opcode = 0xb5 // 181
	OpNop7                Opcode = 0xb6 // 182
	OpNop8                Opcode = 0xb7 // 183
	OpNop9                Opcode = 0xb8 // 184
	OpNop10               Opcode = 0xb9 // 185
)

// opcodeNames maps every non-push opcode to its assembly mnemonic. It is
// the single table behind both rendering and parsing; OpcodeByName is
// derived from it.
var opcodeNames = map[Opcode]string{
	Op0:                   "OP_0",
	Op1Negate:             "OP_1NEGATE",
	OpReserved:            "OP_RESERVED",
	Op1:                   "OP_1",
	Op2:                   "OP_2",
	Op3:                   "OP_3",
	Op4:                   "OP_4",
	Op5:                   "OP_5",
	Op6:                   "OP_6",
	Op7:                   "OP_7",
	Op8:                   "OP_8",
	Op9:                   "OP_9",
	Op10:                  "OP_10",
	Op11:                  "OP_11",
	Op12:                  "OP_12",
	Op13:                  "OP_13",
	Op14:                  "OP_14",
	Op15:                  "OP_15",
	Op16:                  "OP_16",
	OpNop:                 "OP_NOP",
	OpVer:                 "OP_VER",
	OpIf:                  "OP_IF",
	OpNotIf:               "OP_NOTIF",
	OpVerIf:               "OP_VERIF",
	OpVerNotIf:            "OP_VERNOTIF",
	OpElse:                "OP_ELSE",
	OpEndIf:               "OP_ENDIF",
	OpVerify:              "OP_VERIFY",
	OpReturn:              "OP_RETURN",
	OpToAltStack:          "OP_TOALTSTACK",
	OpFromAltStack:        "OP_FROMALTSTACK",
	Op2Drop:               "OP_2DROP",
	Op2Dup:                "OP_2DUP",
	Op3Dup:                "OP_3DUP",
	Op2Over:               "OP_2OVER",
	Op2Rot:                "OP_2ROT",
	Op2Swap:               "OP_2SWAP",
	OpIfDup:               "OP_IFDUP",
	OpDepth:               "OP_DEPTH",
	OpDrop:                "OP_DROP",
	OpDup:                 "OP_DUP",
	OpNip:                 "OP_NIP",
	OpOver:                "OP_OVER",
	OpPick:                "OP_PICK",
	OpRoll:                "OP_ROLL",
	OpRot:                 "OP_ROT",
	OpSwap:                "OP_SWAP",
	OpTuck:                "OP_TUCK",
	OpCat:                 "OP_CAT",
	OpSplit:               "OP_SPLIT",
	OpNum2Bin:             "OP_NUM2BIN",
	OpBin2Num:             "OP_BIN2NUM",
	OpSize:                "OP_SIZE",
	OpInvert:              "OP_INVERT",
	OpAnd:                 "OP_AND",
	OpOr:                  "OP_OR",
	OpXor:                 "OP_XOR",
	OpEqual:               "OP_EQUAL",
	OpEqualVerify:         "OP_EQUALVERIFY",
	OpReserved1:           "OP_RESERVED1",
	OpReserved2:           "OP_RESERVED2",
	Op1Add:                "OP_1ADD",
	Op1Sub:                "OP_1SUB",
	Op2Mul:                "OP_2MUL",
	Op2Div:                "OP_2DIV",
	OpNegate:              "OP_NEGATE",
	OpAbs:                 "OP_ABS",
	OpNot:                 "OP_NOT",
	Op0NotEqual:           "OP_0NOTEQUAL",
	OpAdd:                 "OP_ADD",
	OpSub:                 "OP_SUB",
	OpMul:                 "OP_MUL",
	OpDiv:                 "OP_DIV",
	OpMod:                 "OP_MOD",
	OpLShift:              "OP_LSHIFT",
	OpRShift:              "OP_RSHIFT",
	OpBoolAnd:             "OP_BOOLAND",
	OpBoolOr:              "OP_BOOLOR",
	OpNumEqual:            "OP_NUMEQUAL",
	OpNumEqualVerify:      "OP_NUMEQUALVERIFY",
	OpNumNotEqual:         "OP_NUMNOTEQUAL",
	OpLessThan:            "OP_LESSTHAN",
	OpGreaterThan:         "OP_GREATERTHAN",
	OpLessThanOrEqual:     "OP_LESSTHANOREQUAL",
	OpGreaterThanOrEqual:  "OP_GREATERTHANOREQUAL",
	OpMin:                 "OP_MIN",
	OpMax:                 "OP_MAX",
	OpWithin:              "OP_WITHIN",
	OpRipeMD160:           "OP_RIPEMD160",
	OpSHA1:                "OP_SHA1",
	OpSHA256:              "OP_SHA256",
	OpHash160:             "OP_HASH160",
	OpHash256:             "OP_HASH256",
	OpCodeSeparator:       "OP_CODESEPARATOR",
	OpCheckSig:            "OP_CHECKSIG",
	OpCheckSigVerify:      "OP_CHECKSIGVERIFY",
	OpCheckMultiSig:       "OP_CHECKMULTISIG",
	OpCheckMultiSigVerify: "OP_CHECKMULTISIGVERIFY",
	OpNop1:                "OP_NOP1",
	OpCheckLockTimeVerify: "OP_CHECKLOCKTIMEVERIFY",
	OpCheckSequenceVerify: "OP_CHECKSEQUENCEVERIFY",
	OpNop4:                "OP_NOP4",
	OpNop5:                "OP_NOP5",
	OpNop6:                "OP_NOP6",
	OpNop7:                "OP_NOP7",
	OpNop8:                "OP_NOP8",
	OpNop9:                "OP_NOP9",
	OpNop10:               "OP_NOP10",
}

// opcodeAliases are accepted when parsing but never produced when
// rendering.
var opcodeAliases = map[string]Opcode{
	"OP_FALSE": Op0,
	"OP_TRUE":  Op1,
	"OP_NOP2":  OpCheckLockTimeVerify,
	"OP_NOP3":  OpCheckSequenceVerify,
}

// OpcodeByName maps every accepted mnemonic, aliases included, to its
// opcode.
var OpcodeByName = buildOpcodeByName()

// buildOpcodeByName must stay a variable initializer: standard.go parses its
// templates during package initialization.
func buildOpcodeByName() map[string]Opcode {
	byName := make(map[string]Opcode, len(opcodeNames)+len(opcodeAliases))
	for opcode, name := range opcodeNames {
		byName[name] = opcode
	}
	for name, opcode := range opcodeAliases {
		byName[name] = opcode
	}
	return byName
}

// IsKnown returns whether the opcode has a mnemonic and may appear as an
// opcode element of a script.
func (op Opcode) IsKnown() bool {
	_, ok := opcodeNames[op]
	return ok
}

// IsPush returns whether the byte introduces a data push in the script
// encoding.
func (op Opcode) IsPush() bool {
	return op >= OpData1 && op <= OpPushData4
}

// String returns the opcode mnemonic, e.g. OP_CHECKSIG.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	if op >= OpData1 && op <= OpData75 {
		return fmt.Sprintf("OP_DATA_%d", op)
	}
	switch op {
	case OpPushData1:
		return "OP_PUSHDATA1"
	case OpPushData2:
		return "OP_PUSHDATA2"
	case OpPushData4:
		return "OP_PUSHDATA4"
	}
	return fmt.Sprintf("OP_UNKNOWN%d", op)
}
