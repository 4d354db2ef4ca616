package txscript

import (
	"fmt"
	"strconv"
	"strings"
)

// MatchDataType tags a capture with the kind of wildcard that produced it.
type MatchDataType uint8

// Capture tags, one per wildcard family.
const (
	MatchData MatchDataType = iota
	MatchPublicKey
	MatchPublicKeyHash
	MatchSignature
)

// Lengths the wildcard families accept. Classification is by length only;
// no curve or DER checks are made.
const (
	CompressedPublicKeyLength   = 33
	UncompressedPublicKeyLength = 65
	PublicKeyHashLength         = 20

	// MinSignatureLength and MaxSignatureLength bound, inclusively, a DER
	// encoded signature followed by its sighash type byte.
	MinSignatureLength = 70
	MaxSignatureLength = 73
)

// wildcardFamily is one row of the wildcard table. The matcher uses it to
// decide what a slot extracts, the finalizer to decide what a slot accepts,
// and both parsers to map tokens to slots.
type wildcardFamily struct {
	token       string
	name        string
	acceptsSize func(length int) bool
}

var wildcardTable = map[MatchDataType]wildcardFamily{
	MatchData: {
		token:       "OP_DATA",
		name:        "Data",
		acceptsSize: func(int) bool { return true },
	},
	MatchPublicKey: {
		token: "OP_PUBKEY",
		name:  "PublicKey",
		acceptsSize: func(length int) bool {
			return length == CompressedPublicKeyLength || length == UncompressedPublicKeyLength
		},
	},
	MatchPublicKeyHash: {
		token:       "OP_PUBKEYHASH",
		name:        "PublicKeyHash",
		acceptsSize: func(length int) bool { return length == PublicKeyHashLength },
	},
	MatchSignature: {
		token: "OP_SIG",
		name:  "Signature",
		acceptsSize: func(length int) bool {
			return length >= MinSignatureLength && length <= MaxSignatureLength
		},
	},
}

// wildcardByToken is the parsing direction of wildcardTable.
var wildcardByToken = func() map[string]MatchDataType {
	byToken := make(map[string]MatchDataType, len(wildcardTable))
	for dataType, family := range wildcardTable {
		byToken[family.token] = dataType
	}
	return byToken
}()

const exactDataTokenPrefix = "OP_DATA="

func (t MatchDataType) String() string {
	if family, ok := wildcardTable[t]; ok {
		return family.name
	}
	return fmt.Sprintf("MatchDataType(%d)", uint8(t))
}

// WildcardKind describes which data pushes a template slot accepts.
type WildcardKind struct {
	dataType    MatchDataType
	exact       bool
	exactLength int
}

// WildcardData accepts any data push.
func WildcardData() WildcardKind {
	return WildcardKind{dataType: MatchData}
}

// WildcardDataExact accepts data pushes of exactly length bytes.
func WildcardDataExact(length int) WildcardKind {
	return WildcardKind{dataType: MatchData, exact: true, exactLength: length}
}

// WildcardPublicKey accepts 33 and 65 byte pushes.
func WildcardPublicKey() WildcardKind {
	return WildcardKind{dataType: MatchPublicKey}
}

// WildcardPublicKeyHash accepts 20 byte pushes.
func WildcardPublicKeyHash() WildcardKind {
	return WildcardKind{dataType: MatchPublicKeyHash}
}

// WildcardSignature accepts pushes within the signature length interval.
func WildcardSignature() WildcardKind {
	return WildcardKind{dataType: MatchSignature}
}

// Type returns the capture tag this slot produces.
func (k WildcardKind) Type() MatchDataType {
	return k.dataType
}

// ExactLength returns the required length of a DataExact slot.
func (k WildcardKind) ExactLength() (length int, ok bool) {
	return k.exactLength, k.exact
}

// Accepts returns whether a data push of the given length fits the slot.
func (k WildcardKind) Accepts(length int) bool {
	if length <= 0 {
		return false
	}
	if k.exact {
		return length == k.exactLength
	}
	return wildcardTable[k.dataType].acceptsSize(length)
}

// String renders the slot as its template token.
func (k WildcardKind) String() string {
	if k.exact {
		return exactDataTokenPrefix + strconv.Itoa(k.exactLength)
	}
	return wildcardTable[k.dataType].token
}

// parseWildcardToken parses wildcard syntax. isWildcard reports whether the
// token uses wildcard syntax at all; err is set when it does but is
// malformed, e.g. OP_DATA=x.
func parseWildcardToken(position int, token string) (kind WildcardKind, isWildcard bool, err error) {
	if dataType, ok := wildcardByToken[token]; ok {
		return WildcardKind{dataType: dataType}, true, nil
	}
	if !strings.HasPrefix(token, exactDataTokenPrefix) {
		return WildcardKind{}, false, nil
	}
	length, parseErr := strconv.ParseUint(strings.TrimPrefix(token, exactDataTokenPrefix), 10, 31)
	if parseErr != nil {
		return WildcardKind{}, true, &ParseError{
			Position:    position,
			Token:       token,
			Description: "OP_DATA length must be a non-negative decimal number",
		}
	}
	return WildcardDataExact(int(length)), true, nil
}
