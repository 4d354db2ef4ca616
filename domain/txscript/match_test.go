package txscript

import (
	"strings"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		template string
		captures []Capture
	}{
		{
			name:     "p2pkh extracts the pubkey hash",
			script:   "OP_DUP OP_HASH160 " + pubKeyHash + " OP_EQUALVERIFY OP_CHECKSIG",
			template: p2pkhTemplateASM,
			captures: []Capture{{MatchPublicKeyHash, hexToBytes(pubKeyHash)}},
		},
		{
			name:     "p2pk with an uncompressed key",
			script:   uncompressedPubKey + " OP_CHECKSIG",
			template: "OP_PUBKEY OP_CHECKSIG",
			captures: []Capture{{MatchPublicKey, hexToBytes(uncompressedPubKey)}},
		},
		{
			name:     "p2pk with a compressed key",
			script:   compressedPubKey + " OP_CHECKSIG",
			template: "OP_PUBKEY OP_CHECKSIG",
			captures: []Capture{{MatchPublicKey, hexToBytes(compressedPubKey)}},
		},
		{
			name:   "hash puzzle with two exact data slots",
			script: puzzleScriptASM,
			template: "OP_DATA=32 OP_DATA=2 OP_SIZE OP_4 OP_PICK OP_SHA256 OP_SWAP OP_SPLIT OP_DROP " +
				"OP_EQUALVERIFY OP_DROP OP_CHECKSIG",
			captures: []Capture{
				{MatchData, hexToBytes(puzzleHash)},
				{MatchData, hexToBytes("21e8")},
			},
		},
		{
			name:   "hash puzzle with a literal prefix",
			script: puzzleScriptASM,
			template: "OP_DATA=32 21e8 OP_SIZE OP_4 OP_PICK OP_SHA256 OP_SWAP OP_SPLIT OP_DROP " +
				"OP_EQUALVERIFY OP_DROP OP_CHECKSIG",
			captures: []Capture{{MatchData, hexToBytes(puzzleHash)}},
		},
		{
			name:     "exact template captures nothing",
			script:   puzzleScriptASM,
			template: puzzleScriptASM,
			captures: []Capture{},
		},
		{
			name:     "empty script matches empty template",
			script:   "",
			template: "",
			captures: []Capture{},
		},
		{
			name: "captures keep slot order across literals",
			script: uncompressedPubKey + " OP_CHECKSIG OP_1 OP_DUP " + compressedPubKey +
				" OP_CHECKSIG OP_DUP OP_HASH160 " + pubKeyHash + " OP_EQUALVERIFY OP_CHECKSIG",
			template: "OP_PUBKEY OP_CHECKSIG OP_1 OP_DUP OP_PUBKEY OP_CHECKSIG " + p2pkhTemplateASM,
			captures: []Capture{
				{MatchPublicKey, hexToBytes(uncompressedPubKey)},
				{MatchPublicKey, hexToBytes(compressedPubKey)},
				{MatchPublicKeyHash, hexToBytes(pubKeyHash)},
			},
		},
		{
			name: "fully formed p2pkh spend",
			script: signature71 + " 0319a38fb498ff221b6e1b528b911c62f6ff2ac5023405c637859e4d7ff28f265d " +
				"OP_DUP OP_HASH160 08ed73ac2a3564dd1a431c61f7c2ce6b64e1fe80 OP_EQUALVERIFY OP_CHECKSIG",
			template: "OP_SIG OP_PUBKEY " + p2pkhTemplateASM,
			captures: []Capture{
				{MatchSignature, hexToBytes(signature71)},
				{MatchPublicKey, hexToBytes("0319a38fb498ff221b6e1b528b911c62f6ff2ac5023405c637859e4d7ff28f265d")},
				{MatchPublicKeyHash, hexToBytes("08ed73ac2a3564dd1a431c61f7c2ce6b64e1fe80")},
			},
		},
		{
			name: "token transfer with an OP_RETURN payload",
			script: "OP_HASH160 b8bcb07f6344b42ab04250c86a6e8b75d3fdbbc6 OP_EQUALVERIFY OP_DUP OP_HASH160 " +
				"f9dfc5a4ae5256e5938c2d819738f7b57e4d7b46 OP_EQUALVERIFY OP_CHECKSIG OP_RETURN " +
				"7b227469746c65223a22547572626f20466f78202331227d",
			template: "OP_HASH160 OP_DATA=20 OP_EQUALVERIFY OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY " +
				"OP_CHECKSIG OP_RETURN OP_DATA",
			captures: []Capture{
				{MatchData, hexToBytes("b8bcb07f6344b42ab04250c86a6e8b75d3fdbbc6")},
				{MatchPublicKeyHash, hexToBytes("f9dfc5a4ae5256e5938c2d819738f7b57e4d7b46")},
				{MatchData, []byte(`{"title":"Turbo Fox #1"}`)},
			},
		},
	}

	for _, test := range tests {
		script := MustParseScript(test.script)
		template := MustParseTemplate(test.template)
		captures, err := script.Matches(template)
		if err != nil {
			t.Errorf("%s: Matches unexpectedly failed: %s", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.captures, captures); diff != "" {
			t.Errorf("%s: captures mismatch (-want +got):\n%s\ngot: %s", test.name, diff, spew.Sdump(captures))
		}
		if !script.IsMatch(template) {
			t.Errorf("%s: IsMatch disagrees with Matches", test.name)
		}
	}
}

func TestMatchFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		script   string
		template string
		want     error
		index    int
	}{
		{
			name:     "empty script against a puzzle template",
			script:   "",
			template: puzzleScriptASM,
			want:     ErrLengthMismatch,
		},
		{
			name:     "p2pkh template against the puzzle",
			script:   puzzleScriptASM,
			template: p2pkhTemplateASM,
			want:     ErrLengthMismatch,
		},
		{
			name: "literal data differing in one byte",
			script: strings.Replace(puzzleScriptASM, puzzleHash,
				"e26f2b12ee0a5923dab7314e533917f2ab5b50da5ce302d3d60941f0ee8000a2", 1),
			template: puzzleScriptASM,
			want:     ErrElementMismatch,
			index:    0,
		},
		{
			name:     "literal opcode differs",
			script:   "OP_DUP OP_HASH256 " + pubKeyHash + " OP_EQUALVERIFY OP_CHECKSIG",
			template: p2pkhTemplateASM,
			want:     ErrElementMismatch,
			index:    1,
		},
		{
			name:     "literal data against an opcode",
			script:   "OP_1 OP_CHECKSIG",
			template: "01 OP_CHECKSIG",
			want:     ErrElementMismatch,
			index:    0,
		},
		{
			name:     "literal opcode against a push",
			script:   "01 OP_CHECKSIG",
			template: "OP_1 OP_CHECKSIG",
			want:     ErrElementMismatch,
			index:    0,
		},
		{
			name:     "wildcard never matches an opcode",
			script:   "OP_DUP OP_CHECKSIG",
			template: "OP_DATA OP_CHECKSIG",
			want:     ErrElementMismatch,
			index:    0,
		},
		{
			name:     "pubkey hash of the wrong size",
			script:   "OP_DUP OP_HASH160 " + pubKeyHash + "00 OP_EQUALVERIFY OP_CHECKSIG",
			template: p2pkhTemplateASM,
			want:     ErrElementMismatch,
			index:    2,
		},
		{
			name:     "first mismatch wins",
			script:   "OP_2 OP_3 OP_4",
			template: "OP_2 OP_4 OP_3",
			want:     ErrElementMismatch,
			index:    1,
		},
	}

	for _, test := range tests {
		script := MustParseScript(test.script)
		template := MustParseTemplate(test.template)
		captures, err := Match(script, template)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: want %v, got %v", test.name, test.want, err)
			continue
		}
		if captures != nil {
			t.Errorf("%s: failed match returned captures %v", test.name, captures)
		}
		if script.IsMatch(template) {
			t.Errorf("%s: IsMatch unexpectedly true", test.name)
		}
		if test.want != ErrElementMismatch {
			continue
		}
		var mismatch *ElementMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("%s: error is not an *ElementMismatchError: %T", test.name, err)
			continue
		}
		if mismatch.Index != test.index {
			t.Errorf("%s: mismatch index = %d, want %d", test.name, mismatch.Index, test.index)
		}
		if mismatch.Expected.String() != template.Element(test.index).String() {
			t.Errorf("%s: mismatch reports expected %s", test.name, mismatch.Expected)
		}
		if !mismatch.Found.Equal(script.Element(test.index)) {
			t.Errorf("%s: mismatch reports found %s", test.name, mismatch.Found)
		}
	}
}

func TestMatchLengthMismatchDetail(t *testing.T) {
	t.Parallel()

	_, err := Match(MustParseScript("OP_1 OP_2"), MustParseTemplate("OP_1"))
	var mismatch *LengthMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("want *LengthMismatchError, got %v", err)
	}
	if mismatch.ScriptLength != 2 || mismatch.TemplateLength != 1 {
		t.Fatalf("wrong lengths reported: %+v", mismatch)
	}
}

// TestWildcardLengthClasses checks every wildcard family against pushes of
// lengths around its boundaries.
func TestWildcardLengthClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		dataType MatchDataType
		accepted map[int]bool
	}{
		{"OP_PUBKEY", MatchPublicKey, map[int]bool{32: false, 33: true, 34: false, 64: false, 65: true, 66: false}},
		{"OP_PUBKEYHASH", MatchPublicKeyHash, map[int]bool{19: false, 20: true, 21: false, 33: false}},
		{"OP_DATA=32", MatchData, map[int]bool{1: false, 31: false, 32: true, 33: false}},
		{"OP_DATA", MatchData, map[int]bool{1: true, 20: true, 75: true, 76: true, 300: true}},
		{"OP_SIG", MatchSignature, map[int]bool{69: false, 70: true, 71: true, 72: true, 73: true, 74: false}},
	}

	for _, test := range tests {
		template := MustParseTemplate(test.token + " OP_CHECKSIG")
		for length, accepted := range test.accepted {
			data := make([]byte, length)
			for i := range data {
				data[i] = byte(i + 1)
			}
			script := NewScript(DataElement(data), OpcodeElement(OpCheckSig))
			captures, err := Match(script, template)
			if (err == nil) != accepted {
				t.Errorf("%s with %d bytes: accepted = %t, want %t (err %v)", test.token, length, err == nil, accepted, err)
				continue
			}
			if !accepted {
				continue
			}
			want := []Capture{{Type: test.dataType, Data: data}}
			if diff := cmp.Diff(want, captures); diff != "" {
				t.Errorf("%s with %d bytes: captures mismatch (-want +got):\n%s", test.token, length, diff)
			}
		}
	}
}

func TestCapturesAreCopies(t *testing.T) {
	t.Parallel()

	script := MustParseScript(compressedPubKey + " OP_CHECKSIG")
	captures, err := Match(script, PubKeyTemplate)
	if err != nil {
		t.Fatalf("Match unexpectedly failed: %s", err)
	}
	captures[0].Data[0] = 0xff
	if script.Element(0).Data()[0] != 0x03 {
		t.Fatalf("capture aliases the script")
	}
}

func TestConcurrentMatchesShareTemplate(t *testing.T) {
	t.Parallel()

	template := MustParseTemplate(p2pkhTemplateASM)
	script := MustParseScript("OP_DUP OP_HASH160 " + pubKeyHash + " OP_EQUALVERIFY OP_CHECKSIG")

	const goroutines = 16
	var wg sync.WaitGroup
	failures := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				captures, err := Match(script, template)
				if err != nil {
					failures <- err
					return
				}
				if len(captures) != 1 {
					failures <- errors.Errorf("got %d captures", len(captures))
					return
				}
			}
		}()
	}
	wg.Wait()
	close(failures)
	for err := range failures {
		t.Errorf("concurrent match failed: %s", err)
	}
}
