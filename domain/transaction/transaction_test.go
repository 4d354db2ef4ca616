package transaction

import (
	"bytes"
	"encoding/hex"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kaspanet/txtemplate/domain/txscript"
	"github.com/kaspanet/txtemplate/infrastructure/logger"
	"github.com/pkg/errors"
)

func TestMain(m *testing.M) {
	log.SetLevel(logger.LevelTrace)

	os.Exit(m.Run())
}

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const (
	signature = "304402206173a490a5e62036e64f77f8c98db6c57f162a68147cb276bc61da589a114e27022053c19c60dbe7a9" +
		"7ce609631071ee5293c6e6bf4b859094c25a3385490f772c5541"
	publicKey  = "0319a38fb498ff221b6e1b528b911c62f6ff2ac5023405c637859e4d7ff28f265d"
	pubKeyHash = "08ed73ac2a3564dd1a431c61f7c2ce6b64e1fe80"
	tokenHash  = "b8bcb07f6344b42ab04250c86a6e8b75d3fdbbc6"
	ownerHash  = "f9dfc5a4ae5256e5938c2d819738f7b57e4d7b46"
	payload    = "7b227469746c65223a22547572626f20466f78202331227d"

	tokenSpendTemplate = "OP_SIG OP_PUBKEY OP_DATA OP_HASH160 OP_DATA OP_EQUALVERIFY OP_DUP OP_HASH160 " +
		"OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG OP_RETURN OP_DATA"
)

func outpoint(index uint32) Outpoint {
	var id ID
	id[0] = 0xfa
	id[31] = 0xb1
	return Outpoint{TransactionID: id, Index: index}
}

// tokenPurchaseTransaction spends a token output in input 0 and a plain
// pay-to-pubkey-hash output in input 1.
func tokenPurchaseTransaction() *Transaction {
	tokenInput := NewTemplateInput(outpoint(0), txscript.MustParseTemplate("OP_SIG OP_PUBKEY OP_DATA"), 0xffffffff)
	tokenInput.Values = [][]byte{hexToBytes(signature), hexToBytes(publicKey), make([]byte, 32)}
	tokenInput.PreviousLockingScript = txscript.MustParseScript("OP_HASH160 " + tokenHash + " OP_EQUALVERIFY OP_DUP " +
		"OP_HASH160 " + ownerHash + " OP_EQUALVERIFY OP_CHECKSIG OP_RETURN " + payload)
	tokenValue := uint64(1)
	tokenInput.PreviousValue = &tokenValue

	paymentInput := NewTemplateInput(outpoint(1), txscript.PubKeyHashSigTemplate, 0xffffffff)
	paymentInput.Values = [][]byte{hexToBytes(signature), hexToBytes(publicKey)}
	paymentInput.PreviousLockingScript = txscript.MustParseScript("OP_DUP OP_HASH160 " + pubKeyHash +
		" OP_EQUALVERIFY OP_CHECKSIG")
	paymentValue := uint64(50000)
	paymentInput.PreviousValue = &paymentValue

	return &Transaction{
		Version: 1,
		Inputs:  []*Input{tokenInput, paymentInput},
		Outputs: []*Output{
			{Value: 1, LockingScript: tokenInput.PreviousLockingScript},
			{Value: 49000, LockingScript: paymentInput.PreviousLockingScript},
		},
	}
}

func TestMatchInputsSelectsTokenInput(t *testing.T) {
	tx := tokenPurchaseTransaction()
	template := txscript.MustParseTemplate(tokenSpendTemplate)

	tokenScript, err := tx.Inputs[0].FinalizedScript()
	if err != nil {
		t.Fatalf("FinalizedScript unexpectedly failed: %s", err)
	}
	captures, err := tokenScript.Matches(template)
	if err != nil {
		t.Fatalf("token input does not match: %s", err)
	}
	if len(captures) != 6 {
		t.Fatalf("got %d captures, want 6", len(captures))
	}

	paymentScript, err := tx.Inputs[1].FinalizedScript()
	if err != nil {
		t.Fatalf("FinalizedScript unexpectedly failed: %s", err)
	}
	if _, err := paymentScript.Matches(template); err == nil {
		t.Fatalf("payment input unexpectedly matches the token template")
	}

	criteria := NewMatchCriteria().SetScriptTemplate(template)
	if diff := cmp.Diff([]int{0}, tx.MatchInputs(criteria)); diff != "" {
		t.Fatalf("MatchInputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, tx.MatchInputsConcurrently(criteria)); diff != "" {
		t.Fatalf("MatchInputsConcurrently mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchInputsLiteralTemplate(t *testing.T) {
	tx := tokenPurchaseTransaction()
	template := txscript.MustParseTemplate("OP_SIG OP_PUBKEY " +
		"0000000000000000000000000000000000000000000000000000000000000000 OP_HASH160 " + tokenHash +
		" OP_EQUALVERIFY OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG OP_RETURN OP_DATA")

	got := tx.MatchInputs(NewMatchCriteria().SetScriptTemplate(template))
	if diff := cmp.Diff([]int{0}, got); diff != "" {
		t.Fatalf("MatchInputs mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchInputsWithoutTemplate(t *testing.T) {
	tx := tokenPurchaseTransaction()
	criteria := NewMatchCriteria().SetMinValue(0)
	if got := tx.MatchInputs(criteria); len(got) != 0 {
		t.Fatalf("MatchInputs without a template returned %v", got)
	}
	if got := tx.MatchInputsConcurrently(criteria); len(got) != 0 {
		t.Fatalf("MatchInputsConcurrently without a template returned %v", got)
	}
	if got := tx.MatchOutputs(criteria); len(got) != 0 {
		t.Fatalf("MatchOutputs without a template returned %v", got)
	}
}

func TestMatchWithNilCriteria(t *testing.T) {
	tx := tokenPurchaseTransaction()
	var criteria *MatchCriteria
	if got := tx.MatchInputs(criteria); len(got) != 0 {
		t.Fatalf("MatchInputs with nil criteria returned %v", got)
	}
	if got := tx.MatchInputsConcurrently(criteria); len(got) != 0 {
		t.Fatalf("MatchInputsConcurrently with nil criteria returned %v", got)
	}
	if got := tx.MatchOutputs(criteria); len(got) != 0 {
		t.Fatalf("MatchOutputs with nil criteria returned %v", got)
	}
	if _, ok := criteria.Match(txscript.MustParseScript("OP_TRUE"), nil); ok {
		t.Fatalf("nil criteria matched a script")
	}
}

// TestMatchInputsLeavesLengthsToCriteria checks that an input whose values
// do not fit the kinds of its unlocking template is still matched when the
// criteria template accepts the finalized script.
func TestMatchInputsLeavesLengthsToCriteria(t *testing.T) {
	input := NewTemplateInput(outpoint(0), txscript.MustParseTemplate("OP_SIG OP_PUBKEY"), 0)
	input.Values = [][]byte{bytes.Repeat([]byte{0x30}, 65), hexToBytes(publicKey)}
	tx := &Transaction{Inputs: []*Input{input}}

	criteria := NewMatchCriteria().SetScriptTemplate(txscript.MustParseTemplate("OP_DATA OP_PUBKEY"))
	if diff := cmp.Diff([]int{0}, tx.MatchInputs(criteria)); diff != "" {
		t.Fatalf("MatchInputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, tx.MatchInputsConcurrently(criteria)); diff != "" {
		t.Fatalf("MatchInputsConcurrently mismatch (-want +got):\n%s", diff)
	}

	strict := NewMatchCriteria().SetScriptTemplate(txscript.PubKeyHashSigTemplate)
	if got := tx.MatchInputs(strict); len(got) != 0 {
		t.Fatalf("MatchInputs with a signature slot returned %v", got)
	}
}

func TestMatchInputsSkipsUnfinalizableInputs(t *testing.T) {
	template := txscript.PubKeyHashSigTemplate
	resolved := NewTemplateInput(outpoint(0), template, 0)
	resolved.Values = [][]byte{hexToBytes(signature), hexToBytes(publicKey)}
	unsigned := NewTemplateInput(outpoint(1), template, 0)
	unsigned.Values[1] = hexToBytes(publicKey)
	wrongArity := NewTemplateInput(outpoint(2), template, 0)
	wrongArity.Values = [][]byte{hexToBytes(signature)}
	finalized := &Input{
		PreviousOutpoint: outpoint(3),
		UnlockingScript:  txscript.MustParseScript(signature + " " + publicKey),
	}

	tx := &Transaction{Inputs: []*Input{resolved, unsigned, wrongArity, finalized}}
	criteria := NewMatchCriteria().SetScriptTemplate(template)

	want := []int{0, 3}
	if diff := cmp.Diff(want, tx.MatchInputs(criteria)); diff != "" {
		t.Fatalf("MatchInputs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, tx.MatchInputsConcurrently(criteria)); diff != "" {
		t.Fatalf("MatchInputsConcurrently mismatch (-want +got):\n%s", diff)
	}

	_, err := unsigned.FinalizedScript()
	if !errors.Is(err, txscript.ErrUnresolvedValue) {
		t.Fatalf("want ErrUnresolvedValue, got %v", err)
	}
	_, err = wrongArity.FinalizedScript()
	if !errors.Is(err, txscript.ErrArityMismatch) {
		t.Fatalf("want ErrArityMismatch, got %v", err)
	}
}

func TestMatchInputsConcurrentlyPreservesOrder(t *testing.T) {
	template := txscript.PubKeyHashSigTemplate
	var inputs []*Input
	var want []int
	for i := 0; i < 64; i++ {
		input := NewTemplateInput(outpoint(uint32(i)), template, 0)
		if i%3 != 0 {
			input.Values = [][]byte{hexToBytes(signature), hexToBytes(publicKey)}
			want = append(want, i)
		}
		inputs = append(inputs, input)
	}
	tx := &Transaction{Inputs: inputs}
	criteria := NewMatchCriteria().SetScriptTemplate(template)

	if diff := cmp.Diff(want, tx.MatchInputsConcurrently(criteria)); diff != "" {
		t.Fatalf("MatchInputsConcurrently mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tx.MatchInputs(criteria), tx.MatchInputsConcurrently(criteria)); diff != "" {
		t.Fatalf("sequential and concurrent results differ (-sequential +concurrent):\n%s", diff)
	}
}

func TestMatchInputsValuePredicates(t *testing.T) {
	tx := tokenPurchaseTransaction()
	tx.Inputs = append(tx.Inputs, &Input{
		PreviousOutpoint: outpoint(2),
		UnlockingScript:  txscript.MustParseScript(signature + " " + publicKey),
		PreviousLockingScript: txscript.MustParseScript("OP_DUP OP_HASH160 " + pubKeyHash +
			" OP_EQUALVERIFY OP_CHECKSIG"),
	})
	p2pkhSpend := txscript.MustParseTemplate("OP_SIG OP_PUBKEY OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG")

	tests := []struct {
		name     string
		criteria *MatchCriteria
		want     []int
	}{
		{
			name:     "template only",
			criteria: NewMatchCriteria().SetScriptTemplate(p2pkhSpend),
			want:     []int{1, 2},
		},
		{
			name:     "exact value excludes unknown values",
			criteria: NewMatchCriteria().SetScriptTemplate(p2pkhSpend).SetValue(50000),
			want:     []int{1},
		},
		{
			name:     "minimum above the value",
			criteria: NewMatchCriteria().SetScriptTemplate(p2pkhSpend).SetMinValue(50001),
			want:     []int{},
		},
		{
			name:     "range around the value",
			criteria: NewMatchCriteria().SetScriptTemplate(p2pkhSpend).SetMinValue(1).SetMaxValue(50000),
			want:     []int{1},
		},
		{
			name:     "later template replaces the earlier one",
			criteria: NewMatchCriteria().SetScriptTemplate(p2pkhSpend).SetScriptTemplate(txscript.MustParseTemplate(tokenSpendTemplate)),
			want:     []int{0},
		},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, tx.MatchInputs(test.criteria)); diff != "" {
			t.Errorf("%s: MatchInputs mismatch (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestMatchOutputs(t *testing.T) {
	tx := tokenPurchaseTransaction()

	tests := []struct {
		name     string
		criteria *MatchCriteria
		want     []int
	}{
		{
			name:     "p2pkh outputs",
			criteria: NewMatchCriteria().SetScriptTemplate(txscript.PubKeyHashTemplate),
			want:     []int{1},
		},
		{
			name:     "p2pkh outputs below the value",
			criteria: NewMatchCriteria().SetScriptTemplate(txscript.PubKeyHashTemplate).SetMaxValue(48999),
			want:     []int{},
		},
		{
			name: "token outputs of one unit",
			criteria: NewMatchCriteria().SetScriptTemplate(txscript.MustParseTemplate("OP_HASH160 OP_DATA=20 " +
				"OP_EQUALVERIFY OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG OP_RETURN OP_DATA")).SetValue(1),
			want: []int{0},
		},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.want, tx.MatchOutputs(test.criteria)); diff != "" {
			t.Errorf("%s: MatchOutputs mismatch (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestFinalizedScript(t *testing.T) {
	empty := &Input{}
	script, err := empty.FinalizedScript()
	if err != nil || script.Len() != 0 {
		t.Fatalf("empty input finalized to %v, %v", script, err)
	}

	lockingOnly := &Input{PreviousLockingScript: txscript.MustParseScript("OP_1")}
	script, err = lockingOnly.FinalizedScript()
	if err != nil || script.String() != "OP_1" {
		t.Fatalf("locking-only input finalized to %v, %v", script, err)
	}

	input := NewTemplateInput(outpoint(0), txscript.PubKeySigTemplate, 0)
	sig := hexToBytes(signature)
	if err := input.SetValue(0, sig); err != nil {
		t.Fatalf("SetValue unexpectedly failed: %s", err)
	}
	sig[0] = 0
	script, err = input.FinalizedScript()
	if err != nil {
		t.Fatalf("FinalizedScript unexpectedly failed: %s", err)
	}
	if !bytes.Equal(script.Element(0).Data(), hexToBytes(signature)) {
		t.Fatalf("SetValue kept a reference to the caller's slice")
	}
	if err := input.SetValue(1, sig); err == nil {
		t.Fatalf("SetValue accepted an out of range slot")
	}
	if err := (&Input{}).SetValue(0, sig); err == nil {
		t.Fatalf("SetValue accepted an input without a template")
	}
}

func TestIDFromString(t *testing.T) {
	id := outpoint(0).TransactionID
	parsed, err := IDFromString(id.String())
	if err != nil || parsed != id {
		t.Fatalf("IDFromString(%s) = %s, %v", id, parsed, err)
	}
	if _, err := IDFromString("abcd"); err == nil {
		t.Fatalf("short ID accepted")
	}
	if _, err := IDFromString("zz"); err == nil {
		t.Fatalf("non-hex ID accepted")
	}
	if _, ok := (&Transaction{}).Input(0); ok {
		t.Fatalf("Input(0) of an empty transaction exists")
	}
	tx := tokenPurchaseTransaction()
	if output, ok := tx.Output(1); !ok || output.Value != 49000 {
		t.Fatalf("Output(1) = %v, %t", output, ok)
	}
}
