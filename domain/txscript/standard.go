// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockDAG.
const (
	NonStandardTy    ScriptClass = iota // None of the recognized forms.
	PubKeyTy                            // Pay to pubkey.
	PubKeyHashTy                        // Pay to pubkey hash.
	ScriptHashTy                        // Pay to script hash.
	NullDataTy                          // Empty data-only (provably prunable).
	PubKeySigTy                         // Signature spending a pay to pubkey output.
	PubKeyHashSigTy                     // Signature and pubkey spending a pay to pubkey hash output.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy:   "nonstandard",
	PubKeyTy:        "pubkey",
	PubKeyHashTy:    "pubkeyhash",
	ScriptHashTy:    "scripthash",
	NullDataTy:      "nulldata",
	PubKeySigTy:     "pubkeysig",
	PubKeyHashSigTy: "pubkeyhashsig",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// Templates of the standard script shapes.
var (
	PubKeyTemplate        = MustParseTemplate("OP_PUBKEY OP_CHECKSIG")
	PubKeyHashTemplate    = MustParseTemplate("OP_DUP OP_HASH160 OP_PUBKEYHASH OP_EQUALVERIFY OP_CHECKSIG")
	ScriptHashTemplate    = MustParseTemplate("OP_HASH160 OP_DATA=20 OP_EQUAL")
	NullDataTemplate      = MustParseTemplate("OP_RETURN OP_DATA")
	SafeNullDataTemplate  = MustParseTemplate("OP_0 OP_RETURN OP_DATA")
	PubKeySigTemplate     = MustParseTemplate("OP_SIG")
	PubKeyHashSigTemplate = MustParseTemplate("OP_SIG OP_PUBKEY")
)

type standardShape struct {
	class    ScriptClass
	template *ScriptTemplate
}

// standardShapes is ordered; the first matching shape wins.
var standardShapes = []standardShape{
	{PubKeyHashTy, PubKeyHashTemplate},
	{PubKeyTy, PubKeyTemplate},
	{ScriptHashTy, ScriptHashTemplate},
	{NullDataTy, NullDataTemplate},
	{NullDataTy, SafeNullDataTemplate},
	{PubKeyHashSigTy, PubKeyHashSigTemplate},
	{PubKeySigTy, PubKeySigTemplate},
}

// StandardTemplates returns the templates of class, in matching order.
func StandardTemplates(class ScriptClass) []*ScriptTemplate {
	var templates []*ScriptTemplate
	for _, shape := range standardShapes {
		if shape.class == class {
			templates = append(templates, shape.template)
		}
	}
	return templates
}

// ExtractScriptClass returns the class of the first standard shape script
// matches, together with that shape's captures. Scripts matching no shape
// are NonStandardTy with no captures.
func ExtractScriptClass(script *Script) (ScriptClass, []Capture) {
	for _, shape := range standardShapes {
		captures, err := Match(script, shape.template)
		if err == nil {
			return shape.class, captures
		}
	}
	return NonStandardTy, nil
}

// GetScriptClass returns the class of script. See ExtractScriptClass.
func GetScriptClass(script *Script) ScriptClass {
	class, _ := ExtractScriptClass(script)
	return class
}
