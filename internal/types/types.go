// Package types holds the droe variable type lattice: a closed enum
// with family-based compatibility. Numbers, texts, booleans and
// collections are each interchangeable within their family; dates
// additionally accept text, for string date literals.
package types

type VariableType string

const (
	Int     VariableType = "int"
	Decimal VariableType = "decimal"
	// Number is the legacy spelling kept for old sources.
	Number  VariableType = "number"
	Text    VariableType = "text"
	// String is the legacy spelling kept for old sources.
	String   VariableType = "string"
	Boolean  VariableType = "boolean"
	Flag     VariableType = "flag"
	YesNo    VariableType = "yesno"
	Date     VariableType = "date"
	DateTime VariableType = "datetime"
	Array    VariableType = "array"
	ListOf   VariableType = "list_of"
	GroupOf  VariableType = "group_of"
	File     VariableType = "file"
	Unknown  VariableType = "unknown"
)

func (t VariableType) String() string {
	return string(t)
}

var fromString = map[string]VariableType{
	"int":      Int,
	"decimal":  Decimal,
	"number":   Number,
	"text":     Text,
	"string":   String,
	"boolean":  Boolean,
	"flag":     Flag,
	"yesno":    YesNo,
	"date":     Date,
	"datetime": DateTime,
	"array":    Array,
	"list":     ListOf,
	"group":    GroupOf,
	"file":     File,
}

// FromString maps a droe source spelling to its type. Collection
// phrases ("list of text", "group of users") map to their collection
// kind; anything unrecognized is Unknown.
func FromString(name string) VariableType {
	if t, ok := fromString[name]; ok {
		return t
	}
	if len(name) > 5 && name[:5] == "list " {
		return ListOf
	}
	if len(name) > 6 && name[:6] == "group " {
		return GroupOf
	}
	return Unknown
}

// IsNumeric reports whether the type belongs to the number family.
func (t VariableType) IsNumeric() bool {
	return t == Int || t == Decimal || t == Number
}

// IsTextual reports whether the type belongs to the text family.
func (t VariableType) IsTextual() bool {
	return t == Text || t == String
}

// IsBoolean reports whether the type belongs to the boolean family.
func (t VariableType) IsBoolean() bool {
	return t == Boolean || t == Flag || t == YesNo
}

// IsCollection reports whether the type belongs to the collection
// family.
func (t VariableType) IsCollection() bool {
	return t == Array || t == ListOf || t == GroupOf
}

// IsTemporal reports whether the type is a date kind.
func (t VariableType) IsTemporal() bool {
	return t == Date || t == DateTime
}

// Compatible reports whether a value of type src may flow into a slot
// of type dst. First matching rule wins:
//
//  1. identical types
//  2. both numeric
//  3. both textual
//  4. both boolean
//  5. dst is a date kind and src is textual (string date literals;
//     deliberately one-way, a date does not flow into text)
//  6. both collections
func Compatible(dst, src VariableType) bool {
	switch {
	case dst == src:
		return true
	case dst.IsNumeric() && src.IsNumeric():
		return true
	case dst.IsTextual() && src.IsTextual():
		return true
	case dst.IsBoolean() && src.IsBoolean():
		return true
	case dst.IsTemporal() && src.IsTextual():
		return true
	case dst.IsCollection() && src.IsCollection():
		return true
	default:
		return false
	}
}
