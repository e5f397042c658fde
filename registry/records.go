package registry

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/processor"
)

// CrateRecord is a row of the main database's crate table.
type CrateRecord struct {
	ID   ids.CrateId
	Name string
	Hash []byte
}

// PrintStatementPayload is the canonical JSON body a print_register row
// stores. Location is the macro front-end's best-effort "file:line"
// string; it has no bearing on dedupe (two statements at different call
// sites with an identical format and level still collapse to one row).
type PrintStatementPayload struct {
	Location string                           `json:"location,omitempty"`
	Level    *ids.Level                       `json:"level,omitempty"`
	Format   processor.ProcessedFormatString `json:"format"`
}

// PrintStatementRecord is a row of a crate database's print_register table.
type PrintStatementRecord struct {
	ID      ids.PrintStatementId
	Payload PrintStatementPayload
	Hash    []byte
}

// WriteStatementPayload is the canonical JSON body a write_register row
// stores.
type WriteStatementPayload struct {
	Format processor.ProcessedFormatString `json:"format"`
}

// WriteStatementRecord is a row of a crate database's write_register table.
type WriteStatementRecord struct {
	ID      ids.WriteStatementId
	Payload WriteStatementPayload
	Hash    []byte
}

// VariantKind classifies the shape of a TypeStructure or one of its enum
// variants.
type VariantKind uint8

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantNamed
	VariantEnum
)

func (k VariantKind) String() string {
	switch k {
	case VariantUnit:
		return "unit"
	case VariantTuple:
		return "tuple"
	case VariantNamed:
		return "named"
	case VariantEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// EnumVariant describes one arm of an enum TypeStructure: its discriminant
// (the value TypeStructureValue.Discriminant carries on the wire) and its
// own shape, which is itself Unit, Tuple, or Named (never nested Enum).
type EnumVariant struct {
	Name         string      `json:"name"`
	Discriminant uint32      `json:"discriminant"`
	Kind         VariantKind `json:"kind"`
	Fields       []string    `json:"fields,omitempty"`
	Arity        int         `json:"arity,omitempty"`
}

// TypeStructureVariant is the shape descriptor a type_structure_register
// row stores: for Tuple, Arity gives the field count; for Named, Fields
// gives their names in declaration order; for Enum, Variants enumerates
// every arm.
type TypeStructureVariant struct {
	Kind     VariantKind   `json:"kind"`
	Fields   []string      `json:"fields,omitempty"`
	Arity    int           `json:"arity,omitempty"`
	Variants []EnumVariant `json:"variants,omitempty"`
}

// TypeStructurePayload is the canonical JSON body a type_structure_register
// row stores.
type TypeStructurePayload struct {
	Name    string               `json:"name"`
	Variant TypeStructureVariant `json:"variant"`
}

// TypeStructureRecord is a row of a crate database's
// type_structure_register table.
type TypeStructureRecord struct {
	ID      ids.TypeStructureId
	Payload TypeStructurePayload
	Hash    []byte
}
