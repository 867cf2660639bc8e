package model

import internalmodel "github.com/goliatone/go-feconfig/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeEnum    = internalmodel.FieldTypeEnum
)

const (
	FormatDecimal = internalmodel.FormatDecimal
	FormatHex     = internalmodel.FormatHex
)

type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
