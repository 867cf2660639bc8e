package chip

import "github.com/goliatone/go-feconfig/pkg/model"

// Field labels, in form order.
const (
	LabelVendorName = "Vendor Name (Company)"
	LabelModel      = "Model (Name)"
	LabelIDCode     = "ID Code"
	LabelPageSize   = "Page Size"
	LabelBlockLeft  = "Block Size (Left)"
	LabelBlockRight = "Block Size (Right)"
	LabelPlaneSize  = "Plane Size"
	LabelBankCount  = "Bank Count"
	LabelBankSize   = "Bank Size (e.g., 64 GB)"
	LabelDDR        = "DDR"
)

// DDR selector options. The first option is the default.
const (
	DDRFalse = "false"
	DDRTrue  = "true"
)

// FormID identifies the chip form model.
const FormID = "fe-config"

// ActionLabel is the caption of the control that submits the form.
const ActionLabel = "Generate FE Format"

const formNote = "Block sizes are converted automatically.\n" +
	"Left block uses decimal (block).\n" +
	"Right block uses hexadecimal (bytes).\n" +
	"Right plane uses hexadecimal (block)."

// DefaultForm returns the FE configuration form: nine text fields followed by
// the DDR selector.
func DefaultForm() model.FormModel {
	return model.FormModel{
		ID:          FormID,
		Title:       "FE Configuration Generator",
		Description: formNote,
		Action:      ActionLabel,
		Fields: []model.Field{
			{Name: "vendor_name", Label: LabelVendorName, Type: model.FieldTypeString},
			{Name: "model_name", Label: LabelModel, Type: model.FieldTypeString},
			{Name: "id_code", Label: LabelIDCode, Type: model.FieldTypeString},
			{Name: "page_size", Label: LabelPageSize, Type: model.FieldTypeInteger, Format: model.FormatDecimal},
			{
				Name:        "block_size_left",
				Label:       LabelBlockLeft,
				Type:        model.FieldTypeInteger,
				Format:      model.FormatDecimal,
				Description: "Decimal, in pages per block.",
			},
			{
				Name:        "block_size_right",
				Label:       LabelBlockRight,
				Type:        model.FieldTypeInteger,
				Format:      model.FormatHex,
				Description: "Hexadecimal, in bytes. The 0x prefix is optional.",
			},
			{
				Name:        "plane_size",
				Label:       LabelPlaneSize,
				Type:        model.FieldTypeInteger,
				Format:      model.FormatHex,
				Description: "Hexadecimal, in blocks. The 0x prefix is optional.",
			},
			{Name: "bank_count", Label: LabelBankCount, Type: model.FieldTypeInteger, Format: model.FormatDecimal},
			{Name: "bank_size", Label: LabelBankSize, Type: model.FieldTypeString, Placeholder: "64 GB"},
			{
				Name:    "ddr",
				Label:   LabelDDR,
				Type:    model.FieldTypeEnum,
				Default: DDRFalse,
				Enum:    []string{DDRFalse, DDRTrue},
			},
		},
	}
}
