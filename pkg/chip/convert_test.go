package chip_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-feconfig/pkg/chip"
)

func validValues() chip.Values {
	return chip.Values{
		chip.LabelVendorName: "Acme",
		chip.LabelModel:      "AC1234",
		chip.LabelIDCode:     "98 3C 98 B3 76 72",
		chip.LabelPageSize:   "12288",
		chip.LabelBlockLeft:  "4096",
		chip.LabelBlockRight: "800",
		chip.LabelPlaneSize:  "400",
		chip.LabelBankCount:  "1",
		chip.LabelBankSize:   " 64 GB ",
		chip.LabelDDR:        chip.DDRTrue,
	}
}

func TestConvert_DerivedFields(t *testing.T) {
	cfg, err := chip.Convert(validValues())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := map[string]any{
		"company":     "Acme",
		"name":        "AC1234",
		"id_code":     "98 3C 98 B3 76 72",
		"bank_count":  big.NewInt(1),
		"bank_size":   " 64 GB ",
		"banks":       "1 x 64 GB",
		"page":        big.NewInt(4096),
		"block":       big.NewInt(0x800),
		"blocks":      big.NewInt(0x400),
		"ddr":         "true",
		"skip_mask_1": big.NewInt(0xfff),
		"skip_page_1": big.NewInt(0x800),
	}
	if diff := cmp.Diff(want, cfg.Fields(), cmp.Comparer(bigEqual)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func TestConvert_PageUsesIntegerDivision(t *testing.T) {
	cases := map[string]string{
		"12288": "4096",
		"10":    "3",
		"2":     "0",
		"0":     "0",
	}
	for input, want := range cases {
		values := validValues()
		values[chip.LabelPageSize] = input
		cfg, err := chip.Convert(values)
		if err != nil {
			t.Fatalf("convert %q: %v", input, err)
		}
		if got := cfg.Page.String(); got != want {
			t.Fatalf("page for %q: want %s, got %s", input, want, got)
		}
	}
}

func TestConvert_SkipMaskOfZeroBlock(t *testing.T) {
	values := validValues()
	values[chip.LabelBlockLeft] = "0"
	cfg, err := chip.Convert(values)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if cfg.SkipMask.Cmp(big.NewInt(-1)) != 0 {
		t.Fatalf("expected skip mask -1, got %s", cfg.SkipMask)
	}
}

func TestConvert_DDRDefaultsToFalse(t *testing.T) {
	values := validValues()
	delete(values, chip.LabelDDR)
	cfg, err := chip.Convert(values)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if cfg.DDR != chip.DDRFalse {
		t.Fatalf("expected DDR false, got %q", cfg.DDR)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		value   string
		base    int
		wantErr error
	}{
		{name: "non numeric page", label: chip.LabelPageSize, value: "abc", base: 10, wantErr: chip.ErrInvalidNumber},
		{name: "hex in decimal field", label: chip.LabelBlockLeft, value: "0x100", base: 10, wantErr: chip.ErrInvalidNumber},
		{name: "bad hex right block", label: chip.LabelBlockRight, value: "80g", base: 16, wantErr: chip.ErrInvalidNumber},
		{name: "empty plane", label: chip.LabelPlaneSize, value: "", base: 16, wantErr: chip.ErrInvalidNumber},
		{name: "float bank count", label: chip.LabelBankCount, value: "1.5", base: 10, wantErr: chip.ErrInvalidNumber},
		{name: "ddr option", label: chip.LabelDDR, value: "yes", base: 0, wantErr: chip.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.label] = tt.value

			_, err := chip.Convert(values)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var convErr *chip.ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("expected *ConversionError, got %T", err)
			}
			want := chip.ConversionError{Field: tt.label, Value: tt.value, Base: tt.base, Err: tt.wantErr}
			if diff := cmp.Diff(want, *convErr, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
				t.Fatalf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_ReportsFirstFailingField(t *testing.T) {
	values := validValues()
	values[chip.LabelPlaneSize] = "zz"
	values[chip.LabelPageSize] = "zz"

	_, err := chip.Convert(values)
	var convErr *chip.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConversionError, got %v", err)
	}
	if convErr.Field != chip.LabelPageSize {
		t.Fatalf("expected page size to be reported first, got %q", convErr.Field)
	}
}

func TestConversionError_Message(t *testing.T) {
	err := &chip.ConversionError{Field: chip.LabelPageSize, Value: "abc", Base: 10, Err: chip.ErrInvalidNumber}
	want := `Page Size: invalid literal for base 10: "abc"`
	if err.Error() != want {
		t.Fatalf("message mismatch\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		text string
		base int
		want string
		ok   bool
	}{
		{text: "4096", base: 10, want: "4096", ok: true},
		{text: "  42\t", base: 10, want: "42", ok: true},
		{text: "+7", base: 10, want: "7", ok: true},
		{text: "-3", base: 10, want: "-3", ok: true},
		{text: "0012", base: 10, want: "12", ok: true},
		{text: "1_000", base: 10, want: "1000", ok: true},
		{text: "800", base: 16, want: "2048", ok: true},
		{text: "0x800", base: 16, want: "2048", ok: true},
		{text: "0XFF", base: 16, want: "255", ok: true},
		{text: "0x_ff", base: 16, want: "255", ok: true},
		{text: "ffffffffffffffffffff", base: 16, want: "1208925819614629174706175", ok: true},
		{text: "", base: 10},
		{text: "   ", base: 10},
		{text: "ff", base: 10},
		{text: "0x10", base: 10},
		{text: "0x", base: 16},
		{text: "_1", base: 10},
		{text: "1_", base: 10},
		{text: "1__0", base: 10},
		{text: "--1", base: 10},
		{text: "- 1", base: 10},
		{text: "1 0", base: 10},
	}

	for _, tt := range tests {
		got, ok := chip.ParseInt(tt.text, tt.base)
		if ok != tt.ok {
			t.Fatalf("ParseInt(%q, %d) ok = %v, want %v", tt.text, tt.base, ok, tt.ok)
		}
		if !ok {
			continue
		}
		if got.String() != tt.want {
			t.Fatalf("ParseInt(%q, %d) = %s, want %s", tt.text, tt.base, got, tt.want)
		}
	}
}
