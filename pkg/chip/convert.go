package chip

import (
	"math/big"
	"strings"
)

var three = big.NewInt(3)

// Config is the derived chip configuration. Integer values are kept at
// arbitrary precision so oversized input renders the same digits it was
// given.
type Config struct {
	Company string
	Name    string
	IDCode  string
	// BankCount is the parsed bank count; BankSize is kept as entered and
	// trimmed on output.
	BankCount *big.Int
	BankSize  string
	// Page is the page size divided by three.
	Page *big.Int
	// Block is the right block size; it also feeds Skip_Page_1.
	Block *big.Int
	// Blocks is the plane size.
	Blocks *big.Int
	// SkipMask is the left block size minus one.
	SkipMask *big.Int
	DDR      string
}

// Convert parses values and derives the chip configuration. The first field
// that fails conversion aborts with a *ConversionError; fields are checked in
// the order page size, left block, right block, plane size, bank count, DDR.
func Convert(values Values) (Config, error) {
	pageSize, err := parseField(values, LabelPageSize, 10)
	if err != nil {
		return Config{}, err
	}
	blockLeft, err := parseField(values, LabelBlockLeft, 10)
	if err != nil {
		return Config{}, err
	}
	blockRight, err := parseField(values, LabelBlockRight, 16)
	if err != nil {
		return Config{}, err
	}
	planeSize, err := parseField(values, LabelPlaneSize, 16)
	if err != nil {
		return Config{}, err
	}
	bankCount, err := parseField(values, LabelBankCount, 10)
	if err != nil {
		return Config{}, err
	}
	ddr, err := selectOption(values, LabelDDR)
	if err != nil {
		return Config{}, err
	}

	// Div is Euclidean; with a positive divisor that is floor division.
	page := new(big.Int).Div(pageSize, three)
	skipMask := new(big.Int).Sub(blockLeft, big.NewInt(1))

	return Config{
		Company:   values.Get(LabelVendorName),
		Name:      values.Get(LabelModel),
		IDCode:    values.Get(LabelIDCode),
		BankCount: bankCount,
		BankSize:  values.Get(LabelBankSize),
		Page:      page,
		Block:     blockRight,
		Blocks:    planeSize,
		SkipMask:  skipMask,
		DDR:       ddr,
	}, nil
}

// Banks is "<count> x <trimmed size>".
func (c Config) Banks() string {
	return bigText(c.BankCount, 10) + " x " + strings.TrimSpace(c.BankSize)
}

// Fields returns the template context for the FE document. Integers stay
// *big.Int; the template formats them with the hex, hexdigits and trim
// filters.
func (c Config) Fields() map[string]any {
	return map[string]any{
		"company":     c.Company,
		"name":        c.Name,
		"id_code":     c.IDCode,
		"bank_count":  c.BankCount,
		"bank_size":   c.BankSize,
		"banks":       c.Banks(),
		"page":        c.Page,
		"block":       c.Block,
		"blocks":      c.Blocks,
		"ddr":         c.DDR,
		"skip_mask_1": c.SkipMask,
		"skip_page_1": c.Block,
	}
}

func bigText(n *big.Int, base int) string {
	if n == nil {
		return ""
	}
	return n.Text(base)
}

func parseField(values Values, label string, base int) (*big.Int, error) {
	raw := values.Get(label)
	n, ok := ParseInt(raw, base)
	if !ok {
		return nil, &ConversionError{Field: label, Value: raw, Base: base, Err: ErrInvalidNumber}
	}
	return n, nil
}

func selectOption(values Values, label string) (string, error) {
	raw, ok := values[label]
	if !ok || raw == "" {
		return DDRFalse, nil
	}
	field, _ := DefaultForm().Field(label)
	if !field.HasOption(raw) {
		return "", &ConversionError{Field: label, Value: raw, Err: ErrInvalidOption}
	}
	return raw, nil
}

// ParseInt reads an integer literal in base 10 or 16. Surrounding whitespace
// is ignored, a leading sign is allowed, single underscores may separate
// digits and base 16 accepts an optional 0x or 0X prefix.
func ParseInt(text string, base int) (*big.Int, bool) {
	s := strings.TrimSpace(text)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if base == 16 && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		// An underscore may follow the prefix directly.
		s = strings.TrimPrefix(s, "_")
	}
	if s == "" || s[0] == '_' || s[len(s)-1] == '_' || strings.Contains(s, "__") {
		return nil, false
	}
	digits := strings.ReplaceAll(s, "_", "")
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i], base) {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
