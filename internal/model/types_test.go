package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleForm() FormModel {
	return FormModel{
		ID: "sample",
		Fields: []Field{
			{Name: "page_size", Label: "Page Size", Type: FieldTypeInteger, Format: FormatDecimal},
			{Name: "ddr", Label: "DDR", Type: FieldTypeEnum, Enum: []string{"false", "true"}},
		},
	}
}

func TestFormModel_FieldTrimsLabel(t *testing.T) {
	form := sampleForm()

	field, ok := form.Field("  Page Size ")
	if !ok {
		t.Fatalf("expected field lookup to succeed")
	}
	if field.Name != "page_size" {
		t.Fatalf("name = %q, want page_size", field.Name)
	}
	if _, ok := form.Field("page size"); ok {
		t.Fatalf("expected lookup to be case sensitive")
	}
}

func TestFormModel_Labels(t *testing.T) {
	if diff := cmp.Diff([]string{"Page Size", "DDR"}, sampleForm().Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestField_HasOption(t *testing.T) {
	form := sampleForm()
	ddr, _ := form.Field("DDR")
	page, _ := form.Field("Page Size")

	cases := []struct {
		field Field
		value string
		want  bool
	}{
		{ddr, "true", true},
		{ddr, "false", true},
		{ddr, "TRUE", false},
		{ddr, "", false},
		{page, "anything", true},
	}
	for _, tc := range cases {
		if got := tc.field.HasOption(tc.value); got != tc.want {
			t.Fatalf("%s.HasOption(%q) = %v, want %v", tc.field.Label, tc.value, got, tc.want)
		}
	}
}
