package mcp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mjbear/markdown-footnote-sorter/internal/footnote"
)

func TestHandleSort_Renumbers(t *testing.T) {
	handler := handleSort(footnote.Default())

	input := SortInput{
		Text: "See ref[^a] and ref[^b].\n\n[^b]: Second.\n[^a]: First.\n",
	}
	_, out, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("sort handler error = %v", err)
	}

	if !strings.Contains(out.Text, "ref[^1] and ref[^2]") {
		t.Errorf("markers not renumbered: %q", out.Text)
	}
	if !strings.HasSuffix(out.Text, "[^1]: First.\n[^2]: Second.\n") {
		t.Errorf("definitions not relocated: %q", out.Text)
	}
	if out.Footnotes != 2 {
		t.Errorf("Footnotes = %d, want 2", out.Footnotes)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(out.Order, want) {
		t.Errorf("Order = %v, want %v", out.Order, want)
	}
}

func TestHandleSort_KeepNames(t *testing.T) {
	handler := handleSort(footnote.Default())

	input := SortInput{
		Text:      "See ref[^b] then ref[^a].\n\n[^a]: A.\n[^b]: B.\n",
		KeepNames: true,
	}
	_, out, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("sort handler error = %v", err)
	}

	if !strings.Contains(out.Text, "ref[^b] then ref[^a]") {
		t.Errorf("markers should keep their names: %q", out.Text)
	}
	if !strings.HasSuffix(out.Text, "[^b]: B.\n[^a]: A.\n") {
		t.Errorf("definitions should relocate in first-reference order: %q", out.Text)
	}
}

func TestHandleSort_Adjacent(t *testing.T) {
	handler := handleSort(footnote.Default())

	input := SortInput{
		Text:     "word x[^a][^b] end.\n\n[^a]: A.\n[^b]: B.\n",
		Adjacent: true,
	}
	_, out, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("sort handler error = %v", err)
	}

	if !strings.Contains(out.Text, "x [^1] [^2] end.") {
		t.Errorf("adjacent markers should be spaced then renumbered: %q", out.Text)
	}
}

func TestHandleSort_MissingFootnote(t *testing.T) {
	handler := handleSort(footnote.Default())

	_, _, err := handler(context.Background(), nil, SortInput{Text: "Text[^x] here.\n"})
	if err == nil {
		t.Fatal("expected error for undefined label")
	}

	var missing *footnote.MissingFootnoteError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %T, want *footnote.MissingFootnoteError", err)
	}
	if missing.Label != "x" {
		t.Errorf("label = %q, want %q", missing.Label, "x")
	}
}

func TestHandleCheck(t *testing.T) {
	handler := handleCheck(footnote.Default())

	input := CheckInput{
		Text: "Ref[^a] and ref[^gone].\n\n[^a]: here\n[^a]: again\n[^orphan]: unused\n",
	}
	_, out, err := handler(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("check handler error = %v", err)
	}

	if out.References != 2 {
		t.Errorf("References = %d, want 2", out.References)
	}
	if want := []string{"a", "gone"}; !reflect.DeepEqual(out.Order, want) {
		t.Errorf("Order = %v, want %v", out.Order, want)
	}
	if want := []string{"gone"}; !reflect.DeepEqual(out.Missing, want) {
		t.Errorf("Missing = %v, want %v", out.Missing, want)
	}
	if want := []string{"orphan"}; !reflect.DeepEqual(out.Unused, want) {
		t.Errorf("Unused = %v, want %v", out.Unused, want)
	}
	if want := []string{"a"}; !reflect.DeepEqual(out.Duplicates, want) {
		t.Errorf("Duplicates = %v, want %v", out.Duplicates, want)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("1.0.0-test", footnote.Default())
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
