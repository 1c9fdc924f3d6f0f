package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	t.Parallel()

	err := New(CodeConfiguration, "tier schedule breakpoints must increase")
	if err.Code() != CodeConfiguration {
		t.Fatalf("expected code %s, got %s", CodeConfiguration, err.Code())
	}
	if err.Message() != "tier schedule breakpoints must increase" {
		t.Fatalf("unexpected message %q", err.Message())
	}
	if err.Error() != fmt.Sprintf("%s: %s", CodeConfiguration, err.Message()) {
		t.Fatalf("unexpected rendering %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "load product")
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if typed := As(err); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %v", err)
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeValidation, nil, "missing quantity")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Code() != CodeValidation {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestHasCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", New(CodeUnfulfillable, "stock below minimum"))
	if !HasCode(err, CodeUnfulfillable) {
		t.Fatal("expected unfulfillable code through wrapping")
	}
	if HasCode(err, CodeNotFound) {
		t.Fatal("unexpected code match")
	}
	if HasCode(nil, CodeInternal) {
		t.Fatal("nil error should not match")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestMetadataForEngineCodes(t *testing.T) {
	t.Parallel()

	if MetadataFor(CodeConfiguration).HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatal("configuration errors should map to 422")
	}
	if MetadataFor(CodeUnfulfillable).HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatal("unfulfillable errors should map to 422")
	}
	if MetadataFor(CodeInvalidQuantity).HTTPStatus != http.StatusBadRequest {
		t.Fatal("invalid quantity should map to 400")
	}
	if !MetadataFor(CodeConfiguration).DetailsAllowed {
		t.Fatal("configuration errors must expose their details")
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()

	err := New(CodeInvalidQuantity, "quantity must be at least 1").WithDetails(map[string]any{"requested": 0})
	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if details["requested"] != 0 {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	t.Parallel()

	err := Wrap(CodeDependency, stdErrors.New("connection refused"), "load catalog")
	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("unexpected code %s", dump.Code)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", dump.Chain)
	}
}
