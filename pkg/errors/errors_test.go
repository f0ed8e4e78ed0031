package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeStateConflict, status: http.StatusUnprocessableEntity, publicMsg: "state transition disallowed", detailsOK: true},
		{code: CodeIdempotency, status: http.StatusConflict, publicMsg: "idempotency key reused", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeStateConflict, "cart checked out"))
	if got := As(err); got == nil || got.Code() != CodeStateConflict {
		t.Fatalf("As failed to return typed error")
	}
	if !IsCode(err, CodeStateConflict) {
		t.Fatalf("IsCode should match wrapped typed error")
	}
	if IsCode(stdErrors.New("plain"), CodeStateConflict) {
		t.Fatalf("IsCode should not match untyped errors")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeDependency, stdErrors.New("connection refused"), "load cart")
	dump := Dump(fmt.Errorf("apply coupon: %w", err))

	if dump.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", dump.Code)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("expected 3 chain entries, got %d: %v", len(dump.Chain), dump.Chain)
	}
	if Dump(nil).TopMessage != "" {
		t.Fatalf("expected empty dump for nil error")
	}
}

func TestWithReasonMergesDetails(t *testing.T) {
	err := New(CodeStateConflict, "checkout blocked").
		WithDetails(map[string]any{"out_of_stock_product_ids": []int64{4}}).
		WithReason("out_of_stock")

	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if details["reason"] != "out_of_stock" || details["out_of_stock_product_ids"] == nil {
		t.Fatalf("unexpected details %v", details)
	}
	if got := ReasonOf(fmt.Errorf("checkout: %w", err)); got != "out_of_stock" {
		t.Fatalf("expected reason through wrap, got %q", got)
	}
	if got := ReasonOf(stdErrors.New("plain")); got != "" {
		t.Fatalf("expected no reason for plain error, got %q", got)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(New(CodeRateLimit, "slow down")) {
		t.Fatalf("rate limit should be retryable")
	}
	if IsRetryable(New(CodeValidation, "bad coupon")) || IsRetryable(stdErrors.New("plain")) {
		t.Fatalf("validation and untyped errors should not be retryable")
	}
}

func TestDumpCapturesDriverDiagnostics(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "wishlist_items_pkey", TableName: "wishlist_items"}
	dump := Dump(Wrap(CodeDependency, pgErr, "save wishlist item"))
	if dump.PGCode != "23505" || dump.PGTable != "wishlist_items" {
		t.Fatalf("expected pg diagnostics, got %+v", dump)
	}

	liteErr := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	dump = Dump(Wrap(CodeDependency, liteErr, "save wishlist item"))
	if dump.SQLiteExtended != int(sqlite3.ErrConstraintUnique) || dump.PGCode != "" {
		t.Fatalf("expected sqlite diagnostics, got %+v", dump)
	}

	dump = Dump(New(CodeValidation, "coupon rejected").WithReason("below_minimum"))
	if dump.Reason != "below_minimum" {
		t.Fatalf("expected reason in dump, got %q", dump.Reason)
	}
}

func TestErrorStringIncludesDistinctCause(t *testing.T) {
	wrapped := Wrap(CodeDependency, stdErrors.New("connection refused"), "load cart")
	if got := wrapped.Error(); got != "DEPENDENCY_ERROR: load cart: connection refused" {
		t.Fatalf("unexpected error string %q", got)
	}
	same := Wrap(CodeValidation, stdErrors.New("coupon not found"), "coupon not found")
	if got := same.Error(); got != "VALIDATION_ERROR: coupon not found" {
		t.Fatalf("cause repeating the message should not be duplicated, got %q", got)
	}
}
