package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/qazleague/cup-service/internal/usecase"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{fmt.Errorf("%w: bad id", usecase.ErrInvalidInput), http.StatusBadRequest, "invalidInput"},
		{fmt.Errorf("%w: season=7", usecase.ErrNotFound), http.StatusNotFound, "notFound"},
		{fmt.Errorf("%w: bad token", usecase.ErrUnauthorized), http.StatusUnauthorized, "unauthorized"},
		{fmt.Errorf("%w: feed down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable, "dependencyUnavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tc := range cases {
		mapped := mapError(tc.err)
		if mapped.HTTPStatus != tc.wantStatus || mapped.Reason != tc.wantReason {
			t.Errorf("mapError(%v) = %+v, want status=%d reason=%s", tc.err, mapped, tc.wantStatus, tc.wantReason)
		}
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("apiVersion = %q, want %q", envelope.APIVersion, googleAPIVersion)
	}
	if envelope.Data["status"] != "ok" {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: season=9", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code   int    `json:"code"`
			Status string `json:"status"`
			Errors []struct {
				Domain string `json:"domain"`
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Code != http.StatusNotFound || envelope.Error.Status != "NOT_FOUND" {
		t.Fatalf("error body = %+v", envelope.Error)
	}
	if len(envelope.Error.Errors) != 1 || envelope.Error.Errors[0].Domain != errorDomain {
		t.Fatalf("error items = %+v", envelope.Error.Errors)
	}
}
