package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("server selection timeout"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/health", newHealthHandler(stubPinger{err: tt.pingErr}, newDiscardLogger()).Check)

			rec, _ := doRequest(t, e, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
