package screens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

func TestPresenter_Text(t *testing.T) {
	p := NewPresenter()

	tests := []struct {
		name string
		op   string
		err  error
		want string
	}{
		{"network", arovia.OpListDoctors, apperrors.NewNetworkUnavailableError("dial", errors.New("refused")), "Failed to load doctors"},
		{"rejected", arovia.OpListDoctors, apperrors.NewServerRejectedError("bad", 500), "Failed to load doctors"},
		{"malformed", arovia.OpSendChat, apperrors.NewMalformedResponseError("json", errors.New("eof")), "Failed to send message"},
		{"validation passes message through", arovia.OpGenerateHealthPlan, apperrors.NewValidationError("Please enter your age"), "Please enter your age"},
		{"unknown op", "unknown", errors.New("x"), genericFailure},
		{"sos", arovia.OpTriggerSOS, context.Canceled, "Failed to trigger SOS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Text(tt.op, tt.err))
		})
	}
}
