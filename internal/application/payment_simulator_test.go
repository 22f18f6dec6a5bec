package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// fixedOutcome makes the gateway draw deterministic in tests.
type fixedOutcome struct {
	succeed bool
}

func (f fixedOutcome) Decide() bool {
	return f.succeed
}

func validUPIDetails() PaymentDetails {
	return PaymentDetails{UPIID: "ana.torres@upi"}
}

func validCardDetails() PaymentDetails {
	return PaymentDetails{
		CardNumber: "4111 1111 1111 1111",
		CardHolder: "Ana Torres",
		Expiry:     "11/27",
		CVV:        "123",
	}
}

func newTestSimulator(t *testing.T, method domain.PaymentMethod, succeed bool) *PaymentSimulator {
	t.Helper()
	sim, err := NewPaymentSimulator(method, fixedOutcome{succeed: succeed}, 0, 0)
	require.NoError(t, err)
	return sim
}

func TestNewPaymentSimulatorRejectsCash(t *testing.T) {
	_, err := NewPaymentSimulator(domain.PaymentMethodCash, nil, 0, 0)
	assert.Error(t, err)
}

func TestPaymentSimulatorSuccessPath(t *testing.T) {
	sim := newTestSimulator(t, domain.PaymentMethodUPI, true)
	assert.Equal(t, PaymentStateIdle, sim.State())

	require.NoError(t, sim.Begin())
	assert.Equal(t, PaymentStateCollectingDetails, sim.State())

	require.NoError(t, sim.SubmitDetails(validUPIDetails()))
	assert.Equal(t, PaymentStateProcessing, sim.State())

	require.NoError(t, sim.Process(context.Background()))
	assert.Equal(t, PaymentStateSucceeded, sim.State())
}

func TestPaymentSimulatorDeclineAndRetry(t *testing.T) {
	sim := newTestSimulator(t, domain.PaymentMethodUPI, false)
	require.NoError(t, sim.Begin())
	require.NoError(t, sim.SubmitDetails(validUPIDetails()))

	err := sim.Process(context.Background())
	var failed *domain.PaymentFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, PaymentStateFailed, sim.State())

	require.NoError(t, sim.Retry())
	assert.Equal(t, PaymentStateCollectingDetails, sim.State())
}

func TestPaymentSimulatorBadDetailsKeepCollecting(t *testing.T) {
	tests := []struct {
		name    string
		method  domain.PaymentMethod
		details PaymentDetails
	}{
		{"upi missing provider", domain.PaymentMethodUPI, PaymentDetails{UPIID: "ana.torres"}},
		{"upi empty", domain.PaymentMethodUPI, PaymentDetails{}},
		{"card short number", domain.PaymentMethodCard, PaymentDetails{CardNumber: "4111", CardHolder: "Ana", Expiry: "11/27", CVV: "123"}},
		{"card missing holder", domain.PaymentMethodCard, PaymentDetails{CardNumber: "4111111111111111", Expiry: "11/27", CVV: "123"}},
		{"card bad expiry month", domain.PaymentMethodCard, PaymentDetails{CardNumber: "4111111111111111", CardHolder: "Ana", Expiry: "13/27", CVV: "123"}},
		{"card short cvv", domain.PaymentMethodCard, PaymentDetails{CardNumber: "4111111111111111", CardHolder: "Ana", Expiry: "11/27", CVV: "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulator(t, tt.method, true)
			require.NoError(t, sim.Begin())

			err := sim.SubmitDetails(tt.details)
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, domain.RulePaymentDetails, vErr.Rule)
			assert.Equal(t, PaymentStateCollectingDetails, sim.State(), "a validation failure keeps the form open")

			// Corrected details are accepted afterwards.
			good := validUPIDetails()
			if tt.method == domain.PaymentMethodCard {
				good = validCardDetails()
			}
			require.NoError(t, sim.SubmitDetails(good))
		})
	}
}

func TestPaymentSimulatorCardNumberIgnoresSpaces(t *testing.T) {
	sim := newTestSimulator(t, domain.PaymentMethodCard, true)
	require.NoError(t, sim.Begin())
	require.NoError(t, sim.SubmitDetails(validCardDetails()))
}

func TestPaymentSimulatorCancelMidProcessing(t *testing.T) {
	sim, err := NewPaymentSimulator(domain.PaymentMethodUPI, fixedOutcome{succeed: true}, 50*time.Millisecond, 0)
	require.NoError(t, err)
	require.NoError(t, sim.Begin())
	require.NoError(t, sim.SubmitDetails(validUPIDetails()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processErr := sim.Process(ctx)
	var cancelled *domain.PaymentCancelledError
	require.True(t, errors.As(processErr, &cancelled))
	assert.Equal(t, PaymentStateCancelled, sim.State())
}

func TestPaymentSimulatorCancelRules(t *testing.T) {
	sim := newTestSimulator(t, domain.PaymentMethodUPI, true)
	require.NoError(t, sim.Begin())
	require.NoError(t, sim.Cancel())
	assert.Equal(t, PaymentStateCancelled, sim.State())

	// Cancelling twice is a no-op.
	require.NoError(t, sim.Cancel())

	done := newTestSimulator(t, domain.PaymentMethodUPI, true)
	require.NoError(t, done.Begin())
	require.NoError(t, done.SubmitDetails(validUPIDetails()))
	require.NoError(t, done.Process(context.Background()))

	assert.Error(t, done.Cancel(), "a completed payment cannot be undone")
	assert.Equal(t, PaymentStateSucceeded, done.State())
}

func TestPaymentSimulatorIllegalTransitions(t *testing.T) {
	sim := newTestSimulator(t, domain.PaymentMethodUPI, true)

	assert.Error(t, sim.SubmitDetails(validUPIDetails()), "details before Begin")
	assert.Error(t, sim.Process(context.Background()), "process before Begin")
	assert.Error(t, sim.Retry(), "retry before a failure")

	require.NoError(t, sim.Begin())
	assert.Error(t, sim.Begin(), "double Begin")
}
