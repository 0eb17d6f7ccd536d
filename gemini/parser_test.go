package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBooking(t *testing.T) {
	booking, err := DecodeBooking([]byte(`{
		"patientName": "Liam Johnson",
		"date": "2024-06-01",
		"time": "09:00",
		"reason": "Lower back pain after lifting",
		"confidence": 0.92
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Liam Johnson", booking.PatientName)
	assert.Equal(t, "2024-06-01", booking.Date)
	assert.Equal(t, "09:00", booking.Time)
	assert.Equal(t, 0.92, booking.Confidence)
}

func TestDecodeBookingInvalidJSON(t *testing.T) {
	_, err := DecodeBooking([]byte(`not json`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecodeBookingMissingFields(t *testing.T) {
	_, err := DecodeBooking([]byte(`{"patientName": "Liam", "confidence": 0.5}`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecodeBookingConfidenceOutOfRange(t *testing.T) {
	_, err := DecodeBooking([]byte(`{
		"patientName": "Liam",
		"date": "2024-06-01",
		"time": "09:00",
		"reason": "r",
		"confidence": 1.4
	}`))
	assert.ErrorIs(t, err, ErrParse)
}
