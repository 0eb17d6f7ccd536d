// Package gemini calls the hosted language model that turns pasted
// WhatsApp/SMS text into a draft booking. The output is never trusted as
// final; callers stage it for human review and book through the normal intake
// path.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/physiosync/physiosync-server/models"
)

// ErrParse marks any failure of the extraction call, transport or decode
// alike. It is always recoverable: the manual entry path stays open.
var ErrParse = errors.New("gemini: failed to parse message")

const defaultModelID = "gemini-2.5-flash"

type Parser struct {
	client  *genai.Client
	modelID string
}

func NewParser(ctx context.Context, apiKey, modelID string) (*Parser, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = defaultModelID
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &Parser{client: client, modelID: modelID}, nil
}

// ParseMessage asks the model for a JSON object matching the booking schema
// and decodes it into a draft.
func (p *Parser) ParseMessage(ctx context.Context, message string) (models.ParsedBooking, error) {
	model := p.client.GenerativeModel(p.modelID)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = bookingSchema()

	prompt := fmt.Sprintf(`Parse the following message into an appointment booking for a physiotherapist.
Message: %q`, message)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.ParsedBooking{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return models.ParsedBooking{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return DecodeBooking([]byte(text))
}

// Close releases the underlying client.
func (p *Parser) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// DecodeBooking decodes and range-checks a model response body.
func DecodeBooking(data []byte) (models.ParsedBooking, error) {
	var booking models.ParsedBooking
	if err := json.Unmarshal(data, &booking); err != nil {
		return models.ParsedBooking{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if booking.PatientName == "" || booking.Date == "" || booking.Time == "" {
		return models.ParsedBooking{}, fmt.Errorf("%w: missing required fields", ErrParse)
	}
	if booking.Confidence < 0 || booking.Confidence > 1 {
		return models.ParsedBooking{}, fmt.Errorf("%w: confidence %v out of range", ErrParse, booking.Confidence)
	}
	return booking, nil
}

func bookingSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"patientName": {Type: genai.TypeString, Description: "Name of the patient"},
			"date":        {Type: genai.TypeString, Description: "Date in YYYY-MM-DD format"},
			"time":        {Type: genai.TypeString, Description: "Time in HH:MM format"},
			"reason":      {Type: genai.TypeString, Description: "Brief summary of the physical issue or reason for visit"},
			"confidence":  {Type: genai.TypeNumber, Description: "Confidence score from 0 to 1"},
		},
		Required: []string{"patientName", "date", "time", "reason", "confidence"},
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("model returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("model returned empty content")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
