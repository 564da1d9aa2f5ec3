package llm

// Wire types for the generateContent REST API.

type part struct {
	Text string `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"response_mime_type,omitempty"`
	ResponseSchema   map[string]any `json:"response_schema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Contents          []content         `json:"contents"`
}

// Envelope is the decoded generateContent response
type Envelope struct {
	Candidates []struct {
		Content      *content `json:"content"`
		FinishReason string   `json:"finishReason,omitempty"`
	} `json:"candidates"`
}

// FirstText returns the text of the first candidate's first part, or ""
// when any level of the envelope is missing. It is the only code that
// knows the response shape.
func (e *Envelope) FirstText() string {
	if e == nil || len(e.Candidates) == 0 {
		return ""
	}
	c := e.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[0].Text
}

func newGenerateRequest(system, prompt string, schema map[string]any) generateRequest {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if system != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	if schema != nil {
		req.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}
	return req
}
