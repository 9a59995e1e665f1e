package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"daykeeper/internal/datekey"
)

// Result is what an interpretation produced: structured calls, or a plain
// text reply when the model chose not to call a tool. Exactly one of the
// two is populated.
type Result struct {
	Calls []Call
	Text  string
}

// Client turns free text into a Result.
type Client interface {
	Interpret(ctx context.Context, command string) (Result, error)
}

// GeminiClient interprets commands through a Gemini-style generateContent
// endpoint carrying the four function declarations. A response that is
// neither a recognizable call list nor text is a single error; no partial
// result is ever returned.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	now        func() time.Time
}

// NewGeminiClient creates a client for the given endpoint, model and API
// key. An empty baseURL selects the public endpoint.
func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		now:        time.Now,
	}
}

type geminiPart struct {
	Text         string          `json:"text,omitempty"`
	FunctionCall *geminiFuncCall `json:"functionCall,omitempty"`
}

type geminiFuncCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
}

type geminiTool struct {
	FunctionDeclarations []json.RawMessage `json:"functionDeclarations"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Interpret sends the command with today's date in the system instruction
// and decodes the reply into typed calls or text.
func (c *GeminiClient) Interpret(ctx context.Context, command string) (Result, error) {
	if c.apiKey == "" {
		return Result{}, fmt.Errorf("assistant API key is not configured")
	}

	today := datekey.Day(c.now())
	system := "You are an assistant inside a calendar app. Interpret user commands " +
		"with the available tools to manage reminders, alarms, timers and the stopwatch. " +
		"Today's date is " + today + ". A time without a date means today; a weekday name " +
		"means the next such day as YYYY-MM-DD. An alarm without an explicit repeat is one-time."

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: command}}}},
		Tools:             []geminiTool{{FunctionDeclarations: functionDeclarations}},
	})
	if err != nil {
		return Result{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("assistant request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("assistant returned %s", resp.Status)
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("assistant response decode: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return Result{}, fmt.Errorf("assistant returned no candidates")
	}

	var calls []Call
	text := ""
	for _, part := range decoded.Candidates[0].Content.Parts {
		if part.FunctionCall != nil {
			call, err := decodeCall(part.FunctionCall.Name, part.FunctionCall.Args)
			if err != nil {
				return Result{}, err
			}
			calls = append(calls, call)
			continue
		}
		text += part.Text
	}
	if len(calls) > 0 {
		return Result{Calls: calls}, nil
	}
	if text == "" {
		return Result{}, fmt.Errorf("assistant response held neither calls nor text")
	}
	return Result{Text: text}, nil
}

func decodeCall(name string, args json.RawMessage) (Call, error) {
	switch name {
	case "addReminder":
		var c struct {
			Date        string `json:"date"`
			Time        string `json:"time"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(args, &c); err != nil {
			return nil, fmt.Errorf("addReminder args: %w", err)
		}
		return AddReminderCall(c), nil
	case "addAlarm":
		var c struct {
			Time   string    `json:"time"`
			Label  string    `json:"label"`
			Repeat bool      `json:"repeat"`
			Days   []float64 `json:"days"`
		}
		if err := json.Unmarshal(args, &c); err != nil {
			return nil, fmt.Errorf("addAlarm args: %w", err)
		}
		days := make([]int, 0, len(c.Days))
		for _, d := range c.Days {
			days = append(days, int(d))
		}
		return AddAlarmCall{Time: c.Time, Label: c.Label, Repeat: c.Repeat, Days: days}, nil
	case "addTimer":
		var c struct {
			Hours   float64 `json:"hours"`
			Minutes float64 `json:"minutes"`
			Seconds float64 `json:"seconds"`
			Label   string  `json:"label"`
		}
		if err := json.Unmarshal(args, &c); err != nil {
			return nil, fmt.Errorf("addTimer args: %w", err)
		}
		return AddTimerCall{Hours: int(c.Hours), Minutes: int(c.Minutes), Seconds: int(c.Seconds), Label: c.Label}, nil
	case "controlStopwatch":
		var c struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(args, &c); err != nil {
			return nil, fmt.Errorf("controlStopwatch args: %w", err)
		}
		return ControlStopwatchCall{Action: c.Action}, nil
	default:
		return nil, fmt.Errorf("assistant requested unknown operation %q", name)
	}
}

// functionDeclarations mirrors the four tools offered to the model.
var functionDeclarations = []json.RawMessage{
	json.RawMessage(`{
		"name": "addReminder",
		"description": "Adds a reminder for a specific date and time.",
		"parameters": {
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "The date in YYYY-MM-DD format."},
				"time": {"type": "string", "description": "The time in HH:MM (24-hour) format."},
				"description": {"type": "string", "description": "The content of the reminder."}
			},
			"required": ["date", "time", "description"]
		}
	}`),
	json.RawMessage(`{
		"name": "addAlarm",
		"description": "Adds a one-time or weekly repeating alarm.",
		"parameters": {
			"type": "object",
			"properties": {
				"time": {"type": "string", "description": "The time in HH:MM (24-hour) format."},
				"label": {"type": "string", "description": "Optional label."},
				"repeat": {"type": "boolean", "description": "Whether the alarm repeats weekly."},
				"days": {"type": "array", "items": {"type": "number"}, "description": "Weekdays 0 (Sunday) to 6 (Saturday); required when repeat is true."}
			},
			"required": ["time", "repeat"]
		}
	}`),
	json.RawMessage(`{
		"name": "addTimer",
		"description": "Adds and immediately starts a countdown timer.",
		"parameters": {
			"type": "object",
			"properties": {
				"hours": {"type": "number"},
				"minutes": {"type": "number"},
				"seconds": {"type": "number"},
				"label": {"type": "string", "description": "Optional label."}
			},
			"required": ["hours", "minutes", "seconds"]
		}
	}`),
	json.RawMessage(`{
		"name": "controlStopwatch",
		"description": "Controls the stopwatch.",
		"parameters": {
			"type": "object",
			"properties": {
				"action": {"type": "string", "description": "One of start, stop, lap, reset."}
			},
			"required": ["action"]
		}
	}`),
}
