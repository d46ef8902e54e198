package schema

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventSchema() Schema {
	when := []Field{
		String("dateTime", "Start time (ISO format)", Required(), Format("date-time")),
		String("timeZone", "Time zone"),
	}
	return New(
		String("summary", "Event title", Required()),
		ObjectField("start", "Event start", when, Required()),
		Integer("maxResults", "Maximum number of events", Positive()),
		String("orderBy", "Sort order", Enum("startTime", "updated")),
		Boolean("flag", "A flag"),
		Number("weight", "A weight"),
	)
}

func problemsOf(t *testing.T, err error) []Problem {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	return verr.Problems
}

func TestValidate_Valid(t *testing.T) {
	args := map[string]any{
		"summary":    "Standup",
		"start":      map[string]any{"dateTime": "2025-01-15T10:00:00Z"},
		"maxResults": float64(5),
		"orderBy":    "updated",
		"flag":       true,
		"weight":     1.5,
	}

	res := eventSchema().Validate(args)
	require.True(t, res.IsOk())
	obj, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, "Standup", obj["summary"])
}

func TestValidate_IgnoresUnknownFields(t *testing.T) {
	args := map[string]any{
		"summary": "Standup",
		"start":   map[string]any{"dateTime": "2025-01-15T10:00:00Z", "extra": 1},
		"colorId": "5",
	}

	res := eventSchema().Validate(args)
	assert.True(t, res.IsOk())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	args := map[string]any{
		"start":      map[string]any{"dateTime": 42},
		"maxResults": float64(0),
		"orderBy":    "random",
		"flag":       "yes",
		"weight":     "heavy",
	}

	res := eventSchema().Validate(args)
	require.True(t, res.IsError())

	problems := problemsOf(t, res.Error())
	assert.Equal(t, []Problem{
		{Path: "summary", Reason: "required field is missing"},
		{Path: "start.dateTime", Reason: "expected string, got number"},
		{Path: "maxResults", Reason: "must be a positive integer, got 0"},
		{Path: "orderBy", Reason: `must be one of [startTime, updated], got "random"`},
		{Path: "flag", Reason: "expected boolean, got string"},
		{Path: "weight", Reason: "expected number, got string"},
	}, problems)
}

func TestValidate_NestedRequired(t *testing.T) {
	args := map[string]any{
		"summary": "Standup",
		"start":   map[string]any{"timeZone": "Europe/Berlin"},
	}

	res := eventSchema().Validate(args)
	require.True(t, res.IsError())
	assert.Equal(t, []Problem{{Path: "start.dateTime", Reason: "required field is missing"}}, problemsOf(t, res.Error()))
}

func TestValidate_ObjectTypeMismatch(t *testing.T) {
	args := map[string]any{
		"summary": "Standup",
		"start":   "2025-01-15T10:00:00Z",
	}

	res := eventSchema().Validate(args)
	require.True(t, res.IsError())
	assert.Equal(t, []Problem{{Path: "start", Reason: "expected object, got string"}}, problemsOf(t, res.Error()))
}

func TestValidate_Integer(t *testing.T) {
	s := New(Integer("maxResults", "max", Positive()))

	tests := []struct {
		name    string
		value   any
		wantErr string
	}{
		{name: "float64 integral", value: float64(25)},
		{name: "int", value: 3},
		{name: "json number", value: json.Number("7")},
		{name: "fractional", value: 2.5, wantErr: "maxResults: expected integer, got 2.5"},
		{name: "negative", value: float64(-1), wantErr: "maxResults: must be a positive integer, got -1"},
		{name: "string", value: "10", wantErr: "maxResults: expected integer, got string"},
		{name: "int32 max", value: float64(math.MaxInt32)},
		{name: "above int32", value: float64(math.MaxInt32) + 1, wantErr: "maxResults: must be between -2147483648 and 2147483647"},
		{name: "huge", value: 1e20, wantErr: "maxResults: must be between -2147483648 and 2147483647, got 1e+20"},
		{name: "huge int64", value: int64(math.MaxInt64), wantErr: "maxResults: must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Validate(map[string]any{"maxResults": tt.value})
			if tt.wantErr == "" {
				assert.True(t, res.IsOk())
				return
			}
			require.True(t, res.IsError())
			assert.Contains(t, res.Error().Error(), tt.wantErr)
		})
	}
}

func TestValidate_NilArgumentsIsEmptyObject(t *testing.T) {
	res := eventSchema().Validate(nil)
	require.True(t, res.IsError())

	problems := problemsOf(t, res.Error())
	require.Len(t, problems, 2)
	assert.Equal(t, "summary", problems[0].Path)
	assert.Equal(t, "start", problems[1].Path)
}

func TestValidate_NonObjectArguments(t *testing.T) {
	res := eventSchema().Validate([]any{"a"})
	require.True(t, res.IsError())
	assert.Equal(t, "invalid arguments: arguments must be an object, got array", res.Error().Error())
}

func TestValidate_NullValueCountsAsMissing(t *testing.T) {
	s := New(String("eventId", "id", Required()), String("location", "where"))

	res := s.Validate(map[string]any{"eventId": nil, "location": nil})
	require.True(t, res.IsError())
	assert.Equal(t, []Problem{{Path: "eventId", Reason: "required field is missing"}}, problemsOf(t, res.Error()))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Problems: []Problem{
		{Path: "summary", Reason: "required field is missing"},
		{Path: "end.dateTime", Reason: "expected string, got boolean"},
	}}
	assert.Equal(t, "invalid arguments: summary: required field is missing; end.dateTime: expected string, got boolean", err.Error())
}

func TestJSONSchema(t *testing.T) {
	js := eventSchema().JSONSchema()

	assert.Equal(t, "object", js["type"])
	assert.Equal(t, []string{"summary", "start"}, js["required"])

	props, ok := js["properties"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, props, 6)

	start, ok := props["start"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", start["type"])
	assert.Equal(t, []string{"dateTime"}, start["required"])

	startProps := start["properties"].(map[string]any)
	dateTime := startProps["dateTime"].(map[string]any)
	assert.Equal(t, "string", dateTime["type"])
	assert.Equal(t, "date-time", dateTime["format"])
	assert.Equal(t, "Start time (ISO format)", dateTime["description"])

	orderBy := props["orderBy"].(map[string]any)
	assert.Equal(t, []string{"startTime", "updated"}, orderBy["enum"])

	maxResults := props["maxResults"].(map[string]any)
	assert.Equal(t, "integer", maxResults["type"])
	assert.Equal(t, 1, maxResults["minimum"])
}

func TestJSONSchema_IsSerializable(t *testing.T) {
	data, err := json.Marshal(eventSchema().JSONSchema())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"required":["summary","start"]`)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, []string{"summary", "start", "maxResults", "orderBy", "flag", "weight"}, eventSchema().FieldNames())
}

func TestDecode(t *testing.T) {
	type when struct {
		DateTime string  `mapstructure:"dateTime"`
		TimeZone *string `mapstructure:"timeZone"`
	}
	type request struct {
		Summary    string  `mapstructure:"summary"`
		Start      *when   `mapstructure:"start"`
		MaxResults *int64  `mapstructure:"maxResults"`
		OrderBy    *string `mapstructure:"orderBy"`
	}

	var req request
	err := Decode(map[string]any{
		"summary":    "Standup",
		"start":      map[string]any{"dateTime": "2025-01-15T10:00:00Z"},
		"maxResults": float64(25),
		"unknown":    true,
	}, &req)
	require.NoError(t, err)

	assert.Equal(t, "Standup", req.Summary)
	require.NotNil(t, req.Start)
	assert.Equal(t, "2025-01-15T10:00:00Z", req.Start.DateTime)
	assert.Nil(t, req.Start.TimeZone)
	require.NotNil(t, req.MaxResults)
	assert.Equal(t, int64(25), *req.MaxResults)
	assert.Nil(t, req.OrderBy)
}
