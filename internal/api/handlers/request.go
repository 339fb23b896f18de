package handlers

import (
	"encoding/json"
	"net/http"
)

// decodeBody decodes a JSON request body into a generic map so the
// declarative rule tables can distinguish absent fields from zero values.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if r.Body == nil {
		return body, nil
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	return body, err
}

func stringField(body map[string]interface{}, key string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return ""
}

func floatField(body map[string]interface{}, key string) float64 {
	if f, ok := body[key].(float64); ok {
		return f
	}
	return 0
}

func stringPtr(body map[string]interface{}, key string) *string {
	if s, ok := body[key].(string); ok {
		return &s
	}
	return nil
}

func floatPtr(body map[string]interface{}, key string) *float64 {
	if f, ok := body[key].(float64); ok {
		return &f
	}
	return nil
}
