package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/models"
	"github.com/google/go-cmp/cmp"
)

func TestGeminiMissingKey(t *testing.T) {
	client := NewGeminiClient("", "", "")
	if _, err := client.Reply(context.Background(), nil, nil); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

type sentContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

func TestGeminiReply(t *testing.T) {
	var got struct {
		Contents []sentContent `json:"contents"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/v1beta/models/test-model:generateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "k" {
			t.Errorf("api key header = %q", key)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"there"}]}}]}`))
	}))
	defer server.Close()

	red := colors.Detect(colors.RGB{R: 255})
	client := NewGeminiClient("k", "test-model", server.URL+"/")
	reply, err := client.Reply(context.Background(), []models.ChatMessage{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}, &red)
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Hello there" {
		t.Errorf("reply = %q", reply)
	}

	roles := []string{}
	for _, c := range got.Contents {
		roles = append(roles, c.Role)
	}
	if len(got.Contents) == 0 || len(got.Contents[0].Parts) == 0 {
		t.Fatalf("request contents = %+v", got.Contents)
	}
	if diff := cmp.Diff([]string{"user", "user", "model"}, roles); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.Contents[0].Parts[0].Text, `"hex":"#FF0000"`) {
		t.Errorf("preamble missing detected color: %q", got.Contents[0].Parts[0].Text)
	}
}

func TestGeminiNullColorContext(t *testing.T) {
	contents, err := buildContents(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 || !strings.HasSuffix(contents[0].Parts[0].Text, "(may be null): null") {
		t.Errorf("contents = %+v", contents)
	}
}

func TestGeminiErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-200", http.StatusTooManyRequests, `{"error":"quota"}`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"bad json", http.StatusOK, `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewGeminiClient("k", "", server.URL)
			if _, err := client.Reply(context.Background(), nil, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
