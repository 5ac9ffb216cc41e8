package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/careerforge/careerforge-api/internal/generation/schema"
)

type ratedAnswer struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
}

func ratedAnswerSchema() *schema.Descriptor {
	return schema.Object("a rated answer",
		schema.Req("score", schema.IntRange("score", 1, 10)),
		schema.Req("verdict", schema.Enum("verdict", "pass", "fail")),
	)
}

func staticClient(response string) Client {
	return ClientFunc(func(ctx context.Context, req Request) (string, error) {
		return response, nil
	})
}

func TestGenerateSuccess(t *testing.T) {
	result := Generate[ratedAnswer](context.Background(), staticClient(`{"score":7,"verdict":"pass"}`), Request{
		Prompt: Prompt{System: "s", User: "u"},
		Schema: ratedAnswerSchema(),
	})

	if result.Failed() {
		t.Fatalf("expected success, got: %v", result.Err())
	}
	if got := result.Value(); got.Score != 7 || got.Verdict != "pass" {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestGenerateStripsCodeFences(t *testing.T) {
	fenced := "```json\n{\"score\":3,\"verdict\":\"fail\"}\n```"

	result := Generate[ratedAnswer](context.Background(), staticClient(fenced), Request{
		Schema: ratedAnswerSchema(),
	})

	if result.Failed() {
		t.Fatalf("expected fenced JSON to be accepted, got: %v", result.Err())
	}
	if result.Value().Score != 3 {
		t.Errorf("unexpected value: %+v", result.Value())
	}
}

func TestGenerateSchemaFailures(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{name: "not JSON", response: "I cannot answer that."},
		{name: "missing required field", response: `{"score":7}`},
		{name: "enum violation", response: `{"score":7,"verdict":"maybe"}`},
		{name: "out of range integer", response: `{"score":11,"verdict":"pass"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Generate[ratedAnswer](context.Background(), staticClient(tc.response), Request{
				Schema: ratedAnswerSchema(),
			})

			if !result.Failed() {
				t.Fatalf("expected failure, got value: %+v", result.Value())
			}
			if result.Err().Kind != FailureSchema {
				t.Errorf("expected schema failure, got %s", result.Err().Kind)
			}
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	providerDown := errors.New("connection refused")
	client := ClientFunc(func(ctx context.Context, req Request) (string, error) {
		return "", providerDown
	})

	result := Generate[ratedAnswer](context.Background(), client, Request{Schema: ratedAnswerSchema()})

	if !result.Failed() {
		t.Fatal("expected failure")
	}
	if result.Err().Kind != FailureTransport {
		t.Errorf("expected transport failure, got %s", result.Err().Kind)
	}
	if !errors.Is(result.Err(), providerDown) {
		t.Error("underlying transport error should be preserved")
	}
}

func TestGenerateSingleAttempt(t *testing.T) {
	calls := 0
	client := ClientFunc(func(ctx context.Context, req Request) (string, error) {
		calls++
		return "", errors.New("unavailable")
	})

	Generate[ratedAnswer](context.Background(), client, Request{Schema: ratedAnswerSchema()})

	if calls != 1 {
		t.Errorf("expected exactly one provider call, got %d", calls)
	}
}

func TestGenerateTextRejectsEmpty(t *testing.T) {
	result := GenerateText(context.Background(), staticClient("   \n"), Request{})

	if !result.Failed() {
		t.Fatal("expected failure for empty response")
	}
	if result.Err().Kind != FailureSchema {
		t.Errorf("expected schema failure, got %s", result.Err().Kind)
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
