package model

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBedrock struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeBedrock) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestBedrock_InvokeBuildsAnthropicRequest(t *testing.T) {
	api := &fakeBedrock{body: `{"content":[{"type":"text","text":"{\"colors\":[]}"}],"stop_reason":"end_turn"}`}
	b := NewBedrockWithAPI(api, "anthropic.claude-3-sonnet-20240229-v1:0")

	out, err := b.Invoke(context.Background(), "hello", 200)
	require.NoError(t, err)
	assert.Equal(t, `{"colors":[]}`, out)

	require.NotNil(t, api.input)
	assert.Equal(t, "anthropic.claude-3-sonnet-20240229-v1:0", aws.ToString(api.input.ModelId))
	assert.Equal(t, "application/json", aws.ToString(api.input.ContentType))

	var req anthropicRequest
	require.NoError(t, json.Unmarshal(api.input.Body, &req))
	assert.Equal(t, "bedrock-2023-05-31", req.AnthropicVersion)
	assert.Equal(t, 200, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "hello", req.Messages[0].Content)
}

func TestBedrock_DefaultMaxTokens(t *testing.T) {
	api := &fakeBedrock{body: `{"content":[{"type":"text","text":"ok"}]}`}
	b := NewBedrockWithAPI(api, "m")

	_, err := b.Invoke(context.Background(), "p", 0)
	require.NoError(t, err)

	var req anthropicRequest
	require.NoError(t, json.Unmarshal(api.input.Body, &req))
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
}

func TestBedrock_Errors(t *testing.T) {
	b := NewBedrockWithAPI(&fakeBedrock{err: errors.New("dial tcp: timeout")}, "m")
	_, err := b.Invoke(context.Background(), "p", 10)
	assert.ErrorContains(t, err, "dial tcp")

	b = NewBedrockWithAPI(&fakeBedrock{body: "not json"}, "m")
	_, err = b.Invoke(context.Background(), "p", 10)
	assert.ErrorContains(t, err, "decode response")

	b = NewBedrockWithAPI(&fakeBedrock{body: `{"content":[]}`}, "m")
	_, err = b.Invoke(context.Background(), "p", 10)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestThemePrompt(t *testing.T) {
	p := ThemePrompt("sunset")
	assert.Contains(t, p, `"sunset" themed color palette`)
	assert.Contains(t, p, `"theme": "sunset"`)
	assert.Contains(t, p, "Respond with ONLY a JSON object")
	assert.Equal(t, p, ThemePrompt("sunset"), "prompt must be deterministic")

	quoted := ThemePrompt(`say "hi"`)
	assert.Contains(t, quoted, `"theme": "say \"hi\""`)

	html := ThemePrompt("rock & roll <3")
	assert.Contains(t, html, `"rock & roll <3" themed color palette`)
	assert.Contains(t, html, `"theme": "rock & roll <3"`)
	assert.NotContains(t, html, `\u0026`)
}

func TestThrottled_PassesThroughAndWaits(t *testing.T) {
	calls := 0
	next := InvokerFunc(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		calls++
		return "ok", nil
	})

	inv := NewThrottled(next, 0.001, 1)
	out, err := inv.Invoke(context.Background(), "p", 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = inv.Invoke(ctx, "p", 1)
	assert.Error(t, err, "second call cannot get a token before the deadline")
	assert.Equal(t, 1, calls)
}

func TestNewThrottled_DisabledReturnsNext(t *testing.T) {
	next := InvokerFunc(func(context.Context, string, int) (string, error) { return "", nil })
	inv := NewThrottled(next, 0, 0)
	_, ok := inv.(*Throttled)
	assert.False(t, ok)
}

func TestHints(t *testing.T) {
	assert.Nil(t, Hints(nil))

	denied := &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "no"}
	hints := Hints(denied)
	require.NotEmpty(t, hints)
	assert.Contains(t, hints[0], "credentials")

	notFound := &smithy.GenericAPIError{Code: "ResourceNotFoundException"}
	assert.Contains(t, strings.Join(Hints(notFound), " "), "region")

	validation := &smithy.GenericAPIError{Code: "ValidationException"}
	assert.Contains(t, strings.Join(Hints(validation), " "), "Model access")

	assert.Contains(t, strings.Join(Hints(context.DeadlineExceeded), " "), "timeout")
	assert.Contains(t, Hints(errors.New("boom"))[0], "boom")
}

func TestProbe(t *testing.T) {
	var gotPrompt string
	var gotMax int
	inv := InvokerFunc(func(_ context.Context, prompt string, maxTokens int) (string, error) {
		gotPrompt, gotMax = prompt, maxTokens
		return `{"message": "Hello"}`, nil
	})

	out, err := Probe(context.Background(), inv)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Equal(t, ProbePrompt, gotPrompt)
	assert.Equal(t, ProbeMaxTokens, gotMax)
}
