package model

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"
)

// ProbePrompt is the small request used to check that the model is reachable.
const ProbePrompt = `Say "Hello" in JSON format: {"message": "Hello"}`

// ProbeMaxTokens bounds the probe completion.
const ProbeMaxTokens = 50

// Probe sends ProbePrompt and returns the reply.
func Probe(ctx context.Context, inv Invoker) (string, error) {
	return inv.Invoke(ctx, ProbePrompt, ProbeMaxTokens)
}

// Hints maps a provider failure to troubleshooting steps.
func Hints(err error) []string {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ValidationException":
			return []string{
				"Model access is not enabled in AWS Bedrock",
				"Open the Bedrock console, Model access, and enable the configured model",
			}
		case "AccessDeniedException", "UnauthorizedOperation", "UnrecognizedClientException":
			return []string{
				"AWS credentials may be incorrect",
				"Check AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY",
				"Ensure the identity has bedrock:InvokeModel permission",
			}
		case "ResourceNotFoundException":
			return []string{
				"Model is not available in this region",
				"Try AWS_REGION=us-east-1",
			}
		case "ThrottlingException", "ServiceQuotaExceededException":
			return []string{
				"Bedrock is throttling requests for this account",
				"Lower MODEL_RPS or request a quota increase",
			}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return []string{
			"The model did not answer before the timeout",
			"Raise MODEL_TIMEOUT or check network access to Bedrock",
		}
	}

	return []string{
		"Error: " + err.Error(),
		"Check AWS region and model availability",
	}
}
